package scoring

import (
	"errors"
	"testing"

	"github.com/studialabs/studia/internal/quiz"
)

func choiceQ(answer int, options ...string) quiz.Question {
	return quiz.ChoiceQuestion{
		Meta:    quiz.Meta{ID: 1, Prompt: "pick one"},
		Options: options,
		Answer:  answer,
	}
}

func shortQ(answer string) quiz.Question {
	return quiz.ShortQuestion{
		Meta:   quiz.Meta{ID: 2, Prompt: "name it"},
		Answer: answer,
	}
}

func essayQ() quiz.Question {
	return quiz.EssayQuestion{
		Meta: quiz.Meta{ID: 3, Prompt: "discuss"},
	}
}

func TestEvaluateChoice(t *testing.T) {
	q := choiceQ(2, "a", "b", "c", "d")

	tests := []struct {
		name     string
		response string
		answered bool
		want     bool
	}{
		{"exact match", "2", true, true},
		{"wrong index", "1", true, false},
		{"surrounding whitespace", " 2 ", true, true},
		{"non-numeric", "two", true, false},
		{"empty response", "", true, false},
		{"unanswered", "", false, false},
		{"out of range index is just wrong", "9", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(q, tt.response, tt.answered)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}

func TestEvaluateShort(t *testing.T) {
	q := shortQ("Mitochondria")

	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"exact", "Mitochondria", true},
		{"internal whitespace ignored", "Mito chondria", true},
		{"leading and trailing whitespace ignored", "  Mitochondria\t\n", true},
		{"case matters", "mitochondria", false},
		{"wrong answer", "Ribosome", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(q, tt.response, true)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}

func TestEvaluateShortKeyWithSpaces(t *testing.T) {
	// The answer key itself is also stripped, so spacing never decides.
	q := shortQ("New York")
	got, err := Evaluate(q, "NewYork", true)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !got {
		t.Error("expected NewYork to match answer key \"New York\"")
	}
}

func TestEvaluateEssay(t *testing.T) {
	q := essayQ()

	tests := []struct {
		name     string
		response string
		answered bool
		want     bool
	}{
		{"nine characters is too short", "123456789", true, false},
		{"ten characters passes", "1234567890", true, true},
		{"multibyte runes count as one", "ありがとうございます。", true, true},
		{"unanswered", "", false, false},
		{"whitespace counts toward length", "a b c d e ", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(q, tt.response, tt.answered)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.response, got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	questions := quiz.Quiz{
		choiceQ(0, "a", "b"),
		shortQ("Paris"),
		essayQ(),
		choiceQ(1, "x", "y"),
	}

	tests := []struct {
		name    string
		answers map[int]string
		want    int
	}{
		{
			"all correct",
			map[int]string{0: "0", 1: "Paris", 2: "a long enough essay", 3: "1"},
			100,
		},
		{
			"none answered",
			map[int]string{},
			0,
		},
		{
			"three of four",
			map[int]string{0: "0", 1: "Paris", 2: "a long enough essay", 3: "0"},
			75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(questions, tt.answers)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if got != tt.want {
				t.Errorf("Score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreRounds(t *testing.T) {
	questions := quiz.Quiz{
		choiceQ(0, "a", "b"),
		choiceQ(0, "a", "b"),
		choiceQ(0, "a", "b"),
	}

	// 1/3 → 33.33 → 33, 2/3 → 66.67 → 67.
	got, err := Score(questions, map[int]string{0: "0"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 33 {
		t.Errorf("Score(1/3) = %d, want 33", got)
	}

	got, err = Score(questions, map[int]string{0: "0", 1: "0"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 67 {
		t.Errorf("Score(2/3) = %d, want 67", got)
	}
}

func TestScoreEmptyQuiz(t *testing.T) {
	_, err := Score(nil, nil)
	if !errors.Is(err, ErrEmptyQuiz) {
		t.Errorf("Score(empty) error = %v, want ErrEmptyQuiz", err)
	}
}

func TestScoreIdempotent(t *testing.T) {
	questions := quiz.Quiz{choiceQ(1, "a", "b"), shortQ("x")}
	answers := map[int]string{0: "1", 1: "y"}

	first, err := Score(questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Score(questions, answers)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if again != first {
			t.Fatalf("Score changed between runs: %d then %d", first, again)
		}
	}
}

func TestEvaluateAllLength(t *testing.T) {
	questions := quiz.Quiz{choiceQ(0, "a", "b"), shortQ("x"), essayQ()}

	results, err := EvaluateAll(questions, map[int]string{1: "x"})
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}
	if len(results) != len(questions) {
		t.Fatalf("got %d results, want %d", len(results), len(questions))
	}
	if results[0] || !results[1] || results[2] {
		t.Errorf("results = %v, want [false true false]", results)
	}
}

// The worked example from the product notes: choice answered correctly,
// short answered with wrong casing, essay exactly at the length floor.
func TestScoreWorkedExample(t *testing.T) {
	questions := quiz.Quiz{
		choiceQ(3, "w", "x", "y", "z"),
		shortQ("Photosynthesis"),
		essayQ(),
	}
	answers := map[int]string{
		0: "3",
		1: "photosynthesis",
		2: "1234567890",
	}

	got, err := Score(questions, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 67 {
		t.Errorf("Score = %d, want 67 (2 of 3 correct)", got)
	}
}
