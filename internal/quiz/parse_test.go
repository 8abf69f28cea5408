package quiz

import (
	"encoding/json"
	"errors"
	"testing"
)

func rawJSON(s string) json.RawMessage {
	return json.RawMessage(s)
}

func validChoice() Payload {
	return Payload{
		ID:          1,
		Type:        "choice",
		Question:    "Which planet is largest?",
		Options:     []string{"Mars", "Jupiter", "Venus", "Earth"},
		Answer:      rawJSON("1"),
		Explanation: "Jupiter is the largest planet.",
		PDFRef:      "p. 4",
	}
}

func TestParseQuizEmpty(t *testing.T) {
	_, err := ParseQuiz(nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("ParseQuiz(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestParseQuizValid(t *testing.T) {
	items := []Payload{
		validChoice(),
		{ID: 2, Type: "short", Question: "Capital of France?", Answer: rawJSON(`"Paris"`)},
		{ID: 3, Type: "essay", Question: "Discuss the water cycle."},
	}

	qs, err := ParseQuiz(items)
	if err != nil {
		t.Fatalf("ParseQuiz: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}

	if qs[0].Type() != TypeChoice || qs[1].Type() != TypeShort || qs[2].Type() != TypeEssay {
		t.Errorf("types = %v %v %v", qs[0].Type(), qs[1].Type(), qs[2].Type())
	}

	choice, ok := qs[0].(ChoiceQuestion)
	if !ok {
		t.Fatalf("qs[0] is %T, want ChoiceQuestion", qs[0])
	}
	if choice.Answer != 1 {
		t.Errorf("choice answer = %d, want 1", choice.Answer)
	}
	if choice.Common().Reference != "p. 4" {
		t.Errorf("reference = %q", choice.Common().Reference)
	}
}

func TestParseQuestionMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Payload)
	}{
		{"zero id", func(p *Payload) { p.ID = 0 }},
		{"negative id", func(p *Payload) { p.ID = -4 }},
		{"empty question", func(p *Payload) { p.Question = "" }},
		{"unknown type", func(p *Payload) { p.Type = "truefalse" }},
		{"choice without options", func(p *Payload) { p.Options = nil }},
		{"choice answer missing", func(p *Payload) { p.Answer = nil }},
		{"choice answer not a number", func(p *Payload) { p.Answer = rawJSON(`"B"`) }},
		{"choice answer out of range", func(p *Payload) { p.Answer = rawJSON("4") }},
		{"choice answer negative", func(p *Payload) { p.Answer = rawJSON("-1") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validChoice()
			tt.mutate(&item)

			_, err := ParseQuestion(7, item)
			var malformed *MalformedQuestionError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %v, want MalformedQuestionError", err)
			}
			if malformed.Index != 7 {
				t.Errorf("index = %d, want 7", malformed.Index)
			}
		})
	}
}

func TestParseQuestionShortMalformed(t *testing.T) {
	tests := []struct {
		name   string
		answer json.RawMessage
	}{
		{"missing answer", nil},
		{"numeric answer", rawJSON("3")},
		{"empty string answer", rawJSON(`""`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Payload{ID: 5, Type: "short", Question: "q", Answer: tt.answer}
			_, err := ParseQuestion(0, item)
			var malformed *MalformedQuestionError
			if !errors.As(err, &malformed) {
				t.Fatalf("error = %v, want MalformedQuestionError", err)
			}
		})
	}
}

func TestParseQuestionEssayIgnoresAnswer(t *testing.T) {
	item := Payload{ID: 9, Type: "essay", Question: "Discuss.", Answer: rawJSON(`"ignored"`)}
	q, err := ParseQuestion(0, item)
	if err != nil {
		t.Fatalf("ParseQuestion: %v", err)
	}
	if _, ok := q.(EssayQuestion); !ok {
		t.Fatalf("got %T, want EssayQuestion", q)
	}
}

func TestParseQuizFailsOnFirstMalformed(t *testing.T) {
	items := []Payload{
		validChoice(),
		{ID: 2, Type: "short", Question: "q"}, // no answer key
		{ID: 0, Type: "essay", Question: "also bad"},
	}

	_, err := ParseQuiz(items)
	var malformed *MalformedQuestionError
	if !errors.As(err, &malformed) {
		t.Fatalf("error = %v, want MalformedQuestionError", err)
	}
	if malformed.Index != 1 {
		t.Errorf("failed at index %d, want 1 (first malformed item)", malformed.Index)
	}
}

func TestAnswerText(t *testing.T) {
	choice, _ := ParseQuestion(0, validChoice())
	if got := AnswerText(choice); got != "Jupiter" {
		t.Errorf("AnswerText(choice) = %q, want Jupiter", got)
	}

	short := ShortQuestion{Meta: Meta{ID: 1, Prompt: "q"}, Answer: "Paris"}
	if got := AnswerText(short); got != "Paris" {
		t.Errorf("AnswerText(short) = %q, want Paris", got)
	}

	essay := EssayQuestion{Meta: Meta{ID: 2, Prompt: "q"}}
	if got := AnswerText(essay); got != "" {
		t.Errorf("AnswerText(essay) = %q, want empty", got)
	}
}

func TestPayloadFromRoundTrip(t *testing.T) {
	original := validChoice()
	q, err := ParseQuestion(0, original)
	if err != nil {
		t.Fatalf("ParseQuestion: %v", err)
	}

	p := PayloadFrom(q)
	if p.ID != original.ID || p.Type != original.Type || p.Question != original.Question {
		t.Errorf("PayloadFrom lost identity fields: %+v", p)
	}
	if string(p.Answer) != "1" {
		t.Errorf("answer = %s, want 1", p.Answer)
	}
	if len(p.Options) != 4 {
		t.Errorf("options = %v", p.Options)
	}
}
