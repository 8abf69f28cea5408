package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/studialabs/studia/internal/intake"
	"github.com/studialabs/studia/internal/quiz"
)

func TestMockAnalyzerFIFO(t *testing.T) {
	first := &Result{Summary: "one", Questions: quiz.Quiz{quiz.EssayQuestion{Meta: quiz.Meta{ID: 1, Prompt: "q"}}}}
	second := &Result{Summary: "two", Questions: quiz.Quiz{quiz.EssayQuestion{Meta: quiz.Meta{ID: 2, Prompt: "q"}}}}

	m := NewMockAnalyzer(
		MockOutcome{Result: first},
		MockOutcome{Result: second},
	)
	doc := &intake.Document{Name: "d.pdf"}

	res, err := m.Analyze(context.Background(), doc)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Summary != "one" {
		t.Errorf("first outcome = %q", res.Summary)
	}

	// The last outcome repeats once the queue is drained.
	for i := 0; i < 3; i++ {
		res, err = m.Analyze(context.Background(), doc)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if res.Summary != "two" {
			t.Errorf("call %d = %q, want the last outcome to repeat", i+2, res.Summary)
		}
	}

	if len(m.Docs) != 4 {
		t.Errorf("recorded %d docs, want 4", len(m.Docs))
	}
}

func TestMockAnalyzerNoOutcomes(t *testing.T) {
	m := NewMockAnalyzer()

	_, err := m.Analyze(context.Background(), &intake.Document{Name: "d.pdf"})
	var callErr *CallError
	if !errors.As(err, &callErr) {
		t.Fatalf("error = %v, want CallError", err)
	}
}
