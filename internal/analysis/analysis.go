// Package analysis is the client's boundary to document analysis: a
// document goes in, a quiz plus a text summary comes out. Two real
// implementations exist behind one interface — the remote service the
// original frontend talks to, and a built-in pipeline that extracts the
// PDF text and prompts a model provider directly — plus a mock for
// tests and offline runs.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/studialabs/studia/internal/intake"
	"github.com/studialabs/studia/internal/quiz"
)

// Result is what analyzing one document produces. Questions is always
// non-empty and fully validated; anything less is an error.
type Result struct {
	Summary   string
	Questions quiz.Quiz
}

// Analyzer turns a staged document into a Result. Implementations must
// honor ctx cancellation; the session layer discards late results via
// its epoch guard.
type Analyzer interface {
	Analyze(ctx context.Context, doc *intake.Document) (*Result, error)
}

// CallError is a transport-level analysis failure: the service was
// unreachable or answered with a non-success status.
type CallError struct {
	Status int // HTTP status, 0 for network errors
	Err    error
}

func (e *CallError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("analysis call failed: status %d", e.Status)
	}
	return fmt.Sprintf("analysis call failed: %v", e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// FailureReason classifies an analysis failure for telemetry. Transport
// failures and unusable payloads trigger the same session transition
// but must be distinguishable in the event log.
type FailureReason string

const (
	ReasonTransport FailureReason = "transport"
	ReasonEmptyQuiz FailureReason = "empty_quiz"
	ReasonMalformed FailureReason = "malformed_question"
)

// ClassifyFailure maps an analysis error to its telemetry reason.
func ClassifyFailure(err error) FailureReason {
	var malformed *quiz.MalformedQuestionError
	switch {
	case errors.Is(err, quiz.ErrNoQuestions):
		return ReasonEmptyQuiz
	case errors.As(err, &malformed):
		return ReasonMalformed
	default:
		return ReasonTransport
	}
}
