package analysis

import (
	"context"
	"errors"
	"sync"

	"github.com/studialabs/studia/internal/intake"
)

var errNoOutcome = errors.New("mock analyzer has no canned outcome")

// MockOutcome is one canned Analyze result.
type MockOutcome struct {
	Result *Result
	Err    error
}

// MockAnalyzer serves canned outcomes FIFO and records the documents it
// was asked about. Used in tests and for --offline demo runs.
type MockAnalyzer struct {
	mu       sync.Mutex
	outcomes []MockOutcome
	Docs     []*intake.Document
}

// NewMockAnalyzer creates a MockAnalyzer with the given outcomes.
func NewMockAnalyzer(outcomes ...MockOutcome) *MockAnalyzer {
	return &MockAnalyzer{outcomes: outcomes}
}

// Analyze returns the next canned outcome; once exhausted it keeps
// returning the last one, so an offline analyzer can be reused.
func (m *MockAnalyzer) Analyze(ctx context.Context, doc *intake.Document) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Docs = append(m.Docs, doc)

	if len(m.outcomes) == 0 {
		return nil, &CallError{Err: errNoOutcome}
	}

	out := m.outcomes[0]
	if len(m.outcomes) > 1 {
		m.outcomes = m.outcomes[1:]
	}
	return out.Result, out.Err
}
