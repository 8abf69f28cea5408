package session

import "fmt"

// AnswerStore maps question position to the learner's current response.
// Unanswered positions are absent, not sentinel values. Values are raw
// strings (a choice response is the decimal option index); shape
// checking happens lazily at scoring time.
//
// Writes go through Session.SetAnswer, which enforces the quiz-state
// gate. The store itself enforces the position bounds.
type AnswerStore struct {
	size   int
	values map[int]string
}

func newAnswerStore(size int) *AnswerStore {
	return &AnswerStore{
		size:   size,
		values: make(map[int]string),
	}
}

// set stores or overwrites the response at position. Positions outside
// [0, size) are rejected.
func (s *AnswerStore) set(position int, value string) error {
	if position < 0 || position >= s.size {
		return fmt.Errorf("answer position %d out of range [0,%d)", position, s.size)
	}
	s.values[position] = value
	return nil
}

// Get returns the stored response and whether one exists.
func (s *AnswerStore) Get(position int) (string, bool) {
	v, ok := s.values[position]
	return v, ok
}

// Answered reports how many positions hold a response.
func (s *AnswerStore) Answered() int {
	return len(s.values)
}

// Snapshot copies the mapping for the scoring engine and the review
// projection. The copy keeps callers from mutating the store directly.
func (s *AnswerStore) Snapshot() map[int]string {
	out := make(map[int]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
