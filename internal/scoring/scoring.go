// Package scoring grades a quiz attempt locally. All functions are pure:
// the same quiz and answers always produce the same result.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/studialabs/studia/internal/quiz"
)

// EssayMinLength is the minimum response length (in characters) for an
// essay to count as correct. This is a completion heuristic inherited
// from the analysis service's design, not content grading; it is kept
// as-specified rather than "fixed".
const EssayMinLength = 10

// ErrEmptyQuiz is returned when asked to score a zero-length quiz.
// Upstream validation makes this unreachable, but the engine guards
// independently so it can never divide by zero.
var ErrEmptyQuiz = errors.New("cannot score an empty quiz")

// UnsupportedTypeError reports a question variant the engine does not
// know how to grade. Defensive: the parser only produces known variants.
type UnsupportedTypeError struct {
	Type quiz.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported question type %q", e.Type)
}

// Evaluate grades one response against one question. answered reports
// whether the learner stored a response at all; a missing or malformed
// response is incorrect, never an error.
func Evaluate(q quiz.Question, response string, answered bool) (bool, error) {
	switch q := q.(type) {
	case quiz.ChoiceQuestion:
		if !answered {
			return false, nil
		}
		idx, err := strconv.Atoi(strings.TrimSpace(response))
		if err != nil {
			return false, nil
		}
		return idx == q.Answer, nil

	case quiz.ShortQuestion:
		if !answered {
			return false, nil
		}
		// Whitespace-insensitive, case-sensitive: " P a r is " matches
		// "Paris", "paris" does not.
		return stripSpace(response) == stripSpace(q.Answer), nil

	case quiz.EssayQuestion:
		return answered && utf8.RuneCountInString(response) >= EssayMinLength, nil

	default:
		return false, &UnsupportedTypeError{Type: q.Type()}
	}
}

// EvaluateAll grades every position in one pass. answers maps question
// position to the stored response; absent positions are unanswered.
// The returned slice always has len(questions) entries.
func EvaluateAll(questions quiz.Quiz, answers map[int]string) ([]bool, error) {
	results := make([]bool, len(questions))
	for i, q := range questions {
		response, answered := answers[i]
		correct, err := Evaluate(q, response, answered)
		if err != nil {
			return nil, err
		}
		results[i] = correct
	}
	return results, nil
}

// Score aggregates an attempt into an integer percentage in [0,100]:
// round(100 × correct / len(questions)).
func Score(questions quiz.Quiz, answers map[int]string) (int, error) {
	if len(questions) == 0 {
		return 0, ErrEmptyQuiz
	}

	results, err := EvaluateAll(questions, answers)
	if err != nil {
		return 0, err
	}

	correct := 0
	for _, ok := range results {
		if ok {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(questions)))), nil
}

// stripSpace removes every Unicode whitespace character.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
