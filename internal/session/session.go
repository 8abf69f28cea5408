// Package session owns all state for one end-to-end study session: the
// staged document, the quiz, the answer store, the score and the summary.
// Everything is discarded together on reset; nothing outlives the session.
//
// The model is single-threaded cooperative: transitions are applied
// atomically by the UI loop, one event at a time. The only asynchronous
// boundary is the analysis call, guarded by an epoch counter so a result
// landing after a reset is discarded instead of resurrecting a dead
// session.
package session

import (
	"errors"
	"fmt"

	"github.com/studialabs/studia/internal/intake"
	"github.com/studialabs/studia/internal/quiz"
	"github.com/studialabs/studia/internal/scoring"
)

var (
	// ErrStaleEpoch means an analysis result arrived for a superseded
	// session epoch and must be discarded.
	ErrStaleEpoch = errors.New("analysis result from a stale session epoch")

	// ErrNoDocument means generation was requested with nothing staged.
	ErrNoDocument = errors.New("no document staged")

	// ErrNotLastQuestion means submit was attempted before the last
	// question. Submit is only reachable from the final position.
	ErrNotLastQuestion = errors.New("submit is only allowed on the last question")
)

// InvalidTransitionError reports an event fired in a state that does not
// accept it.
type InvalidTransitionError struct {
	From  State
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s while in state %q", e.Event, e.From)
}

// Session is the single source of truth for one study session. All
// mutation goes through its transition methods; derived views are pure
// functions of its accessors.
type Session struct {
	state State
	epoch int

	doc      *intake.Document
	quiz     quiz.Quiz
	summary  string
	answers  *AnswerStore
	position int

	score  int
	scored bool

	resultView ResultView
	selected   int
}

// New returns a fresh session in the landing state.
func New() *Session {
	return &Session{state: StateLanding}
}

// State returns the active state.
func (s *Session) State() State { return s.state }

// Epoch returns the current session epoch.
func (s *Session) Epoch() int { return s.epoch }

// Document returns the staged document, or nil.
func (s *Session) Document() *intake.Document { return s.doc }

// Quiz returns the active quiz. Empty outside quiz/scoreModal/result.
func (s *Session) Quiz() quiz.Quiz { return s.quiz }

// Summary returns the document summary from the analysis call.
func (s *Session) Summary() string { return s.summary }

// Answers returns the session's answer store, or nil before a quiz starts.
func (s *Session) Answers() *AnswerStore { return s.answers }

// Position returns the current question position.
func (s *Session) Position() int { return s.position }

// Current returns the question at the current position, or nil.
func (s *Session) Current() quiz.Question {
	if s.position < 0 || s.position >= len(s.quiz) {
		return nil
	}
	return s.quiz[s.position]
}

// Score returns the computed score and whether one exists.
func (s *Session) Score() (int, bool) { return s.score, s.scored }

// AcceptDocument stages a validated document: landing → dashboard.
// Intake has already rejected non-PDF input at this point.
func (s *Session) AcceptDocument(doc *intake.Document) error {
	if s.state != StateLanding {
		return &InvalidTransitionError{From: s.state, Event: "accept document"}
	}
	s.doc = doc
	s.state = StateDashboard
	return nil
}

// BeginAnalysis starts the analysis call: dashboard → loading. It
// returns the epoch the caller must attach to the eventual result.
func (s *Session) BeginAnalysis() (int, error) {
	if s.state != StateDashboard {
		return 0, &InvalidTransitionError{From: s.state, Event: "generate"}
	}
	if s.doc == nil {
		return 0, ErrNoDocument
	}
	s.epoch++
	s.state = StateLoading
	return s.epoch, nil
}

// CompleteAnalysis applies a successful analysis result: loading → quiz.
// Results for a superseded epoch return ErrStaleEpoch and change
// nothing. An empty quiz is treated as a failure (loading → dashboard)
// and reported as quiz.ErrNoQuestions.
func (s *Session) CompleteAnalysis(epoch int, qs quiz.Quiz, summary string) error {
	if epoch != s.epoch {
		return ErrStaleEpoch
	}
	if s.state != StateLoading {
		return &InvalidTransitionError{From: s.state, Event: "complete analysis"}
	}
	if len(qs) == 0 {
		s.state = StateDashboard
		return quiz.ErrNoQuestions
	}

	s.quiz = qs
	s.summary = summary
	s.answers = newAnswerStore(len(qs))
	s.position = 0
	s.scored = false
	s.state = StateQuiz
	return nil
}

// FailAnalysis applies a failed analysis call: loading → dashboard. The
// document stays staged so the learner can retry without re-uploading.
func (s *Session) FailAnalysis(epoch int) error {
	if epoch != s.epoch {
		return ErrStaleEpoch
	}
	if s.state != StateLoading {
		return &InvalidTransitionError{From: s.state, Event: "fail analysis"}
	}
	s.state = StateDashboard
	return nil
}

// SetAnswer records the response for the current question. Allowed only
// in the quiz state; overwrites any prior value.
func (s *Session) SetAnswer(value string) error {
	if s.state != StateQuiz {
		return &InvalidTransitionError{From: s.state, Event: "answer"}
	}
	return s.answers.set(s.position, value)
}

// Prev moves to the previous question. A no-op at the first question;
// returns whether the position moved.
func (s *Session) Prev() bool {
	if s.state != StateQuiz || s.position == 0 {
		return false
	}
	s.position--
	return true
}

// Next moves to the next question. A no-op at the last question;
// returns whether the position moved.
func (s *Session) Next() bool {
	if s.state != StateQuiz || s.position >= len(s.quiz)-1 {
		return false
	}
	s.position++
	return true
}

// Submit grades the attempt: quiz → scoreModal. Only reachable from the
// last question. An engine fault (unreachable given upstream validation)
// aborts the attempt — no score is stored and the session returns to the
// dashboard so the attempt can be regenerated.
func (s *Session) Submit() (int, error) {
	if s.state != StateQuiz {
		return 0, &InvalidTransitionError{From: s.state, Event: "submit"}
	}
	if s.position != len(s.quiz)-1 {
		return 0, ErrNotLastQuestion
	}

	score, err := scoring.Score(s.quiz, s.answers.Snapshot())
	if err != nil {
		s.abortAttempt()
		return 0, err
	}

	s.score = score
	s.scored = true
	s.state = StateScoreModal
	return score, nil
}

// abortAttempt discards the current quiz after a scoring fault, keeping
// the staged document. Never a partial score.
func (s *Session) abortAttempt() {
	s.quiz = nil
	s.summary = ""
	s.answers = nil
	s.position = 0
	s.scored = false
	s.state = StateDashboard
}

// AcknowledgeScore dismisses the score modal: scoreModal → result. The
// result-scoped view selector and question pointer reset to defaults.
func (s *Session) AcknowledgeScore() error {
	if s.state != StateScoreModal {
		return &InvalidTransitionError{From: s.state, Event: "acknowledge score"}
	}
	s.resultView = ViewAnalysis
	s.selected = 0
	s.state = StateResult
	return nil
}

// ResultView returns the active result tab.
func (s *Session) ResultView() ResultView { return s.resultView }

// SetResultView switches the result tab. Valid only in the result state.
func (s *Session) SetResultView(v ResultView) error {
	if s.state != StateResult {
		return &InvalidTransitionError{From: s.state, Event: "switch result view"}
	}
	s.resultView = v
	return nil
}

// Selected returns the scorecard's selected question position.
func (s *Session) Selected() int { return s.selected }

// Select points the scorecard at a question. Out-of-range positions are
// ignored.
func (s *Session) Select(position int) {
	if s.state != StateResult || position < 0 || position >= len(s.quiz) {
		return
	}
	s.selected = position
}

// Reset discards every session entity and returns to landing. The epoch
// advances so any in-flight analysis result is discarded on arrival.
func (s *Session) Reset() {
	s.epoch++
	s.doc = nil
	s.quiz = nil
	s.summary = ""
	s.answers = nil
	s.position = 0
	s.score = 0
	s.scored = false
	s.resultView = ViewAnalysis
	s.selected = 0
	s.state = StateLanding
}
