package session

import (
	"errors"
	"testing"

	"github.com/studialabs/studia/internal/intake"
	"github.com/studialabs/studia/internal/quiz"
)

func testDoc() *intake.Document {
	return &intake.Document{
		Name:      "biology.pdf",
		Path:      "/tmp/biology.pdf",
		Size:      2048,
		MediaType: "application/pdf",
	}
}

func testQuiz() quiz.Quiz {
	return quiz.Quiz{
		quiz.ChoiceQuestion{Meta: quiz.Meta{ID: 1, Prompt: "q1"}, Options: []string{"a", "b"}, Answer: 0},
		quiz.ShortQuestion{Meta: quiz.Meta{ID: 2, Prompt: "q2"}, Answer: "x"},
		quiz.EssayQuestion{Meta: quiz.Meta{ID: 3, Prompt: "q3"}},
	}
}

// sessionAtQuiz drives a fresh session to the quiz state.
func sessionAtQuiz(t *testing.T) *Session {
	t.Helper()
	s := New()
	if err := s.AcceptDocument(testDoc()); err != nil {
		t.Fatalf("AcceptDocument: %v", err)
	}
	epoch, err := s.BeginAnalysis()
	if err != nil {
		t.Fatalf("BeginAnalysis: %v", err)
	}
	if err := s.CompleteAnalysis(epoch, testQuiz(), "a summary"); err != nil {
		t.Fatalf("CompleteAnalysis: %v", err)
	}
	return s
}

func TestHappyPath(t *testing.T) {
	s := New()
	if s.State() != StateLanding {
		t.Fatalf("initial state = %v, want landing", s.State())
	}

	if err := s.AcceptDocument(testDoc()); err != nil {
		t.Fatalf("AcceptDocument: %v", err)
	}
	if s.State() != StateDashboard {
		t.Fatalf("state = %v, want dashboard", s.State())
	}

	epoch, err := s.BeginAnalysis()
	if err != nil {
		t.Fatalf("BeginAnalysis: %v", err)
	}
	if s.State() != StateLoading {
		t.Fatalf("state = %v, want loading", s.State())
	}

	if err := s.CompleteAnalysis(epoch, testQuiz(), "summary"); err != nil {
		t.Fatalf("CompleteAnalysis: %v", err)
	}
	if s.State() != StateQuiz {
		t.Fatalf("state = %v, want quiz", s.State())
	}
	if s.Position() != 0 {
		t.Errorf("position = %d, want 0", s.Position())
	}
	if s.Summary() != "summary" {
		t.Errorf("summary = %q", s.Summary())
	}

	s.SetAnswer("0")
	s.Next()
	s.SetAnswer("x")
	s.Next()
	s.SetAnswer("a sufficiently long essay")

	score, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if score != 100 {
		t.Errorf("score = %d, want 100", score)
	}
	if s.State() != StateScoreModal {
		t.Fatalf("state = %v, want scoreModal", s.State())
	}

	if err := s.AcknowledgeScore(); err != nil {
		t.Fatalf("AcknowledgeScore: %v", err)
	}
	if s.State() != StateResult {
		t.Fatalf("state = %v, want result", s.State())
	}
	if s.ResultView() != ViewAnalysis {
		t.Errorf("result view = %v, want analysis", s.ResultView())
	}
}

func TestInvalidTransitions(t *testing.T) {
	s := New()

	var invalid *InvalidTransitionError

	if _, err := s.BeginAnalysis(); !errors.As(err, &invalid) {
		t.Errorf("BeginAnalysis in landing: error = %v", err)
	}
	if err := s.SetAnswer("x"); !errors.As(err, &invalid) {
		t.Errorf("SetAnswer in landing: error = %v", err)
	}
	if _, err := s.Submit(); !errors.As(err, &invalid) {
		t.Errorf("Submit in landing: error = %v", err)
	}
	if err := s.AcknowledgeScore(); !errors.As(err, &invalid) {
		t.Errorf("AcknowledgeScore in landing: error = %v", err)
	}

	s.AcceptDocument(testDoc())
	if err := s.AcceptDocument(testDoc()); !errors.As(err, &invalid) {
		t.Errorf("AcceptDocument twice: error = %v", err)
	}
}

func TestNavigationBoundaries(t *testing.T) {
	s := sessionAtQuiz(t)

	if s.Prev() {
		t.Error("Prev at first question should be a no-op")
	}
	if s.Position() != 0 {
		t.Errorf("position = %d after boundary Prev", s.Position())
	}

	if !s.Next() || !s.Next() {
		t.Fatal("Next should move until the last question")
	}
	if s.Next() {
		t.Error("Next at last question should be a no-op")
	}
	if s.Position() != 2 {
		t.Errorf("position = %d, want 2", s.Position())
	}
}

func TestSubmitOnlyAtLastQuestion(t *testing.T) {
	s := sessionAtQuiz(t)

	if _, err := s.Submit(); !errors.Is(err, ErrNotLastQuestion) {
		t.Fatalf("Submit at first question: error = %v, want ErrNotLastQuestion", err)
	}
	if s.State() != StateQuiz {
		t.Fatalf("state = %v after rejected submit, want quiz", s.State())
	}

	s.Next()
	s.Next()
	if _, err := s.Submit(); err != nil {
		t.Fatalf("Submit at last question: %v", err)
	}
}

func TestAnswerOverwrite(t *testing.T) {
	s := sessionAtQuiz(t)

	s.SetAnswer("0")
	s.SetAnswer("1")

	got, ok := s.Answers().Get(0)
	if !ok || got != "1" {
		t.Errorf("answer = %q (%v), want overwritten value 1", got, ok)
	}
	if s.Answers().Answered() != 1 {
		t.Errorf("answered = %d, want 1", s.Answers().Answered())
	}
}

func TestStaleEpochDiscarded(t *testing.T) {
	s := New()
	s.AcceptDocument(testDoc())
	epoch, _ := s.BeginAnalysis()

	// The user resets while analysis is in flight.
	s.Reset()

	if err := s.CompleteAnalysis(epoch, testQuiz(), "late"); !errors.Is(err, ErrStaleEpoch) {
		t.Fatalf("stale CompleteAnalysis: error = %v, want ErrStaleEpoch", err)
	}
	if s.State() != StateLanding {
		t.Errorf("state = %v, stale result must not move the session", s.State())
	}
	if len(s.Quiz()) != 0 {
		t.Error("stale result must not install a quiz")
	}

	if err := s.FailAnalysis(epoch); !errors.Is(err, ErrStaleEpoch) {
		t.Errorf("stale FailAnalysis: error = %v, want ErrStaleEpoch", err)
	}
}

func TestRegenerateSupersedesOldEpoch(t *testing.T) {
	s := New()
	s.AcceptDocument(testDoc())

	first, _ := s.BeginAnalysis()
	s.FailAnalysis(first)
	second, _ := s.BeginAnalysis()

	if second <= first {
		t.Fatalf("epochs must increase: %d then %d", first, second)
	}
	if err := s.CompleteAnalysis(first, testQuiz(), ""); !errors.Is(err, ErrStaleEpoch) {
		t.Fatalf("old epoch result: error = %v, want ErrStaleEpoch", err)
	}
	if err := s.CompleteAnalysis(second, testQuiz(), ""); err != nil {
		t.Fatalf("current epoch result: %v", err)
	}
}

func TestEmptyQuizReturnsToDashboard(t *testing.T) {
	s := New()
	s.AcceptDocument(testDoc())
	epoch, _ := s.BeginAnalysis()

	err := s.CompleteAnalysis(epoch, nil, "summary")
	if !errors.Is(err, quiz.ErrNoQuestions) {
		t.Fatalf("error = %v, want ErrNoQuestions", err)
	}
	if s.State() != StateDashboard {
		t.Errorf("state = %v, want dashboard", s.State())
	}
	if s.Document() == nil {
		t.Error("document must stay staged after a failed analysis")
	}
}

func TestFailAnalysisKeepsDocument(t *testing.T) {
	s := New()
	s.AcceptDocument(testDoc())
	epoch, _ := s.BeginAnalysis()

	if err := s.FailAnalysis(epoch); err != nil {
		t.Fatalf("FailAnalysis: %v", err)
	}
	if s.State() != StateDashboard {
		t.Errorf("state = %v, want dashboard", s.State())
	}
	if s.Document() == nil {
		t.Error("document must stay staged for retry")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := sessionAtQuiz(t)
	s.SetAnswer("0")
	s.Next()
	s.Next()
	s.Submit()
	s.AcknowledgeScore()

	s.Reset()

	if s.State() != StateLanding {
		t.Errorf("state = %v, want landing", s.State())
	}
	if s.Document() != nil {
		t.Error("document survived reset")
	}
	if len(s.Quiz()) != 0 {
		t.Error("quiz survived reset")
	}
	if s.Answers() != nil {
		t.Error("answers survived reset")
	}
	if _, ok := s.Score(); ok {
		t.Error("score survived reset")
	}
	if s.Summary() != "" {
		t.Error("summary survived reset")
	}
}

func TestResultSelection(t *testing.T) {
	s := sessionAtQuiz(t)
	s.Next()
	s.Next()
	s.Submit()
	s.AcknowledgeScore()

	if err := s.SetResultView(ViewScorecard); err != nil {
		t.Fatalf("SetResultView: %v", err)
	}

	s.Select(2)
	if s.Selected() != 2 {
		t.Errorf("selected = %d, want 2", s.Selected())
	}

	s.Select(99)
	if s.Selected() != 2 {
		t.Errorf("out-of-range Select moved selection to %d", s.Selected())
	}
	s.Select(-1)
	if s.Selected() != 2 {
		t.Errorf("negative Select moved selection to %d", s.Selected())
	}
}

func TestAnswerStoreBounds(t *testing.T) {
	store := newAnswerStore(2)

	if err := store.set(0, "a"); err != nil {
		t.Fatalf("set(0): %v", err)
	}
	if err := store.set(2, "b"); err == nil {
		t.Error("set(2) on size-2 store should fail")
	}
	if err := store.set(-1, "c"); err == nil {
		t.Error("set(-1) should fail")
	}

	snap := store.Snapshot()
	snap[0] = "mutated"
	if got, _ := store.Get(0); got != "a" {
		t.Error("Snapshot must be a copy, not a view")
	}
}
