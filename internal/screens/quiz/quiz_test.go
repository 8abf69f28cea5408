package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/studialabs/studia/internal/intake"
	qz "github.com/studialabs/studia/internal/quiz"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/ui/layout"
)

// stubScreen stands in for the screens the factories would build.
type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.name }
func (s *stubScreen) Title() string                           { return s.name }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testQuiz() qz.Quiz {
	return qz.Quiz{
		qz.ChoiceQuestion{Meta: qz.Meta{ID: 1, Prompt: "pick"}, Options: []string{"a", "b", "c"}, Answer: 1},
		qz.ShortQuestion{Meta: qz.Meta{ID: 2, Prompt: "name"}, Answer: "x"},
	}
}

func testScreen(t *testing.T) (*QuizScreen, *session.Session) {
	t.Helper()

	sess := session.New()
	doc := &intake.Document{Name: "d.pdf", Path: "/tmp/d.pdf", Size: 128, MediaType: "application/pdf"}
	if err := sess.AcceptDocument(doc); err != nil {
		t.Fatalf("AcceptDocument: %v", err)
	}
	epoch, err := sess.BeginAnalysis()
	if err != nil {
		t.Fatalf("BeginAnalysis: %v", err)
	}
	if err := sess.CompleteAnalysis(epoch, testQuiz(), "summary"); err != nil {
		t.Fatalf("CompleteAnalysis: %v", err)
	}

	s := New(sess, nil, "test-session",
		func() screen.Screen { return &stubScreen{name: "result"} },
		func(string) screen.Screen { return &stubScreen{name: "dashboard"} },
	)
	return s, sess
}

func TestChoiceSelectionSavesAnswer(t *testing.T) {
	s, sess := testScreen(t)

	s.Update(keyPress('j')) // move cursor to option 1
	s.Update(enterKey())    // commit

	got, ok := sess.Answers().Get(0)
	if !ok || got != "1" {
		t.Errorf("saved answer = %q (%v), want 1", got, ok)
	}
}

func TestNavigationRestoresSavedAnswer(t *testing.T) {
	s, sess := testScreen(t)

	s.Update(keyPress('j'))
	s.Update(enterKey())
	s.Update(ctrlKey('n')) // to the short question

	if sess.Position() != 1 {
		t.Fatalf("position = %d, want 1", sess.Position())
	}
	if s.kind != inputShort {
		t.Fatalf("input kind = %v, want short input", s.kind)
	}

	s.Update(ctrlKey('p')) // back to the choice question
	if s.kind != inputChoice {
		t.Fatalf("input kind = %v, want choice input", s.kind)
	}
	if !s.choice.Answered() || s.choice.Committed != 1 {
		t.Errorf("choice component lost the saved selection: %+v", s.choice)
	}
}

func TestTypingSavesShortAnswer(t *testing.T) {
	s, sess := testScreen(t)
	s.Update(ctrlKey('n'))

	for _, r := range "hi" {
		s.Update(keyPress(r))
	}

	got, ok := sess.Answers().Get(1)
	if !ok || got != "hi" {
		t.Errorf("saved answer = %q (%v), want hi", got, ok)
	}
}

// frameMsg stands in for the periodic messages the inputs schedule,
// like cursor blinks, which must not touch the answer store.
type frameMsg struct{}

func TestViewingQuestionRecordsNoAnswer(t *testing.T) {
	s, sess := testScreen(t)

	s.Update(frameMsg{})
	s.Update(ctrlKey('n')) // short question
	s.Update(frameMsg{})

	if got, ok := sess.Answers().Get(1); ok {
		t.Errorf("untouched question recorded answer %q", got)
	}
	if n := sess.Answers().Answered(); n != 0 {
		t.Errorf("Answered() = %d, want 0", n)
	}
}

func TestSubmitOnlyOnLastQuestion(t *testing.T) {
	s, sess := testScreen(t)

	s.Update(ctrlKey('s'))
	if sess.State() != session.StateQuiz {
		t.Fatalf("state = %v, submit before the last question must be ignored", sess.State())
	}

	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('s'))
	if sess.State() != session.StateScoreModal {
		t.Fatalf("state = %v, want scoreModal", sess.State())
	}
}

func TestScoreModalAcknowledge(t *testing.T) {
	s, sess := testScreen(t)
	s.Update(ctrlKey('n'))
	s.Update(ctrlKey('s'))

	// Typing must be frozen while the modal is up.
	s.Update(keyPress('z'))
	if got, _ := sess.Answers().Get(1); got == "z" {
		t.Error("modal must not forward keys to the input")
	}

	_, cmd := s.Update(enterKey())
	if sess.State() != session.StateResult {
		t.Fatalf("state = %v, want result", sess.State())
	}
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want ReplaceScreenMsg", msg)
	}
	if replace.Screen.Title() != "result" {
		t.Errorf("navigated to %q, want result", replace.Screen.Title())
	}
}

func TestViewRendersQuestion(t *testing.T) {
	s, _ := testScreen(t)

	view := s.View(layout.MinWidth, layout.MinHeight)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
	for _, want := range []string{"pick", "Question 1 of 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
