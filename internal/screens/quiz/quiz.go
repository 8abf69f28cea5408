package quiz

import (
	"context"
	"errors"
	"strconv"

	tea "charm.land/bubbletea/v2"

	qz "github.com/studialabs/studia/internal/quiz"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/telemetry"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
)

// inputKind tracks which response component is active for the current
// question.
type inputKind int

const (
	inputChoice inputKind = iota
	inputShort
	inputEssay
)

// QuizScreen walks the user through the generated questions. After the
// final question is submitted it shows the score modal, then hands off
// to the result screen.
type QuizScreen struct {
	sess      *session.Session
	rec       telemetry.Recorder
	sessionID string

	kind   inputKind
	choice components.ChoiceList
	short  components.TextInput
	essay  components.TextArea

	resultFactory    func() screen.Screen
	dashboardFactory func(notice string) screen.Screen
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the session's current quiz.
func New(
	sess *session.Session,
	rec telemetry.Recorder,
	sessionID string,
	resultFactory func() screen.Screen,
	dashboardFactory func(notice string) screen.Screen,
) *QuizScreen {
	q := &QuizScreen{
		sess:             sess,
		rec:              rec,
		sessionID:        sessionID,
		resultFactory:    resultFactory,
		dashboardFactory: dashboardFactory,
	}
	q.buildInput()
	return q
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) Init() tea.Cmd {
	switch q.kind {
	case inputShort:
		return q.short.Init()
	case inputEssay:
		return q.essay.Init()
	}
	return nil
}

// buildInput rebuilds the response component for the current question,
// seeded with any previously saved response.
func (q *QuizScreen) buildInput() {
	current := q.sess.Current()
	if current == nil {
		return
	}

	saved, _ := q.sess.Answers().Get(q.sess.Position())

	switch question := current.(type) {
	case qz.ChoiceQuestion:
		q.kind = inputChoice
		committed := -1
		if idx, err := strconv.Atoi(saved); err == nil {
			committed = idx
		}
		q.choice = components.NewChoiceList(question.Options, committed)

	case qz.ShortQuestion:
		q.kind = inputShort
		q.short = components.NewTextInput("Type your answer...", saved, 0)

	case qz.EssayQuestion:
		q.kind = inputEssay
		q.essay = components.NewTextArea("Write a short passage...", saved, 60, 6)
	}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.sess.State() == session.StateScoreModal {
		return []layout.KeyHint{
			{Key: "Enter", Description: "See results"},
		}
	}

	hints := []layout.KeyHint{}
	if q.kind == inputChoice {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Options"},
			layout.KeyHint{Key: "Enter", Description: "Choose"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "Ctrl+P/N", Description: "Prev/Next"},
	)
	if q.atLast() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "Submit quiz"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

func (q *QuizScreen) atLast() bool {
	return q.sess.Position() == len(q.sess.Quiz())-1
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if q.sess.State() == session.StateScoreModal {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return q, q.acknowledge()
		}
		return q, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+p":
			if q.sess.Prev() {
				q.buildInput()
				return q, q.Init()
			}
			return q, nil
		case "ctrl+n":
			if q.sess.Next() {
				q.buildInput()
				return q, q.Init()
			}
			return q, nil
		case "ctrl+s":
			return q, q.submit()
		}
	}

	return q, q.updateInput(msg)
}

// updateInput forwards a message to the active response component and
// saves the response when it changed. Blink ticks and other no-op
// messages must not mark an untouched question as answered.
func (q *QuizScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch q.kind {
	case inputChoice:
		prev := q.choice.Committed
		q.choice, cmd = q.choice.Update(msg)
		if q.choice.Answered() && q.choice.Committed != prev {
			q.sess.SetAnswer(strconv.Itoa(q.choice.Committed))
		}
	case inputShort:
		prev := q.short.Value()
		q.short, cmd = q.short.Update(msg)
		if v := q.short.Value(); v != prev {
			q.sess.SetAnswer(v)
		}
	case inputEssay:
		prev := q.essay.Value()
		q.essay, cmd = q.essay.Update(msg)
		if v := q.essay.Value(); v != prev {
			q.sess.SetAnswer(v)
		}
	}

	return cmd
}

func (q *QuizScreen) submit() tea.Cmd {
	score, err := q.sess.Submit()
	switch {
	case errors.Is(err, session.ErrNotLastQuestion):
		return nil
	case err != nil:
		// A scoring fault aborts the attempt; the session is back at
		// the dashboard with the document still staged.
		next := q.dashboardFactory("Something went wrong while scoring. Please try again.")
		rec, sessionID := q.rec, q.sessionID
		return func() tea.Msg {
			if rec != nil {
				rec.AnalysisFailed(context.Background(), sessionID, "engine_fault")
			}
			return router.ReplaceScreenMsg{Screen: next}
		}
	}

	rec := q.rec
	sessionID := q.sessionID
	return func() tea.Msg {
		if rec != nil {
			rec.QuizCompleted(context.Background(), sessionID, score)
		}
		return nil
	}
}

func (q *QuizScreen) acknowledge() tea.Cmd {
	if err := q.sess.AcknowledgeScore(); err != nil {
		return nil
	}
	next := q.resultFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
