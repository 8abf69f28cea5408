package loading

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/analysis"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/telemetry"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
	"github.com/studialabs/studia/internal/ui/theme"
)

// analysisDoneMsg carries the outcome of a document analysis call,
// tagged with the epoch it was started under.
type analysisDoneMsg struct {
	Epoch  int
	Result *analysis.Result
	Err    error
}

// LoadingScreen runs document analysis in the background and shows a
// spinner. Results from a cancelled attempt are recognized by their
// stale epoch and dropped.
type LoadingScreen struct {
	sess      *session.Session
	analyzer  analysis.Analyzer
	rec       telemetry.Recorder
	sessionID string
	epoch     int
	spinner   components.Spinner
	cancel    context.CancelFunc

	quizFactory      func() screen.Screen
	dashboardFactory func(notice string) screen.Screen
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

// New creates a LoadingScreen for the analysis attempt with the given
// epoch.
func New(
	sess *session.Session,
	analyzer analysis.Analyzer,
	rec telemetry.Recorder,
	sessionID string,
	epoch int,
	quizFactory func() screen.Screen,
	dashboardFactory func(notice string) screen.Screen,
) *LoadingScreen {
	return &LoadingScreen{
		sess:             sess,
		analyzer:         analyzer,
		rec:              rec,
		sessionID:        sessionID,
		epoch:            epoch,
		spinner:          components.NewSpinner(),
		quizFactory:      quizFactory,
		dashboardFactory: dashboardFactory,
	}
}

func (l *LoadingScreen) Title() string {
	return "Reading your document"
}

func (l *LoadingScreen) Init() tea.Cmd {
	return tea.Batch(l.spinner.Init(), l.analyze())
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// analyze runs the analyzer off the UI loop.
func (l *LoadingScreen) analyze() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	doc := l.sess.Document()
	epoch := l.epoch

	return func() tea.Msg {
		defer cancel()
		res, err := l.analyzer.Analyze(ctx, doc)
		return analysisDoneMsg{Epoch: epoch, Result: res, Err: err}
	}
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisDoneMsg:
		return l.handleDone(msg)

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return l, l.cancelAnalysis()
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return l, cmd
}

// cancelAnalysis abandons the running attempt and returns to the
// dashboard. The in-flight call keeps running until its context is
// torn down; its result will arrive with a stale epoch and be ignored.
func (l *LoadingScreen) cancelAnalysis() tea.Cmd {
	if l.cancel != nil {
		l.cancel()
	}
	if err := l.sess.FailAnalysis(l.epoch); err != nil {
		return nil
	}

	next := l.dashboardFactory("")
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (l *LoadingScreen) handleDone(msg analysisDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Epoch != l.sess.Epoch() {
		// A newer attempt or a reset superseded this one.
		return l, nil
	}

	if msg.Err != nil {
		// The session returns to the dashboard; the document stays
		// staged so the user can retry.
		if err := l.sess.FailAnalysis(msg.Epoch); err != nil {
			return l, nil
		}
		return l, l.notifyFailure(msg.Err)
	}

	err := l.sess.CompleteAnalysis(msg.Epoch, msg.Result.Questions, msg.Result.Summary)
	switch {
	case errors.Is(err, session.ErrStaleEpoch):
		return l, nil
	case err != nil:
		// CompleteAnalysis already moved the session back to the
		// dashboard for an empty quiz.
		return l, l.notifyFailure(err)
	}

	next := l.quizFactory()
	return l, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (l *LoadingScreen) notifyFailure(cause error) tea.Cmd {
	reason := analysis.ClassifyFailure(cause)
	next := l.dashboardFactory(describeFailure(reason))
	sessionID := l.sessionID
	rec := l.rec

	return func() tea.Msg {
		if rec != nil {
			rec.AnalysisFailed(context.Background(), sessionID, string(reason))
		}
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func describeFailure(reason analysis.FailureReason) string {
	switch reason {
	case analysis.ReasonEmptyQuiz:
		return "The document produced no questions. Try a richer document."
	case analysis.ReasonMalformed:
		return "The generated quiz was malformed. Please try again."
	default:
		return "Could not reach the analysis service. Check your connection and try again."
	}
}

func (l *LoadingScreen) View(width, height int) string {
	var b strings.Builder

	doc := l.sess.Document()
	name := ""
	if doc != nil {
		name = doc.Name
	}

	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(l.spinner.View() + " Analyzing " + name + "..."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Summarizing the text and writing questions. This can take a minute."))

	return b.String()
}
