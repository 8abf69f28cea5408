package result

import (
	tea "charm.land/bubbletea/v2"

	"github.com/studialabs/studia/internal/review"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
)

var tabLabels = []string{"Analysis", "Scorecard", "Retry"}

// ResultScreen presents the graded attempt: the analysis view with the
// ability radar, the per-question scorecard, and the retry list of
// missed questions.
type ResultScreen struct {
	sess *session.Session
	tabs components.Tabs

	analysis  review.AnalysisView
	scorecard []review.ScorecardEntry
	retry     []review.RetryEntry

	landingFactory func() screen.Screen
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. The session must have a recorded score.
func New(sess *session.Session, landingFactory func() screen.Screen) *ResultScreen {
	score, _ := sess.Score()
	answers := sess.Answers().Snapshot()

	// A scored session always has a well-formed quiz, so these cannot
	// fail; a nil slice renders as an empty list regardless.
	scorecard, _ := review.Scorecard(sess.Quiz(), answers)
	retry, _ := review.Retry(sess.Quiz(), answers)

	return &ResultScreen{
		sess:           sess,
		tabs:           components.NewTabs(tabLabels, int(sess.ResultView())),
		analysis:       review.Analysis(sess.Summary(), score, review.DefaultMetricConfig()),
		scorecard:      scorecard,
		retry:          retry,
		landingFactory: landingFactory,
	}
}

func (r *ResultScreen) Title() string {
	return "Results"
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Switch tab"},
	}
	if r.sess.ResultView() != session.ViewAnalysis {
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Browse"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "R", Description: "New document"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
	return hints
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r":
		return r, r.restart()
	case "up", "k":
		r.moveSelection(-1)
		return r, nil
	case "down", "j":
		r.moveSelection(1)
		return r, nil
	}

	before := r.tabs.Active
	var cmd tea.Cmd
	r.tabs, cmd = r.tabs.Update(msg)
	if r.tabs.Active != before {
		r.sess.SetResultView(session.ResultView(r.tabs.Active))
	}
	return r, cmd
}

// moveSelection moves the cursor within the list of the active tab.
// The selection is a quiz position, so switching between scorecard and
// retry keeps pointing at the same question where possible.
func (r *ResultScreen) moveSelection(delta int) {
	switch r.sess.ResultView() {
	case session.ViewScorecard:
		pos := r.sess.Selected() + delta
		if pos >= 0 && pos < len(r.scorecard) {
			r.sess.Select(pos)
		}

	case session.ViewRetry:
		idx := r.retryIndex() + delta
		if idx >= 0 && idx < len(r.retry) {
			r.sess.Select(r.retry[idx].Position)
		}
	}
}

// retryIndex maps the session's selected quiz position to an index in
// the retry list, defaulting to the first entry.
func (r *ResultScreen) retryIndex() int {
	for i, entry := range r.retry {
		if entry.Position == r.sess.Selected() {
			return i
		}
	}
	return 0
}

func (r *ResultScreen) restart() tea.Cmd {
	r.sess.Reset()
	next := r.landingFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
