package landing

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/intake"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
	"github.com/studialabs/studia/internal/ui/theme"
)

// LandingScreen asks for a PDF to study. Accepting a document moves the
// session to the dashboard.
type LandingScreen struct {
	sess             *session.Session
	input            components.TextInput
	errMsg           string
	dashboardFactory func() screen.Screen
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates a LandingScreen. initialPath seeds the path input, e.g.
// from a command line argument.
func New(sess *session.Session, initialPath string, dashboardFactory func() screen.Screen) *LandingScreen {
	return &LandingScreen{
		sess:             sess,
		input:            components.NewTextInput("Path to a PDF, e.g. notes/biology.pdf", initialPath, 0),
		dashboardFactory: dashboardFactory,
	}
}

func (l *LandingScreen) Title() string {
	return "Welcome"
}

func (l *LandingScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open document"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return l, l.accept()
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// accept stages the document at the entered path and moves on to the
// dashboard.
func (l *LandingScreen) accept() tea.Cmd {
	path := strings.TrimSpace(l.input.Value())
	if path == "" {
		l.errMsg = "Enter the path of a PDF to study."
		return nil
	}

	doc, err := intake.Stage(path)
	if err != nil {
		l.errMsg = describeIntakeErr(err)
		return nil
	}

	if err := l.sess.AcceptDocument(doc); err != nil {
		l.errMsg = err.Error()
		return nil
	}

	l.errMsg = ""
	next := l.dashboardFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func describeIntakeErr(err error) string {
	switch {
	case errors.Is(err, intake.ErrInvalidDocumentType):
		return "That file is not a PDF. Studia reads PDF documents only."
	case errors.Is(err, intake.ErrTooLarge):
		return "That file is larger than the 50 MB limit."
	default:
		return "Could not open the file: " + err.Error()
	}
}

func (l *LandingScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(RenderBanner(width))
	b.WriteString("\n\n")

	tagline := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Turn any document into a study quiz")
	b.WriteString(tagline)
	b.WriteString("\n\n\n")

	prompt := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Which PDF are we studying today?")
	b.WriteString(prompt)
	b.WriteString("\n\n")

	field := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(l.input.View())
	b.WriteString(field)

	if l.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(l.errMsg))
	}

	return b.String()
}
