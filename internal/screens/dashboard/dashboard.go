package dashboard

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/telemetry"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
	"github.com/studialabs/studia/internal/ui/theme"
)

// DashboardScreen shows the staged document and starts quiz generation.
type DashboardScreen struct {
	sess      *session.Session
	rec       telemetry.Recorder
	sessionID string
	menu      components.Menu
	notice    string

	loadingFactory func(epoch int) screen.Screen
	landingFactory func() screen.Screen
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen. notice is an optional message carried
// over from a failed analysis.
func New(
	sess *session.Session,
	rec telemetry.Recorder,
	sessionID string,
	notice string,
	loadingFactory func(epoch int) screen.Screen,
	landingFactory func() screen.Screen,
) *DashboardScreen {
	d := &DashboardScreen{
		sess:           sess,
		rec:            rec,
		sessionID:      sessionID,
		notice:         notice,
		loadingFactory: loadingFactory,
		landingFactory: landingFactory,
	}
	d.menu = components.NewMenu([]components.MenuItem{
		{Label: "Generate quiz", Action: d.startAnalysis},
		{Label: "Study a different document", Action: d.changeDocument},
	})
	return d
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) startAnalysis() tea.Cmd {
	epoch, err := d.sess.BeginAnalysis()
	if err != nil {
		d.notice = err.Error()
		return nil
	}

	next := d.loadingFactory(epoch)
	return func() tea.Msg {
		if d.rec != nil {
			d.rec.AnalysisRequested(context.Background(), d.sessionID)
		}
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (d *DashboardScreen) changeDocument() tea.Cmd {
	d.sess.Reset()
	next := d.landingFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (d *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	doc := d.sess.Document()

	b.WriteString("\n\n")

	card := ""
	if doc != nil {
		name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(doc.Name)
		size := lipgloss.NewStyle().Foreground(theme.TextDim).Render(layout.FormatBytes(doc.Size))
		card = theme.Card.Render("📄 " + name + "\n   " + size)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(card))
	b.WriteString("\n\n")

	if d.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(d.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(d.menu.View()))

	return b.String()
}
