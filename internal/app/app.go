package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/studialabs/studia/internal/analysis"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/screens/dashboard"
	"github.com/studialabs/studia/internal/screens/landing"
	"github.com/studialabs/studia/internal/screens/loading"
	quizscreen "github.com/studialabs/studia/internal/screens/quiz"
	"github.com/studialabs/studia/internal/screens/result"
	"github.com/studialabs/studia/internal/session"
	"github.com/studialabs/studia/internal/telemetry"
	"github.com/studialabs/studia/internal/ui/layout"
)

// Options carries the app's injected dependencies.
type Options struct {
	// Analyzer turns a staged document into a quiz. Required.
	Analyzer analysis.Analyzer

	// Recorder persists session events. Optional; nil disables telemetry.
	Recorder telemetry.Recorder

	// InitialPath pre-fills the document path on the landing screen,
	// e.g. from a command line argument.
	InitialPath string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel wires the session, the screens and their navigation.
func newAppModel(opts Options) AppModel {
	sess := session.New()
	sessionID := uuid.New().String()

	// Screen factories close over each other so that navigation stays
	// free of package cycles.
	var (
		landingFactory   func() screen.Screen
		dashboardFactory func(notice string) screen.Screen
		loadingFactory   func(epoch int) screen.Screen
		quizFactory      func() screen.Screen
		resultFactory    func() screen.Screen
	)

	landingFactory = func() screen.Screen {
		return landing.New(sess, "", func() screen.Screen {
			return dashboardFactory("")
		})
	}
	dashboardFactory = func(notice string) screen.Screen {
		return dashboard.New(sess, opts.Recorder, sessionID, notice, loadingFactory, landingFactory)
	}
	loadingFactory = func(epoch int) screen.Screen {
		return loading.New(sess, opts.Analyzer, opts.Recorder, sessionID, epoch, quizFactory, dashboardFactory)
	}
	quizFactory = func() screen.Screen {
		return quizscreen.New(sess, opts.Recorder, sessionID, resultFactory, dashboardFactory)
	}
	resultFactory = func() screen.Screen {
		return result.New(sess, landingFactory)
	}

	first := landing.New(sess, opts.InitialPath, func() screen.Screen {
		return dashboardFactory("")
	})

	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
