package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical stack of buttons with one selected at a time.
type Menu struct {
	Items    []MenuItem
	Selected int
	buttons  []Button
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	buttons := make([]Button, len(items))
	for i, item := range items {
		buttons[i] = NewButton(item.Label, i == selected, item.Action)
	}
	return Menu{
		Items:    items,
		Selected: selected,
		buttons:  buttons,
	}
}

// selectItem moves the selection and updates which button is active.
func (m Menu) selectItem(i int) Menu {
	m.Selected = i
	for j := range m.buttons {
		m.buttons[j].Active = j == i
	}
	return m
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				return m.selectItem(i), nil
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				return m.selectItem(i), nil
			}
		}
	default:
		// The active button handles enter.
		if m.Selected >= 0 && m.Selected < len(m.buttons) {
			var cmd tea.Cmd
			m.buttons[m.Selected], cmd = m.buttons[m.Selected].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		if item.Disabled {
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+item.Label+" ") + "\n"
			continue
		}
		s += m.buttons[i].View() + "\n"
	}
	return s
}
