package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/studialabs/studia/internal/ui/theme"
)

// Tabs is a horizontal tab bar switched with left/right or number keys.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab bar with the given labels.
func NewTabs(labels []string, active int) Tabs {
	if active < 0 || active >= len(labels) {
		active = 0
	}
	return Tabs{Labels: labels, Active: active}
}

// Update handles tab switching keys.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if t.Active > 0 {
			t.Active--
		}
	case "right", "l":
		if t.Active < len(t.Labels)-1 {
			t.Active++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(t.Labels) {
			t.Active = idx
		}
	}

	return t, nil
}

// View renders the tab bar.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, label := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.TabActive.Render(label))
		} else {
			parts = append(parts, theme.TabInactive.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
