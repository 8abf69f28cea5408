package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/ui/theme"
)

// ChoiceList is a selector over the options of a choice question.
// Unlike a graded selector it never reveals the correct option; grading
// happens after the whole quiz is submitted.
type ChoiceList struct {
	items     []string
	Cursor    int
	Committed int // committed option index, -1 when unanswered
}

// NewChoiceList creates a selector over options. committed is the
// previously saved option index, or -1.
func NewChoiceList(options []string, committed int) ChoiceList {
	cursor := 0
	if committed >= 0 && committed < len(options) {
		cursor = committed
	}
	return ChoiceList{
		items:     options,
		Cursor:    cursor,
		Committed: committed,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and commits on enter or space.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.items)-1 {
			c.Cursor++
		}
	case "enter", "space":
		c.Committed = c.Cursor
	}

	return c, nil
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	labels := "ABCDEFGH"

	for i, opt := range c.items {
		label := "?"
		if i < len(labels) {
			label = string(labels[i])
		}

		marker := "( )"
		if i == c.Committed {
			marker = "(●)"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == c.Committed:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}

// Answered reports whether an option has been committed.
func (c ChoiceList) Answered() bool {
	return c.Committed >= 0
}
