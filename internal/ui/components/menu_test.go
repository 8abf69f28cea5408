package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

type pressedMsg struct{ label string }

func pressCmd(label string) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg { return pressedMsg{label} }
	}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testMenu() Menu {
	return NewMenu([]MenuItem{
		{Label: "first", Action: pressCmd("first")},
		{Label: "second", Action: pressCmd("second")},
	})
}

func TestMenuEnterPressesSelectedButton(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(key('j'))
	m, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter on an enabled item returned no command")
	}
	got, ok := cmd().(pressedMsg)
	if !ok || got.label != "second" {
		t.Errorf("pressed %v, want second", got)
	}
}

func TestMenuNavigationSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Action: pressCmd("a")},
		{Label: "b", Disabled: true},
		{Label: "c", Action: pressCmd("c")},
	})

	m, _ = m.Update(key('j'))
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(key('j'))
	if m.Selected != 2 {
		t.Errorf("Selected moved past the last item: %d", m.Selected)
	}
	m, _ = m.Update(key('k'))
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenuSelectionActivatesOneButton(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(key('j'))
	for i, b := range m.buttons {
		want := i == m.Selected
		if b.Active != want {
			t.Errorf("buttons[%d].Active = %v, want %v", i, b.Active, want)
		}
	}
}

func TestMenuViewListsAllLabels(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "first", Action: pressCmd("first")},
		{Label: "second", Disabled: true},
	})

	view := m.View()
	for _, label := range []string{"first", "second"} {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing label %q", label)
		}
	}
}

func TestInactiveButtonIgnoresEnter(t *testing.T) {
	b := NewButton("go", false, pressCmd("go"))

	b, cmd := b.Update(enterKey())
	if cmd != nil {
		t.Error("inactive button fired its action")
	}
	if b.Active {
		t.Error("update toggled the button active")
	}
}
