// ABOUTME: Tests for the console menu navigation
// ABOUTME: Verifies cursor movement, selection, and quit messages

package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartsOnDashboard(t *testing.T) {
	m := New()
	if m.Selected() != ItemDashboard {
		t.Errorf("expected dashboard first, got %v", m.Selected())
	}
}

func TestNavigationBounds(t *testing.T) {
	m := New()

	m.Update(key("up"))
	if m.Selected() != ItemDashboard {
		t.Error("cursor must not move above the first entry")
	}

	for i := 0; i < 50; i++ {
		m.Update(key("down"))
	}
	if m.Selected() != ItemLogout {
		t.Errorf("cursor must stop at the last entry, got %v", m.Selected())
	}
}

func TestEnterEmitsSelection(t *testing.T) {
	m := New()
	m.Update(key("down")) // Destinations

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected selection cmd")
	}
	sel, ok := cmd().(SelectedMsg)
	if !ok {
		t.Fatalf("expected SelectedMsg, got %T", cmd())
	}
	if sel.Item != ItemDestinations {
		t.Errorf("expected destinations, got %v", sel.Item)
	}
}

func TestQuitKey(t *testing.T) {
	m := New()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit cmd")
	}
	if _, ok := cmd().(QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestVimKeysNavigate(t *testing.T) {
	m := New()
	m.Update(key("j"))
	m.Update(key("j"))
	m.Update(key("k"))
	if m.Selected() != ItemDestinations {
		t.Errorf("expected destinations after j j k, got %v", m.Selected())
	}
}
