// ABOUTME: Main console menu for picking a management screen
// ABOUTME: Emits a typed selection message consumed by the root app

package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tourbase/tourbase-admin/internal/tui/icons"
	"github.com/tourbase/tourbase-admin/internal/tui/styles"
)

// Item identifies a console destination.
type Item int

const (
	ItemDashboard Item = iota
	ItemDestinations
	ItemPackages
	ItemTours
	ItemItineraries
	ItemActivities
	ItemPlaces
	ItemFoods
	ItemUsers
	ItemLogout
)

// SelectedMsg is sent when the user picks a menu entry.
type SelectedMsg struct {
	Item Item
}

// QuitMsg is sent when the user quits from the menu.
type QuitMsg struct{}

type entry struct {
	icon  icons.Icon
	label string
	item  Item
}

// Menu is the console's top-level navigation.
type Menu struct {
	entries []entry
	cursor  int
}

// New creates the console menu.
func New() *Menu {
	return &Menu{
		entries: []entry{
			{icons.App, "Dashboard", ItemDashboard},
			{icons.Destination, "Destinations", ItemDestinations},
			{icons.Package, "Packages", ItemPackages},
			{icons.Tour, "Tours", ItemTours},
			{icons.Itinerary, "Itineraries", ItemItineraries},
			{icons.Activity, "Activities", ItemActivities},
			{icons.Place, "Places", ItemPlaces},
			{icons.Food, "Foods", ItemFoods},
			{icons.Users, "Users", ItemUsers},
			{icons.Lock, "Log out", ItemLogout},
		},
	}
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "enter":
		item := m.entries[m.cursor].item
		return m, func() tea.Msg { return SelectedMsg{Item: item} }
	case "q", "esc":
		return m, func() tea.Msg { return QuitMsg{} }
	}
	return m, nil
}

// View implements tea.Model
func (m *Menu) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Manage"))
	b.WriteString("\n")
	for i, e := range m.entries {
		line := fmt.Sprintf("  %s %s", e.icon.String(), e.label)
		if i == m.cursor {
			line = styles.KeyStyle.Render(fmt.Sprintf("> %s %s", e.icon.String(), e.label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Selected exposes the entry under the cursor.
func (m *Menu) Selected() Item {
	return m.entries[m.cursor].item
}
