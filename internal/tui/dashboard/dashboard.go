// ABOUTME: Dashboard component displaying platform summary counts
// ABOUTME: Fetches destination and user counts concurrently on mount

package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/session"
	"github.com/tourbase/tourbase-admin/internal/tui/icons"
	"github.com/tourbase/tourbase-admin/internal/tui/styles"
)

// BackMsg asks the app to return to the menu.
type BackMsg struct{}

// destCountsMsg carries the destination summary fetch result.
type destCountsMsg struct {
	counts *api.DestinationCounts
	err    error
}

// userCountsMsg carries the account summary fetch result.
type userCountsMsg struct {
	counts *api.UserCounts
	err    error
}

// Dashboard shows the platform's headline numbers.
type Dashboard struct {
	client *api.Client
	spin   spinner.Model

	destinations *api.DestinationCounts
	users        *api.UserCounts
	errMsg       string

	width  int
	height int
}

// New creates a dashboard bound to the API client.
func New(client *api.Client, width, height int) *Dashboard {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)
	return &Dashboard{
		client: client,
		spin:   s,
		width:  width,
		height: height,
	}
}

// Init implements tea.Model. Both summaries load in parallel.
func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(d.spin.Tick, d.loadDestinations(), d.loadUsers())
}

// SetSize updates the dashboard dimensions.
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

func (d *Dashboard) loadDestinations() tea.Cmd {
	return func() tea.Msg {
		counts, err := d.client.DestinationCounts(context.Background())
		return destCountsMsg{counts: counts, err: err}
	}
}

func (d *Dashboard) loadUsers() tea.Cmd {
	return func() tea.Msg {
		counts, err := d.client.UserCounts(context.Background())
		return userCountsMsg{counts: counts, err: err}
	}
}

// Update implements tea.Model
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if d.loading() {
			var cmd tea.Cmd
			d.spin, cmd = d.spin.Update(msg)
			return d, cmd
		}
		return d, nil

	case destCountsMsg:
		if msg.err != nil {
			return d, d.fail(msg.err)
		}
		d.destinations = msg.counts
		return d, nil

	case userCountsMsg:
		if msg.err != nil {
			return d, d.fail(msg.err)
		}
		d.users = msg.counts
		return d, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return d, tea.Quit
		case "b", "esc":
			return d, func() tea.Msg { return BackMsg{} }
		case "r":
			d.destinations = nil
			d.users = nil
			d.errMsg = ""
			return d, tea.Batch(d.spin.Tick, d.loadDestinations(), d.loadUsers())
		}
	}
	return d, nil
}

func (d *Dashboard) fail(err error) tea.Cmd {
	if api.IsUnauthorized(err) {
		return func() tea.Msg { return session.ExpiredMsg{Err: err} }
	}
	d.errMsg = err.Error()
	return nil
}

func (d *Dashboard) loading() bool {
	return d.errMsg == "" && (d.destinations == nil || d.users == nil)
}

// View implements tea.Model
func (d *Dashboard) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(icons.App.String() + " Dashboard"))
	b.WriteString("\n")

	if d.errMsg != "" {
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + d.errMsg))
		b.WriteString("\n")
	}

	if d.loading() {
		b.WriteString(fmt.Sprintf("\n %s Loading summary...\n", d.spin.View()))
	} else {
		cards := make([]string, 0, 2)
		if d.destinations != nil {
			cards = append(cards, d.destinationCard())
		}
		if d.users != nil {
			cards = append(cards, d.userCard())
		}
		if len(cards) > 0 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
			b.WriteString("\n")
		}
	}

	help := fmt.Sprintf("%s refresh  %s back  %s quit",
		styles.KeyStyle.Render("r"),
		styles.KeyStyle.Render("b"),
		styles.KeyStyle.Render("q"))
	b.WriteString(styles.Help.Render(help))
	return b.String()
}

func (d *Dashboard) destinationCard() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(icons.Destination.String() + " Destinations"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total:         %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", d.destinations.Total))))
	b.WriteString(fmt.Sprintf("Domestic:      %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", d.destinations.Domestic))))
	b.WriteString(fmt.Sprintf("International: %s", styles.ValueStyle.Render(fmt.Sprintf("%d", d.destinations.International))))
	return styles.Panel.Render(b.String())
}

func (d *Dashboard) userCard() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(icons.Users.String() + " Users"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total:   %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", d.users.Total))))
	b.WriteString(fmt.Sprintf("Regular: %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", d.users.Regular))))
	b.WriteString(fmt.Sprintf("Admins:  %s", styles.ValueStyle.Render(fmt.Sprintf("%d", d.users.Admin))))
	return styles.Panel.Render(b.String())
}
