// ABOUTME: Root bubbletea model for the admin console
// ABOUTME: Guards every protected screen and routes messages to child models

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/logging"
	"github.com/tourbase/tourbase-admin/internal/session"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
	"github.com/tourbase/tourbase-admin/internal/tui/dashboard"
	"github.com/tourbase/tourbase-admin/internal/tui/icons"
	"github.com/tourbase/tourbase-admin/internal/tui/login"
	"github.com/tourbase/tourbase-admin/internal/tui/menu"
	"github.com/tourbase/tourbase-admin/internal/tui/resources"
	"github.com/tourbase/tourbase-admin/internal/tui/styles"
)

// Screen represents the current console screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenMenu
	ScreenDashboard
	ScreenResource
)

// Layout constants
const (
	minTerminalWidth = 80
	frameOverhead    = 4 // header, blank line, blank line, footer
)

// App is the root model for the console.
type App struct {
	client *api.Client
	store  *session.Store

	screen Screen
	width  int
	height int

	// Child models
	loginScreen *login.Login
	menuScreen  *menu.Menu
	dashScreen  *dashboard.Dashboard
	resource    *crud.Controller
}

// New creates the console app. The stored session decides the first screen:
// an admin session resumes at the menu, anything else lands on login.
func New(client *api.Client, store *session.Store) *App {
	a := &App{
		client:     client,
		store:      store,
		menuScreen: menu.New(),
	}
	if store.Get().IsAdmin() {
		a.screen = ScreenMenu
	} else {
		a.screen = ScreenLogin
		a.loginScreen = login.New(client)
	}
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	if a.screen == ScreenLogin && a.loginScreen != nil {
		return a.loginScreen.Init()
	}
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashScreen != nil {
			a.dashScreen.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.resource != nil {
			a.resource.SetSize(a.contentWidth(), a.contentHeight())
		}
		return a.forward(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.forward(msg)

	case login.LoggedInMsg:
		return a.handleLoggedIn(msg)

	case login.CancelledMsg:
		return a, tea.Quit

	case menu.SelectedMsg:
		return a.handleMenuSelected(msg)

	case menu.QuitMsg:
		return a, tea.Quit

	case dashboard.BackMsg, crud.BackMsg:
		a.screen = ScreenMenu
		a.dashScreen = nil
		a.resource = nil
		return a, nil

	case session.ExpiredMsg:
		return a.handleExpired(msg)

	default:
		// Spinners and huh form internals need everything else.
		return a.forward(msg)
	}
}

// forward routes a message to the active child model.
func (a *App) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen == nil {
			return a, nil
		}
		model, cmd := a.loginScreen.Update(msg)
		a.loginScreen = model.(*login.Login)
		return a, cmd
	case ScreenMenu:
		if a.menuScreen == nil {
			return a, nil
		}
		model, cmd := a.menuScreen.Update(msg)
		a.menuScreen = model.(*menu.Menu)
		return a, cmd
	case ScreenDashboard:
		if a.dashScreen == nil {
			return a, nil
		}
		model, cmd := a.dashScreen.Update(msg)
		a.dashScreen = model.(*dashboard.Dashboard)
		return a, cmd
	case ScreenResource:
		if a.resource == nil {
			return a, nil
		}
		model, cmd := a.resource.Update(msg)
		a.resource = model.(*crud.Controller)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleLoggedIn(msg login.LoggedInMsg) (tea.Model, tea.Cmd) {
	if err := a.store.Set(msg.Token, msg.User); err != nil {
		logging.Error("persist session", err)
		if a.loginScreen != nil {
			a.loginScreen.SetError("could not save session: " + err.Error())
		}
		return a, nil
	}
	a.screen = ScreenMenu
	a.loginScreen = nil
	return a, nil
}

func (a *App) handleMenuSelected(msg menu.SelectedMsg) (tea.Model, tea.Cmd) {
	if msg.Item == menu.ItemLogout {
		return a.logout("")
	}
	if !a.store.Get().IsAdmin() {
		return a.logout("session is no longer valid, sign in again")
	}

	if msg.Item == menu.ItemDashboard {
		a.dashScreen = dashboard.New(a.client, a.contentWidth(), a.contentHeight())
		a.screen = ScreenDashboard
		return a, a.dashScreen.Init()
	}

	res := a.resourceFor(msg.Item)
	if res == nil {
		return a, nil
	}
	a.resource = crud.New(res, a.contentWidth(), a.contentHeight())
	a.screen = ScreenResource
	return a, a.resource.Init()
}

func (a *App) resourceFor(item menu.Item) crud.Resource {
	switch item {
	case menu.ItemDestinations:
		return resources.NewDestinations(a.client)
	case menu.ItemPackages:
		return resources.NewPackages(a.client)
	case menu.ItemTours:
		return resources.NewTours(a.client)
	case menu.ItemItineraries:
		return resources.NewItineraries(a.client)
	case menu.ItemActivities:
		return resources.NewActivities(a.client)
	case menu.ItemPlaces:
		return resources.NewPlaces(a.client)
	case menu.ItemFoods:
		return resources.NewFoods(a.client)
	case menu.ItemUsers:
		return resources.NewUsers(a.client)
	}
	return nil
}

func (a *App) handleExpired(msg session.ExpiredMsg) (tea.Model, tea.Cmd) {
	logging.Error("session expired", msg.Err)
	message := "session expired, sign in again"
	if msg.Err != nil {
		message = msg.Err.Error()
	}
	return a.logout(message)
}

// logout clears the stored session and returns to login. A non-empty message
// seeds the login error banner.
func (a *App) logout(message string) (tea.Model, tea.Cmd) {
	if err := a.store.Clear(); err != nil {
		logging.Error("clear session", err)
	}
	a.screen = ScreenLogin
	a.dashScreen = nil
	a.resource = nil
	a.loginScreen = login.New(a.client)
	if message != "" {
		a.loginScreen.SetError(message)
	}
	return a, a.loginScreen.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenLogin:
		if a.loginScreen != nil {
			content = a.loginScreen.View()
		}
	case ScreenMenu:
		if a.menuScreen != nil {
			content = a.menuScreen.View()
		}
	case ScreenDashboard:
		if a.dashScreen != nil {
			content = a.dashScreen.View()
		}
	case ScreenResource:
		if a.resource != nil {
			content = a.resource.View()
		}
	}
	return a.wrapWithFrame(content)
}

func (a *App) contentWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth - 4
	}
	return a.width - 4
}

func (a *App) contentHeight() int {
	return a.height - frameOverhead
}

// renderHeader creates the header bar with app branding and signed-in user
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s", icons.App.String(), titleStyle.Render("Tourbase Admin"))

	rightText := ""
	if sess := a.store.Get(); !sess.Empty() && a.screen != ScreenLogin {
		rightText = contextStyle.Render(sess.User.FullName) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}
	fill := strings.Repeat("─", fillWidth)

	return borderStyle.Render("╭─" + leftText + fill + rightText + "─╮")
}

// renderFooter creates the footer with keyboard shortcuts per screen
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenLogin:
		shortcuts = []string{"Tab Next", "Enter Submit", "Esc Quit"}
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenDashboard:
		shortcuts = []string{"r Refresh", "b Back", "q Quit"}
	case ScreenResource:
		shortcuts = []string{"↑↓ Navigate", "Enter Edit", "b Back", "q Quit"}
	}

	var styled []string
	var plain []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styled = append(styled, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styled = append(styled, s)
		}
		plain = append(plain, s)
	}

	leftText := " " + strings.Join(styled, "  ")
	leftPlain := " " + strings.Join(plain, "  ")

	fillWidth := width - 4 - lipgloss.Width(leftPlain)
	if fillWidth < 0 {
		fillWidth = 0
	}
	fill := strings.Repeat("─", fillWidth)

	return borderStyle.Render("╰─" + leftText + fill + "─╯")
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder
	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())
	return sb.String()
}

// Run starts the console.
func Run(client *api.Client, store *session.Store) error {
	p := tea.NewProgram(New(client, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
