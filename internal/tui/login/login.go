// ABOUTME: Login screen as a bubbletea model wrapping a huh credentials form
// ABOUTME: Rejects non-admin accounts before any token is persisted

package login

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/session"
	"github.com/tourbase/tourbase-admin/internal/tui/icons"
	"github.com/tourbase/tourbase-admin/internal/tui/styles"
)

// LoggedInMsg is sent when an admin signin succeeds.
type LoggedInMsg struct {
	Token string
	User  *session.User
}

// CancelledMsg is sent when the user abandons the login form.
type CancelledMsg struct{}

type resultMsg struct {
	resp *api.LoginResponse
	err  error
}

// Login is the credentials screen.
type Login struct {
	client *api.Client
	form   *huh.Form

	email    string
	password string

	busy   bool
	errMsg string
}

// New creates the login screen.
func New(client *api.Client) *Login {
	l := &Login{client: client}
	l.form = l.createForm()
	return l
}

func (l *Login) createForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Placeholder("admin@example.com").
				Value(&l.email),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&l.password),
		).Title(icons.Lock.String()+" Sign in"),
	).WithTheme(huh.ThemeBase())
}

// Init implements tea.Model
func (l *Login) Init() tea.Cmd {
	return l.form.Init()
}

// Update implements tea.Model
func (l *Login) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		return l.handleResult(msg)

	case tea.KeyMsg:
		if l.busy {
			return l, nil
		}
		if msg.String() == "esc" {
			return l, func() tea.Msg { return CancelledMsg{} }
		}
	}

	if l.busy {
		return l, nil
	}

	form, cmd := l.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		l.form = f
	}

	switch l.form.State {
	case huh.StateCompleted:
		return l.submit()
	case huh.StateAborted:
		return l, func() tea.Msg { return CancelledMsg{} }
	}
	return l, cmd
}

// submit validates the buffer locally and dispatches the signin call.
func (l *Login) submit() (tea.Model, tea.Cmd) {
	email := strings.TrimSpace(l.email)
	if email == "" || l.password == "" {
		l.errMsg = "email and password are required"
		l.form = l.createForm()
		return l, l.form.Init()
	}
	l.busy = true
	password := l.password
	return l, func() tea.Msg {
		resp, err := l.client.SignIn(context.Background(), email, password)
		return resultMsg{resp: resp, err: err}
	}
}

func (l *Login) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	l.busy = false
	if msg.err != nil {
		// The backend message ("Invalid credentials") is shown verbatim.
		l.errMsg = msg.err.Error()
		l.password = ""
		l.form = l.createForm()
		return l, l.form.Init()
	}

	user := &session.User{
		ID:       msg.resp.User.ID,
		FullName: msg.resp.User.FullName,
		Email:    msg.resp.User.Email,
		Role:     msg.resp.User.Role,
	}
	if user.Role != session.RoleAdmin {
		l.errMsg = "only admins can access the console"
		l.password = ""
		l.form = l.createForm()
		return l, l.form.Init()
	}

	l.errMsg = ""
	token := msg.resp.Token
	return l, func() tea.Msg {
		return LoggedInMsg{Token: token, User: user}
	}
}

// View implements tea.Model
func (l *Login) View() string {
	var b strings.Builder
	if l.errMsg != "" {
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + l.errMsg))
		b.WriteString("\n\n")
	}
	if l.busy {
		b.WriteString(styles.Subtitle.Render("Signing in..."))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(l.form.View())
	return b.String()
}

// Error exposes the visible error message.
func (l *Login) Error() string {
	return l.errMsg
}

// SetError seeds the error banner, used when a session expires upstream.
func (l *Login) SetError(message string) {
	l.errMsg = message
}
