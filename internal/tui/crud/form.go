// ABOUTME: huh form construction for the create and edit buffers
// ABOUTME: Builds field widgets from resource descriptors with a shared theme

package crud

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tourbase/tourbase-admin/internal/tui/styles"
)

// formTheme returns a huh theme matching the console palette.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	gray := lipgloss.Color("#9CA3AF")
	grayLight := lipgloss.Color("#E5E7EB")
	slate := lipgloss.Color("#334155")

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(grayLight)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(styles.Info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(slate).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(gray).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(gray)

	return t
}

// openForm builds a fresh huh form seeded from initial and switches into the
// given mode. Returned cmd must be dispatched so the form can start.
func (c *Controller) openForm(mode Mode, initial Values) tea.Cmd {
	c.mode = mode
	c.formVals = make(map[string]*string, len(c.res.Fields()))

	var inputs []huh.Field
	for _, f := range c.res.Fields() {
		value := new(string)
		*value = initial[f.Key]
		c.formVals[f.Key] = value

		switch f.Kind {
		case FieldSelect:
			opts := f.Options
			if f.Reference {
				opts = c.refs
			}
			hopts := make([]huh.Option[string], 0, len(opts))
			for _, o := range opts {
				hopts = append(hopts, huh.NewOption(o.Label, o.Value))
			}
			inputs = append(inputs, huh.NewSelect[string]().
				Title(f.Title).
				Options(hopts...).
				Value(value))
		case FieldTextArea:
			inputs = append(inputs, huh.NewText().
				Title(f.Title).
				Placeholder(f.Placeholder).
				Value(value))
		default:
			inputs = append(inputs, huh.NewInput().
				Title(f.Title).
				Placeholder(f.Placeholder).
				Value(value))
		}
	}

	title := fmt.Sprintf("Add %s", c.res.Singular())
	if mode == ModeEdit {
		title = fmt.Sprintf("Edit %s", c.res.Singular())
	}
	c.form = huh.NewForm(
		huh.NewGroup(inputs...).Title(title),
	).WithTheme(formTheme())
	return c.form.Init()
}

// snapshot copies the live form buffer into a Values map.
func (c *Controller) snapshot() Values {
	values := make(Values, len(c.formVals))
	for key, ptr := range c.formVals {
		values[key] = *ptr
	}
	return values
}

func (c *Controller) closeForm() {
	c.mode = ModeBrowse
	c.form = nil
	c.formVals = nil
	c.pending = nil
	c.editID = 0
}
