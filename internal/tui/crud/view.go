// ABOUTME: Rendering for the list-form controller
// ABOUTME: Composes title, notifications, table or form, and help line

package crud

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tourbase/tourbase-admin/internal/tui/icons"
	"github.com/tourbase/tourbase-admin/internal/tui/styles"
)

// View implements tea.Model.
func (c *Controller) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(c.header()))
	b.WriteString("\n")

	if c.success != "" {
		b.WriteString(styles.SuccessBanner.Render(icons.CheckOK.String() + " " + c.success))
		b.WriteString("\n")
	}
	if c.errMsg != "" {
		b.WriteString(styles.ErrorBanner.Render(icons.Critical.String() + " " + c.errMsg))
		b.WriteString("\n")
	}

	switch {
	case c.busy:
		b.WriteString(fmt.Sprintf("\n %s Saving...\n", c.spin.View()))
	case c.mode == ModeCreate || c.mode == ModeEdit:
		if c.form != nil {
			b.WriteString(c.form.View())
		}
	case c.mode == ModeConfirmDelete:
		b.WriteString(c.confirmView())
	case c.loading:
		b.WriteString(fmt.Sprintf("\n %s Loading %s...\n", c.spin.View(), strings.ToLower(c.res.Title())))
	case len(c.records) == 0:
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("\nNo %s found.", strings.ToLower(c.res.Title()))))
		b.WriteString("\n")
	default:
		b.WriteString(c.tbl.View())
		b.WriteString("\n")
	}

	b.WriteString(c.helpView())
	return b.String()
}

func (c *Controller) header() string {
	title := c.res.Title()
	if name := c.activeFilterLabel(); name != "" {
		title += styles.Subtitle.Render(fmt.Sprintf("  (%s)", name))
	}
	if !c.loading {
		title += styles.Subtitle.Render(fmt.Sprintf("  %d total", len(c.records)))
	}
	return title
}

func (c *Controller) activeFilterLabel() string {
	if c.filterIdx <= 0 || c.filterIdx >= len(c.filters) {
		return ""
	}
	return c.filters[c.filterIdx].Label
}

func (c *Controller) confirmView() string {
	name := strings.ToLower(c.res.Singular())
	body := fmt.Sprintf("%s Delete this %s?\n\nThis cannot be undone.", icons.Delete.String(), name)
	panel := styles.ActivePanel.BorderForeground(styles.Danger).Render(body)
	keys := fmt.Sprintf("%s confirm  %s cancel",
		styles.KeyStyle.Render("y"),
		styles.KeyStyle.Render("n"))
	return lipgloss.JoinVertical(lipgloss.Left, "", panel, styles.Help.Render(keys), "")
}

func (c *Controller) helpView() string {
	switch c.mode {
	case ModeCreate, ModeEdit:
		return styles.Help.Render(fmt.Sprintf("%s cancel", styles.KeyStyle.Render("esc")))
	case ModeConfirmDelete:
		return ""
	}

	var keys []string
	if c.creator != nil {
		keys = append(keys, styles.KeyStyle.Render("a")+" add")
	}
	if c.updater != nil {
		keys = append(keys, styles.KeyStyle.Render("e")+" edit")
	}
	if c.deleter != nil {
		keys = append(keys, styles.KeyStyle.Render("d")+" delete")
	}
	if len(c.filters) > 1 {
		keys = append(keys, styles.KeyStyle.Render("f")+" filter")
	}
	keys = append(keys,
		styles.KeyStyle.Render("r")+" refresh",
		styles.KeyStyle.Render("b")+" back",
		styles.KeyStyle.Render("q")+" quit")
	return styles.Help.Render(strings.Join(keys, "  "))
}
