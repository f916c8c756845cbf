// ABOUTME: Generic list-form controller driving one resource management screen
// ABOUTME: Owns list view state, create/edit forms, delete confirm, notifications

package crud

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/logging"
	"github.com/tourbase/tourbase-admin/internal/session"
	"github.com/tourbase/tourbase-admin/internal/tui/styles"
)

// successTTL is how long success notifications stay visible. Errors persist
// until replaced or dismissed.
const successTTL = 3 * time.Second

// Mode is the controller's interaction state.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeCreate
	ModeEdit
	ModeConfirmDelete
)

// ListLoadedMsg carries a finished list fetch. Gen identifies the fetch
// generation; stale generations are discarded without touching view state.
type ListLoadedMsg struct {
	Gen     int
	Records []Record
	Err     error
}

// RefsLoadedMsg carries the finished reference-collection fetch.
type RefsLoadedMsg struct {
	Gen     int
	Options []Option
	Err     error
}

// CreatedMsg carries the result of a create call.
type CreatedMsg struct {
	Record Record
	Err    error
}

// UpdatedMsg carries the result of an update call.
type UpdatedMsg struct {
	ID     int
	Record Record
	Err    error
}

// DeletedMsg carries the result of a delete call.
type DeletedMsg struct {
	ID  int
	Err error
}

// BackMsg asks the app to leave this screen.
type BackMsg struct{}

type successExpiredMsg struct {
	seq int
}

// Controller is the reusable management screen: list on mount, create form,
// edit buffer, confirmed delete, transient notifications. Instantiated once
// per resource page.
type Controller struct {
	res      Resource
	creator  Creator
	updater  Updater
	deleter  Deleter
	refres   Referencer
	filterer Filterer

	mode    Mode
	records []Record
	tbl     table.Model
	spin    spinner.Model

	gen        int // list fetch generation; stale responses are dropped
	loading    bool
	refsLoaded bool
	refs       []Option

	filters   []Option
	filterIdx int

	form     *huh.Form
	formVals map[string]*string
	pending  Values // kept so a failed mutation preserves user input
	editID   int
	deleteID int

	busy bool // one mutation in flight at a time

	success    string
	successSeq int
	errMsg     string

	width  int
	height int
}

// New creates a controller for one resource screen. Capabilities are
// discovered from the adapter's type.
func New(res Resource, width, height int) *Controller {
	c := &Controller{
		res:    res,
		mode:   ModeBrowse,
		width:  width,
		height: height,
	}
	c.creator, _ = res.(Creator)
	c.updater, _ = res.(Updater)
	c.deleter, _ = res.(Deleter)
	c.refres, _ = res.(Referencer)
	c.filterer, _ = res.(Filterer)

	c.spin = spinner.New()
	c.spin.Spinner = spinner.Dot
	c.spin.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	cols := make([]table.Column, 0, len(res.Columns()))
	for _, col := range res.Columns() {
		cols = append(cols, table.Column{Title: col.Title, Width: col.Width})
	}
	c.tbl = table.New(
		table.WithColumns(cols),
		table.WithFocused(true),
		table.WithHeight(c.tableHeight()),
	)

	if c.refres == nil {
		c.refsLoaded = true
		c.rebuildFilters()
	}
	return c
}

// Init implements tea.Model. List and reference fetches go out concurrently;
// each renders its own partial state as it lands.
func (c *Controller) Init() tea.Cmd {
	cmds := []tea.Cmd{c.spin.Tick, c.loadList()}
	if c.refres != nil {
		cmds = append(cmds, c.loadRefs())
	}
	return tea.Batch(cmds...)
}

// SetSize updates layout bounds.
func (c *Controller) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.tbl.SetHeight(c.tableHeight())
}

func (c *Controller) tableHeight() int {
	h := c.height - 8
	if h < 4 {
		h = 4
	}
	return h
}

// Records exposes the current list view state.
func (c *Controller) Records() []Record {
	return c.records
}

// Mode exposes the interaction state.
func (c *Controller) CurrentMode() Mode {
	return c.mode
}

// Notifications exposes the active success and error messages.
func (c *Controller) Notifications() (success, errMsg string) {
	return c.success, c.errMsg
}

// Update implements tea.Model.
func (c *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
		return c.forwardToForm(msg)

	case spinner.TickMsg:
		if c.loading || c.busy {
			var cmd tea.Cmd
			c.spin, cmd = c.spin.Update(msg)
			return c, cmd
		}
		return c, nil

	case ListLoadedMsg:
		return c.handleListLoaded(msg)

	case RefsLoadedMsg:
		return c.handleRefsLoaded(msg)

	case CreatedMsg:
		return c.handleCreated(msg)

	case UpdatedMsg:
		return c.handleUpdated(msg)

	case DeletedMsg:
		return c.handleDeleted(msg)

	case successExpiredMsg:
		if msg.seq == c.successSeq {
			c.success = ""
		}
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)

	default:
		// huh forms need non-key messages (blink, etc.)
		return c.forwardToForm(msg)
	}
}

func (c *Controller) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch c.mode {
	case ModeBrowse:
		return c.handleBrowseKey(msg)
	case ModeCreate, ModeEdit:
		if c.busy {
			return c, nil
		}
		if msg.String() == "esc" {
			c.closeForm()
			return c, nil
		}
		return c.forwardToForm(msg)
	case ModeConfirmDelete:
		if c.busy {
			return c, nil
		}
		switch msg.String() {
		case "y", "Y", "enter":
			return c.submitDelete()
		case "n", "N", "esc":
			c.mode = ModeBrowse
			c.deleteID = 0
			return c, nil
		}
		return c, nil
	}
	return c, nil
}

func (c *Controller) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return c, tea.Quit
	case "b", "esc":
		return c, func() tea.Msg { return BackMsg{} }
	case "r":
		c.errMsg = ""
		return c, c.reload()
	case "a":
		if c.creator != nil && c.formReady() {
			return c, c.openForm(ModeCreate, Values{})
		}
		return c, nil
	case "e", "enter":
		if c.updater == nil || !c.formReady() {
			return c, nil
		}
		if rec, ok := c.selectedRecord(); ok {
			c.editID = rec.RecordID()
			return c, c.openForm(ModeEdit, c.updater.FormValues(rec))
		}
		return c, nil
	case "d":
		if c.deleter == nil {
			return c, nil
		}
		if rec, ok := c.selectedRecord(); ok {
			c.deleteID = rec.RecordID()
			c.mode = ModeConfirmDelete
		}
		return c, nil
	case "f":
		if len(c.filters) > 1 {
			c.filterIdx = (c.filterIdx + 1) % len(c.filters)
			return c, c.reload()
		}
		return c, nil
	case "x":
		c.errMsg = ""
		return c, nil
	default:
		var cmd tea.Cmd
		c.tbl, cmd = c.tbl.Update(msg)
		return c, cmd
	}
}

// formReady reports whether create/edit can open. Reference-backed selects
// are unusable until the referenced collection has arrived.
func (c *Controller) formReady() bool {
	if c.refsLoaded {
		return true
	}
	for _, f := range c.res.Fields() {
		if f.Reference {
			return false
		}
	}
	return true
}

func (c *Controller) selectedRecord() (Record, bool) {
	idx := c.tbl.Cursor()
	if idx < 0 || idx >= len(c.records) {
		return nil, false
	}
	return c.records[idx], true
}

// reload issues a new list fetch under a fresh generation; anything still in
// flight from the previous generation lands dead.
func (c *Controller) reload() tea.Cmd {
	return tea.Batch(c.loadList(), c.spin.Tick)
}

func (c *Controller) loadList() tea.Cmd {
	c.gen++
	gen := c.gen
	filter := c.activeFilter()
	c.loading = true
	return func() tea.Msg {
		records, err := c.res.List(context.Background(), filter)
		return ListLoadedMsg{Gen: gen, Records: records, Err: err}
	}
}

func (c *Controller) loadRefs() tea.Cmd {
	gen := c.gen
	return func() tea.Msg {
		opts, err := c.refres.ReferenceOptions(context.Background())
		return RefsLoadedMsg{Gen: gen, Options: opts, Err: err}
	}
}

func (c *Controller) activeFilter() string {
	if c.filterIdx <= 0 || c.filterIdx >= len(c.filters) {
		return ""
	}
	return c.filters[c.filterIdx].Value
}

func (c *Controller) rebuildFilters() {
	if c.filterer == nil {
		return
	}
	opts := c.filterer.FilterOptions(c.refs)
	if len(opts) == 0 {
		return
	}
	c.filters = append([]Option{{Label: "All", Value: ""}}, opts...)
	if c.filterIdx >= len(c.filters) {
		c.filterIdx = 0
	}
}

func (c *Controller) handleListLoaded(msg ListLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != c.gen {
		// A newer fetch owns the view state, or the screen moved on.
		return c, nil
	}
	c.loading = false
	if msg.Err != nil {
		if api.IsUnauthorized(msg.Err) {
			return c, sessionExpired(msg.Err)
		}
		logging.Error("list "+c.res.Title(), msg.Err)
		c.errMsg = msg.Err.Error()
		return c, nil
	}
	c.records = msg.Records
	c.errMsg = ""
	c.rebuildRows()
	return c, nil
}

func (c *Controller) handleRefsLoaded(msg RefsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if api.IsUnauthorized(msg.Err) {
			return c, sessionExpired(msg.Err)
		}
		logging.Error("refs "+c.res.Title(), msg.Err)
		c.errMsg = msg.Err.Error()
		return c, nil
	}
	c.refs = msg.Options
	c.refsLoaded = true
	c.rebuildFilters()
	return c, nil
}

func (c *Controller) handleCreated(msg CreatedMsg) (tea.Model, tea.Cmd) {
	c.busy = false
	if msg.Err != nil {
		if api.IsUnauthorized(msg.Err) {
			return c, sessionExpired(msg.Err)
		}
		// Keep the buffer so the user can correct and resubmit.
		c.errMsg = msg.Err.Error()
		return c, c.openForm(ModeCreate, c.pending)
	}
	c.records = append(c.records, msg.Record)
	c.rebuildRows()
	c.closeForm()
	return c, c.notifySuccess(fmt.Sprintf("%s added successfully!", c.res.Singular()))
}

func (c *Controller) handleUpdated(msg UpdatedMsg) (tea.Model, tea.Cmd) {
	c.busy = false
	if msg.Err != nil {
		if api.IsUnauthorized(msg.Err) {
			return c, sessionExpired(msg.Err)
		}
		if api.IsNotFound(msg.Err) {
			c.closeForm()
			c.errMsg = fmt.Sprintf("%s not found, it may already be deleted", c.res.Singular())
			return c, c.reload()
		}
		c.errMsg = msg.Err.Error()
		return c, c.openForm(ModeEdit, c.pending)
	}
	for i, rec := range c.records {
		if rec.RecordID() == msg.ID {
			c.records[i] = msg.Record
			break
		}
	}
	c.rebuildRows()
	c.closeForm()
	return c, c.notifySuccess(fmt.Sprintf("%s updated successfully!", c.res.Singular()))
}

func (c *Controller) handleDeleted(msg DeletedMsg) (tea.Model, tea.Cmd) {
	c.busy = false
	c.mode = ModeBrowse
	c.deleteID = 0
	if msg.Err != nil {
		if api.IsUnauthorized(msg.Err) {
			return c, sessionExpired(msg.Err)
		}
		if api.IsNotFound(msg.Err) {
			// The record is gone server-side; reconcile by re-fetching.
			c.errMsg = fmt.Sprintf("%s not found, it may already be deleted", c.res.Singular())
			return c, c.reload()
		}
		c.errMsg = msg.Err.Error()
		return c, nil
	}
	kept := c.records[:0]
	for _, rec := range c.records {
		if rec.RecordID() != msg.ID {
			kept = append(kept, rec)
		}
	}
	c.records = kept
	c.rebuildRows()
	return c, c.notifySuccess(fmt.Sprintf("%s deleted successfully!", c.res.Singular()))
}

func (c *Controller) notifySuccess(message string) tea.Cmd {
	c.success = message
	c.successSeq++
	seq := c.successSeq
	return tea.Tick(successTTL, func(time.Time) tea.Msg {
		return successExpiredMsg{seq: seq}
	})
}

func sessionExpired(err error) tea.Cmd {
	return func() tea.Msg {
		return session.ExpiredMsg{Err: err}
	}
}

func (c *Controller) rebuildRows() {
	rows := make([]table.Row, 0, len(c.records))
	for _, rec := range c.records {
		rows = append(rows, table.Row(c.res.Row(rec)))
	}
	c.tbl.SetRows(rows)
	if c.tbl.Cursor() >= len(rows) && len(rows) > 0 {
		c.tbl.SetCursor(len(rows) - 1)
	}
}

// forwardToForm passes a message to the active huh form and reacts to the
// form finishing or aborting.
func (c *Controller) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if c.form == nil || (c.mode != ModeCreate && c.mode != ModeEdit) {
		return c, nil
	}
	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}
	switch c.form.State {
	case huh.StateCompleted:
		return c.submitForm()
	case huh.StateAborted:
		c.closeForm()
		return c, nil
	}
	return c, cmd
}

// submitForm validates the buffer and dispatches the mutation. Validation
// failures never reach the network.
func (c *Controller) submitForm() (tea.Model, tea.Cmd) {
	values := c.snapshot()
	switch c.mode {
	case ModeCreate:
		return c.submitCreate(values)
	case ModeEdit:
		return c.submitUpdate(c.editID, values)
	}
	return c, nil
}

func (c *Controller) submitCreate(values Values) (tea.Model, tea.Cmd) {
	if c.busy || c.creator == nil {
		return c, nil
	}
	if err := Validate(c.res.Fields(), values); err != nil {
		c.errMsg = err.Error()
		return c, c.openForm(ModeCreate, values)
	}
	c.pending = values
	c.busy = true
	return c, tea.Batch(c.spin.Tick, func() tea.Msg {
		rec, err := c.creator.Create(context.Background(), values)
		return CreatedMsg{Record: rec, Err: err}
	})
}

func (c *Controller) submitUpdate(id int, values Values) (tea.Model, tea.Cmd) {
	if c.busy || c.updater == nil {
		return c, nil
	}
	if err := Validate(c.res.Fields(), values); err != nil {
		c.errMsg = err.Error()
		return c, c.openForm(ModeEdit, values)
	}
	c.pending = values
	c.busy = true
	return c, tea.Batch(c.spin.Tick, func() tea.Msg {
		rec, err := c.updater.Update(context.Background(), id, values)
		return UpdatedMsg{ID: id, Record: rec, Err: err}
	})
}

func (c *Controller) submitDelete() (tea.Model, tea.Cmd) {
	if c.busy || c.deleter == nil || c.deleteID == 0 {
		c.mode = ModeBrowse
		return c, nil
	}
	id := c.deleteID
	c.busy = true
	return c, tea.Batch(c.spin.Tick, func() tea.Msg {
		err := c.deleter.Delete(context.Background(), id)
		return DeletedMsg{ID: id, Err: err}
	})
}
