// ABOUTME: Tests for the generic list-form controller
// ABOUTME: Drives state transitions with a fake resource, no real backend

package crud

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/session"
)

type fakeRecord struct {
	id   int
	name string
}

func (r fakeRecord) RecordID() int { return r.id }

// fakeResource implements every capability; individual behaviors are swapped
// per test through the function fields.
type fakeResource struct {
	fields []Field

	listFn   func(ctx context.Context, filter string) ([]Record, error)
	createFn func(ctx context.Context, values Values) (Record, error)
	updateFn func(ctx context.Context, id int, values Values) (Record, error)
	deleteFn func(ctx context.Context, id int) error
	refsFn   func(ctx context.Context) ([]Option, error)

	createCalls int
	deleteCalls int
}

func (f *fakeResource) Title() string    { return "Widgets" }
func (f *fakeResource) Singular() string { return "Widget" }

func (f *fakeResource) Columns() []Column {
	return []Column{{Title: "ID", Width: 5}, {Title: "Name", Width: 20}}
}

func (f *fakeResource) Row(rec Record) []string {
	r := rec.(fakeRecord)
	return []string{fmt.Sprintf("%d", r.id), r.name}
}

func (f *fakeResource) Fields() []Field {
	if f.fields != nil {
		return f.fields
	}
	return []Field{{Key: "name", Title: "Name", Kind: FieldText, Required: true}}
}

func (f *fakeResource) List(ctx context.Context, filter string) ([]Record, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeResource) Create(ctx context.Context, values Values) (Record, error) {
	f.createCalls++
	if f.createFn != nil {
		return f.createFn(ctx, values)
	}
	return nil, errors.New("no create behavior")
}

func (f *fakeResource) Update(ctx context.Context, id int, values Values) (Record, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, values)
	}
	return nil, errors.New("no update behavior")
}

func (f *fakeResource) FormValues(rec Record) Values {
	return Values{"name": rec.(fakeRecord).name}
}

func (f *fakeResource) Delete(ctx context.Context, id int) error {
	f.deleteCalls++
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeResource) ReferenceOptions(ctx context.Context) ([]Option, error) {
	if f.refsFn != nil {
		return f.refsFn(ctx)
	}
	return nil, nil
}

func (f *fakeResource) FilterOptions(refs []Option) []Option {
	return refs
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(c *Controller, records ...Record) {
	c.Update(ListLoadedMsg{Gen: c.gen, Records: records})
}

func TestListLoadedPopulatesTable(t *testing.T) {
	c := New(&fakeResource{}, 80, 24)
	loaded(c, fakeRecord{1, "one"}, fakeRecord{2, "two"})

	if len(c.Records()) != 2 {
		t.Fatalf("expected 2 records, got %d", len(c.Records()))
	}
	if c.loading {
		t.Error("loading flag should clear after the list lands")
	}
}

func TestStaleListGenerationDiscarded(t *testing.T) {
	res := &fakeResource{listFn: func(ctx context.Context, filter string) ([]Record, error) {
		return []Record{fakeRecord{9, "fresh"}}, nil
	}}
	c := New(res, 80, 24)

	c.loadList() // gen 1
	c.loadList() // gen 2 supersedes it

	c.Update(ListLoadedMsg{Gen: 1, Records: []Record{fakeRecord{1, "stale"}}})
	if len(c.Records()) != 0 {
		t.Fatalf("stale generation should be discarded, got %d records", len(c.Records()))
	}

	c.Update(ListLoadedMsg{Gen: 2, Records: []Record{fakeRecord{9, "fresh"}}})
	if len(c.Records()) != 1 || c.Records()[0].RecordID() != 9 {
		t.Fatalf("current generation should apply, got %+v", c.Records())
	}
}

func TestValidationFailureNeverReachesNetwork(t *testing.T) {
	res := &fakeResource{}
	c := New(res, 80, 24)
	c.openForm(ModeCreate, Values{})

	_, cmd := c.submitCreate(Values{"name": "   "})
	if res.createCalls != 0 {
		t.Error("create must not be called when validation fails")
	}
	_, errMsg := c.Notifications()
	if errMsg != "Name is required" {
		t.Errorf("expected validation message, got %q", errMsg)
	}
	if c.CurrentMode() != ModeCreate {
		t.Error("form should stay open after a validation failure")
	}
	if cmd == nil {
		t.Error("expected form re-init cmd")
	}
}

func TestCreateSuccessAppendsAndNotifies(t *testing.T) {
	res := &fakeResource{createFn: func(ctx context.Context, values Values) (Record, error) {
		return fakeRecord{42, values["name"]}, nil
	}}
	c := New(res, 80, 24)
	loaded(c, fakeRecord{1, "one"})
	c.openForm(ModeCreate, Values{})

	_, cmd := c.submitCreate(Values{"name": "Goa"})
	if !c.busy {
		t.Error("controller should be busy while the create is in flight")
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if ok {
		// spinner tick plus the create command
		for _, sub := range batch {
			if m := sub(); m != nil {
				if created, isCreated := m.(CreatedMsg); isCreated {
					msg = created
				}
			}
		}
	}
	c.Update(msg)

	if c.busy {
		t.Error("busy flag should clear once the create lands")
	}
	if len(c.Records()) != 2 || c.Records()[1].RecordID() != 42 {
		t.Fatalf("created record should be appended, got %+v", c.Records())
	}
	success, _ := c.Notifications()
	if success != "Widget added successfully!" {
		t.Errorf("unexpected success message %q", success)
	}
	if c.CurrentMode() != ModeBrowse {
		t.Error("form should close on success")
	}
}

func TestCreateFailureKeepsBuffer(t *testing.T) {
	res := &fakeResource{}
	c := New(res, 80, 24)
	c.openForm(ModeCreate, Values{})
	c.pending = Values{"name": "Goa"}

	c.Update(CreatedMsg{Err: &api.Error{Kind: api.KindValidationFailed, Message: "name taken"}})

	if c.CurrentMode() != ModeCreate {
		t.Error("form should reopen after a failed create")
	}
	_, errMsg := c.Notifications()
	if errMsg != "name taken" {
		t.Errorf("expected server message, got %q", errMsg)
	}
	if got := c.snapshot()["name"]; got != "Goa" {
		t.Errorf("buffer should keep user input, got %q", got)
	}
	if len(c.Records()) != 0 {
		t.Error("failed create must not touch the list")
	}
}

func TestUpdateReplacesRecordInPlace(t *testing.T) {
	c := New(&fakeResource{}, 80, 24)
	loaded(c, fakeRecord{1, "one"}, fakeRecord{2, "two"}, fakeRecord{3, "three"})

	c.Update(UpdatedMsg{ID: 2, Record: fakeRecord{2, "renamed"}})

	records := c.Records()
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].(fakeRecord).name != "renamed" {
		t.Errorf("record 2 should be replaced, got %+v", records[1])
	}
	if records[0].(fakeRecord).name != "one" || records[2].(fakeRecord).name != "three" {
		t.Error("other records must be untouched")
	}
	success, _ := c.Notifications()
	if success != "Widget updated successfully!" {
		t.Errorf("unexpected success message %q", success)
	}
}

func TestUpdateNotFoundReloadsList(t *testing.T) {
	c := New(&fakeResource{}, 80, 24)
	loaded(c, fakeRecord{2, "two"})
	gen := c.gen

	_, cmd := c.Update(UpdatedMsg{ID: 2, Err: &api.Error{Kind: api.KindNotFound, Status: 404}})

	_, errMsg := c.Notifications()
	if errMsg != "Widget not found, it may already be deleted" {
		t.Errorf("unexpected message %q", errMsg)
	}
	if c.gen == gen {
		t.Error("a refetch should bump the list generation")
	}
	if cmd == nil {
		t.Error("expected reload cmd")
	}
	if c.CurrentMode() != ModeBrowse {
		t.Error("edit buffer should close when the record is gone")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	res := &fakeResource{}
	c := New(res, 80, 24)
	loaded(c, fakeRecord{7, "seven"})

	c.Update(key("d"))
	if c.CurrentMode() != ModeConfirmDelete {
		t.Fatal("delete should ask for confirmation first")
	}

	c.Update(key("n"))
	if c.CurrentMode() != ModeBrowse || res.deleteCalls != 0 {
		t.Fatal("declining the confirmation must not delete")
	}

	c.Update(key("d"))
	_, cmd := c.Update(key("y"))
	if cmd == nil {
		t.Fatal("confirming should dispatch the delete")
	}
	runBatch(cmd, c)
	if res.deleteCalls != 1 {
		t.Fatalf("expected one delete call, got %d", res.deleteCalls)
	}
	if len(c.Records()) != 0 {
		t.Error("deleted record should leave the list")
	}
	success, _ := c.Notifications()
	if success != "Widget deleted successfully!" {
		t.Errorf("unexpected success message %q", success)
	}
}

// runBatch executes a cmd (possibly a batch) and feeds resulting messages
// back into the controller, skipping spinner ticks.
func runBatch(cmd tea.Cmd, c *Controller) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub == nil {
				continue
			}
			if m := sub(); m != nil {
				switch m.(type) {
				case ListLoadedMsg, RefsLoadedMsg, CreatedMsg, UpdatedMsg, DeletedMsg:
					c.Update(m)
				}
			}
		}
		return
	}
	if msg != nil {
		c.Update(msg)
	}
}

func TestDeleteNotFoundReloadsList(t *testing.T) {
	c := New(&fakeResource{}, 80, 24)
	loaded(c, fakeRecord{7, "seven"})
	gen := c.gen

	_, cmd := c.Update(DeletedMsg{ID: 7, Err: &api.Error{Kind: api.KindNotFound, Status: 404}})

	_, errMsg := c.Notifications()
	if errMsg != "Widget not found, it may already be deleted" {
		t.Errorf("unexpected message %q", errMsg)
	}
	if c.gen == gen {
		t.Error("a refetch should bump the list generation")
	}
	if cmd == nil {
		t.Error("expected reload cmd")
	}
}

func TestUnauthorizedBubblesSessionExpired(t *testing.T) {
	c := New(&fakeResource{}, 80, 24)

	_, cmd := c.Update(ListLoadedMsg{Gen: c.gen, Err: &api.Error{Kind: api.KindUnauthorized, Status: 401, Message: "jwt expired"}})
	if cmd == nil {
		t.Fatal("unauthorized should emit a session expiry message")
	}
	msg := cmd()
	expired, ok := msg.(session.ExpiredMsg)
	if !ok {
		t.Fatalf("expected session.ExpiredMsg, got %T", msg)
	}
	if expired.Err == nil || expired.Err.Error() != "jwt expired" {
		t.Errorf("expiry should carry the cause, got %v", expired.Err)
	}
}

func TestBusyBlocksSecondMutation(t *testing.T) {
	res := &fakeResource{}
	c := New(res, 80, 24)
	c.busy = true

	_, cmd := c.submitCreate(Values{"name": "x"})
	if cmd != nil || res.createCalls != 0 {
		t.Error("a mutation in flight must block further submits")
	}
}

func TestSuccessNotificationExpires(t *testing.T) {
	c := New(&fakeResource{}, 80, 24)

	c.notifySuccess("Widget added successfully!")
	first := c.successSeq
	c.notifySuccess("Widget updated successfully!")

	// The first timer firing late must not clear the newer notification.
	c.Update(successExpiredMsg{seq: first})
	success, _ := c.Notifications()
	if success != "Widget updated successfully!" {
		t.Errorf("stale expiry cleared the wrong notification, got %q", success)
	}

	c.Update(successExpiredMsg{seq: c.successSeq})
	success, _ = c.Notifications()
	if success != "" {
		t.Errorf("notification should expire, got %q", success)
	}
}

func TestReferenceFieldsGateForms(t *testing.T) {
	res := &fakeResource{fields: []Field{
		{Key: "name", Title: "Name", Kind: FieldText, Required: true},
		{Key: "parent", Title: "Parent", Kind: FieldSelect, Required: true, Reference: true},
	}}
	c := New(res, 80, 24)
	loaded(c, fakeRecord{1, "one"})

	c.Update(key("a"))
	if c.CurrentMode() != ModeBrowse {
		t.Fatal("create must wait for reference options")
	}

	c.Update(RefsLoadedMsg{Options: []Option{{Label: "P", Value: "1"}}})
	c.Update(key("a"))
	if c.CurrentMode() != ModeCreate {
		t.Fatal("create should open once references are loaded")
	}
}

func TestFilterCyclesAndReloads(t *testing.T) {
	var gotFilter string
	res := &fakeResource{listFn: func(ctx context.Context, filter string) ([]Record, error) {
		gotFilter = filter
		return nil, nil
	}}
	c := New(res, 80, 24)
	c.Update(RefsLoadedMsg{Options: []Option{{Label: "A", Value: "1"}, {Label: "B", Value: "2"}}})

	if len(c.filters) != 3 {
		t.Fatalf("expected All plus two options, got %d", len(c.filters))
	}

	_, cmd := c.Update(key("f"))
	runBatch(cmd, c)
	if c.activeFilter() != "1" {
		t.Errorf("expected first option active, got %q", c.activeFilter())
	}
	if gotFilter != "1" {
		t.Errorf("list should be scoped by the active filter, got %q", gotFilter)
	}

	c.Update(key("f"))
	c.Update(key("f"))
	if c.activeFilter() != "" {
		t.Errorf("cycling past the end should return to All, got %q", c.activeFilter())
	}
}

func TestBackEmitsBackMsg(t *testing.T) {
	c := New(&fakeResource{}, 80, 24)
	loaded(c)

	_, cmd := c.Update(key("b"))
	if cmd == nil {
		t.Fatal("expected back cmd")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Fatal("expected BackMsg")
	}
}
