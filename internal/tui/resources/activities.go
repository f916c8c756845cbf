// ABOUTME: Activity management adapter with full CRUD
// ABOUTME: References destinations for the foreign-key select and list filter

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

// Activities manages things to do at a destination.
type Activities struct {
	client *api.Client
}

func NewActivities(client *api.Client) *Activities {
	return &Activities{client: client}
}

type activityRecord struct {
	api.Activity
}

func (r activityRecord) RecordID() int { return r.AID }

func (a *Activities) Title() string    { return "Activities" }
func (a *Activities) Singular() string { return "Activity" }

func (a *Activities) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Detail", Width: 48},
		{Title: "Destination", Width: 12},
	}
}

func (a *Activities) Row(rec crud.Record) []string {
	r := rec.(activityRecord)
	return []string{
		strconv.Itoa(r.AID),
		truncate(r.ADetail, 48),
		strconv.Itoa(r.DID),
	}
}

func (a *Activities) Fields() []crud.Field {
	return []crud.Field{
		{Key: "adetail", Title: "Detail", Kind: crud.FieldTextArea, Required: true},
		{Key: "did", Title: "Destination", Kind: crud.FieldSelect, Required: true, Reference: true},
		{Key: "aimg", Title: "Image URL", Placeholder: "https://...", Kind: crud.FieldText, Required: true},
	}
}

// List scopes by destination id when a filter is active.
func (a *Activities) List(ctx context.Context, filter string) ([]crud.Record, error) {
	items, err := a.client.ListActivities(ctx, atoi(filter))
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, activityRecord{item})
	}
	return records, nil
}

func (a *Activities) input(values crud.Values) *api.ActivityInput {
	return &api.ActivityInput{
		ADetail: values["adetail"],
		AImg:    values["aimg"],
		DID:     atoi(values["did"]),
	}
}

func (a *Activities) Create(ctx context.Context, values crud.Values) (crud.Record, error) {
	out, err := a.client.CreateActivity(ctx, a.input(values))
	if err != nil {
		return nil, err
	}
	return activityRecord{*out}, nil
}

func (a *Activities) Update(ctx context.Context, id int, values crud.Values) (crud.Record, error) {
	out, err := a.client.UpdateActivity(ctx, id, a.input(values))
	if err != nil {
		return nil, err
	}
	return activityRecord{*out}, nil
}

func (a *Activities) FormValues(rec crud.Record) crud.Values {
	r := rec.(activityRecord)
	return crud.Values{
		"adetail": r.ADetail,
		"did":     strconv.Itoa(r.DID),
		"aimg":    r.AImg,
	}
}

func (a *Activities) Delete(ctx context.Context, id int) error {
	return a.client.DeleteActivity(ctx, id)
}

// ReferenceOptions lists destinations for the foreign-key select.
func (a *Activities) ReferenceOptions(ctx context.Context) ([]crud.Option, error) {
	return destinationOptions(ctx, a.client)
}

// FilterOptions scopes the list by destination.
func (a *Activities) FilterOptions(refs []crud.Option) []crud.Option {
	return refs
}
