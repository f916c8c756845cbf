// ABOUTME: Tour management adapter with full CRUD
// ABOUTME: References packages for the foreign-key select and list filter

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

// Tours manages the guided tour collection.
type Tours struct {
	client *api.Client
}

func NewTours(client *api.Client) *Tours {
	return &Tours{client: client}
}

type tourRecord struct {
	api.Tour
}

func (r tourRecord) RecordID() int { return r.TID }

func (t *Tours) Title() string    { return "Tours" }
func (t *Tours) Singular() string { return "Tour" }

func (t *Tours) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 28},
		{Title: "Days", Width: 6},
		{Title: "Pickup", Width: 20},
		{Title: "Package", Width: 9},
		{Title: "Overview", Width: 30},
	}
}

func (t *Tours) Row(rec crud.Record) []string {
	r := rec.(tourRecord)
	return []string{
		strconv.Itoa(r.TID),
		r.TName,
		strconv.Itoa(r.TDay),
		r.TPickup,
		strconv.Itoa(r.PackageID),
		truncate(r.TOverview, 30),
	}
}

func (t *Tours) Fields() []crud.Field {
	return []crud.Field{
		{Key: "tname", Title: "Name", Placeholder: "e.g. Everest Base Camp Trek", Kind: crud.FieldText, Required: true},
		{Key: "tday", Title: "Duration (days)", Placeholder: "e.g. 12", Kind: crud.FieldNumber, Required: true},
		{Key: "tpickup", Title: "Pickup point", Placeholder: "e.g. Kathmandu airport", Kind: crud.FieldText, Required: true},
		{Key: "package_id", Title: "Package", Kind: crud.FieldSelect, Required: true, Reference: true},
		{Key: "timg1", Title: "Image 1 URL", Placeholder: "https://...", Kind: crud.FieldText, Required: true},
		{Key: "timg2", Title: "Image 2 URL", Kind: crud.FieldText},
		{Key: "timg3", Title: "Image 3 URL", Kind: crud.FieldText},
		{Key: "timg4", Title: "Image 4 URL", Kind: crud.FieldText},
		{Key: "toverview", Title: "Overview", Kind: crud.FieldTextArea, Required: true},
		{Key: "thighlights", Title: "Highlights", Kind: crud.FieldTextArea},
	}
}

// List scopes by package id when a filter is active.
func (t *Tours) List(ctx context.Context, filter string) ([]crud.Record, error) {
	items, err := t.client.ListTours(ctx, atoi(filter))
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, tourRecord{item})
	}
	return records, nil
}

func (t *Tours) input(values crud.Values) *api.TourInput {
	return &api.TourInput{
		TName:       values["tname"],
		TDay:        atoi(values["tday"]),
		TPickup:     values["tpickup"],
		TImg1:       values["timg1"],
		TImg2:       values["timg2"],
		TImg3:       values["timg3"],
		TImg4:       values["timg4"],
		TOverview:   values["toverview"],
		THighlights: values["thighlights"],
		PackageID:   atoi(values["package_id"]),
	}
}

func (t *Tours) Create(ctx context.Context, values crud.Values) (crud.Record, error) {
	out, err := t.client.CreateTour(ctx, t.input(values))
	if err != nil {
		return nil, err
	}
	return tourRecord{*out}, nil
}

func (t *Tours) Update(ctx context.Context, id int, values crud.Values) (crud.Record, error) {
	out, err := t.client.UpdateTour(ctx, id, t.input(values))
	if err != nil {
		return nil, err
	}
	return tourRecord{*out}, nil
}

func (t *Tours) FormValues(rec crud.Record) crud.Values {
	r := rec.(tourRecord)
	return crud.Values{
		"tname":       r.TName,
		"tday":        strconv.Itoa(r.TDay),
		"tpickup":     r.TPickup,
		"package_id":  strconv.Itoa(r.PackageID),
		"timg1":       r.TImg1,
		"timg2":       r.TImg2,
		"timg3":       r.TImg3,
		"timg4":       r.TImg4,
		"toverview":   r.TOverview,
		"thighlights": r.THighlights,
	}
}

func (t *Tours) Delete(ctx context.Context, id int) error {
	return t.client.DeleteTour(ctx, id)
}

// ReferenceOptions lists packages for the foreign-key select.
func (t *Tours) ReferenceOptions(ctx context.Context) ([]crud.Option, error) {
	items, err := t.client.ListPackages(ctx, 0)
	if err != nil {
		return nil, err
	}
	opts := make([]crud.Option, 0, len(items))
	for _, p := range items {
		opts = append(opts, crud.Option{Label: p.Name, Value: strconv.Itoa(p.ID)})
	}
	return opts, nil
}

// FilterOptions scopes the list by package.
func (t *Tours) FilterOptions(refs []crud.Option) []crud.Option {
	return refs
}
