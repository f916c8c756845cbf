// ABOUTME: Food management adapter with full CRUD
// ABOUTME: References destinations for the foreign-key select and list filter

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

// Foods manages local dishes recommended for a destination.
type Foods struct {
	client *api.Client
}

func NewFoods(client *api.Client) *Foods {
	return &Foods{client: client}
}

type foodRecord struct {
	api.Food
}

func (r foodRecord) RecordID() int { return r.FID }

func (f *Foods) Title() string    { return "Foods" }
func (f *Foods) Singular() string { return "Food" }

func (f *Foods) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Detail", Width: 48},
		{Title: "Destination", Width: 12},
	}
}

func (f *Foods) Row(rec crud.Record) []string {
	r := rec.(foodRecord)
	return []string{
		strconv.Itoa(r.FID),
		truncate(r.FDetail, 48),
		strconv.Itoa(r.DID),
	}
}

func (f *Foods) Fields() []crud.Field {
	return []crud.Field{
		{Key: "fdetail", Title: "Detail", Kind: crud.FieldTextArea, Required: true},
		{Key: "did", Title: "Destination", Kind: crud.FieldSelect, Required: true, Reference: true},
		{Key: "fimg", Title: "Image URL", Placeholder: "https://...", Kind: crud.FieldText, Required: true},
	}
}

// List scopes by destination id when a filter is active.
func (f *Foods) List(ctx context.Context, filter string) ([]crud.Record, error) {
	items, err := f.client.ListFoods(ctx, atoi(filter))
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, foodRecord{item})
	}
	return records, nil
}

func (f *Foods) input(values crud.Values) *api.FoodInput {
	return &api.FoodInput{
		FDetail: values["fdetail"],
		FImg:    values["fimg"],
		DID:     atoi(values["did"]),
	}
}

func (f *Foods) Create(ctx context.Context, values crud.Values) (crud.Record, error) {
	out, err := f.client.CreateFood(ctx, f.input(values))
	if err != nil {
		return nil, err
	}
	return foodRecord{*out}, nil
}

func (f *Foods) Update(ctx context.Context, id int, values crud.Values) (crud.Record, error) {
	out, err := f.client.UpdateFood(ctx, id, f.input(values))
	if err != nil {
		return nil, err
	}
	return foodRecord{*out}, nil
}

func (f *Foods) FormValues(rec crud.Record) crud.Values {
	r := rec.(foodRecord)
	return crud.Values{
		"fdetail": r.FDetail,
		"did":     strconv.Itoa(r.DID),
		"fimg":    r.FImg,
	}
}

func (f *Foods) Delete(ctx context.Context, id int) error {
	return f.client.DeleteFood(ctx, id)
}

// ReferenceOptions lists destinations for the foreign-key select.
func (f *Foods) ReferenceOptions(ctx context.Context) ([]crud.Option, error) {
	return destinationOptions(ctx, f.client)
}

// FilterOptions scopes the list by destination.
func (f *Foods) FilterOptions(refs []crud.Option) []crud.Option {
	return refs
}
