// ABOUTME: Destination management adapter with full CRUD
// ABOUTME: Filterable by destination type (domestic or international)

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

var dtypeOptions = []crud.Option{
	{Label: "Domestic", Value: "domestic"},
	{Label: "International", Value: "international"},
}

// Destinations manages the destination collection.
type Destinations struct {
	client *api.Client
}

func NewDestinations(client *api.Client) *Destinations {
	return &Destinations{client: client}
}

type destinationRecord struct {
	api.Destination
}

func (r destinationRecord) RecordID() int { return r.DID }

func (d *Destinations) Title() string    { return "Destinations" }
func (d *Destinations) Singular() string { return "Destination" }

func (d *Destinations) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 24},
		{Title: "Type", Width: 14},
		{Title: "Description", Width: 40},
	}
}

func (d *Destinations) Row(rec crud.Record) []string {
	r := rec.(destinationRecord)
	return []string{
		strconv.Itoa(r.DID),
		r.Name,
		r.DType,
		truncate(r.Description, 40),
	}
}

func (d *Destinations) Fields() []crud.Field {
	return []crud.Field{
		{Key: "name", Title: "Name", Placeholder: "e.g. Pokhara", Kind: crud.FieldText, Required: true},
		{Key: "dtype", Title: "Type", Kind: crud.FieldSelect, Required: true, Options: dtypeOptions},
		{Key: "image", Title: "Image URL", Placeholder: "https://...", Kind: crud.FieldText, Required: true},
		{Key: "description", Title: "Description", Kind: crud.FieldTextArea, Required: true},
	}
}

func (d *Destinations) List(ctx context.Context, filter string) ([]crud.Record, error) {
	items, err := d.client.ListDestinations(ctx, filter)
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, destinationRecord{item})
	}
	return records, nil
}

func (d *Destinations) input(values crud.Values) *api.DestinationInput {
	return &api.DestinationInput{
		Name:        values["name"],
		Image:       values["image"],
		Description: values["description"],
		DType:       values["dtype"],
	}
}

func (d *Destinations) Create(ctx context.Context, values crud.Values) (crud.Record, error) {
	out, err := d.client.CreateDestination(ctx, d.input(values))
	if err != nil {
		return nil, err
	}
	return destinationRecord{*out}, nil
}

func (d *Destinations) Update(ctx context.Context, id int, values crud.Values) (crud.Record, error) {
	out, err := d.client.UpdateDestination(ctx, id, d.input(values))
	if err != nil {
		return nil, err
	}
	return destinationRecord{*out}, nil
}

func (d *Destinations) FormValues(rec crud.Record) crud.Values {
	r := rec.(destinationRecord)
	return crud.Values{
		"name":        r.Name,
		"dtype":       r.DType,
		"image":       r.Image,
		"description": r.Description,
	}
}

func (d *Destinations) Delete(ctx context.Context, id int) error {
	return d.client.DeleteDestination(ctx, id)
}

// FilterOptions ignores refs; destination types are a fixed vocabulary.
func (d *Destinations) FilterOptions([]crud.Option) []crud.Option {
	return dtypeOptions
}
