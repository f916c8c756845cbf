// ABOUTME: Place management adapter with full CRUD
// ABOUTME: References destinations for the foreign-key select and list filter

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

// Places manages sights to visit at a destination.
type Places struct {
	client *api.Client
}

func NewPlaces(client *api.Client) *Places {
	return &Places{client: client}
}

type placeRecord struct {
	api.Place
}

func (r placeRecord) RecordID() int { return r.PID }

func (p *Places) Title() string    { return "Places" }
func (p *Places) Singular() string { return "Place" }

func (p *Places) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Detail", Width: 48},
		{Title: "Destination", Width: 12},
	}
}

func (p *Places) Row(rec crud.Record) []string {
	r := rec.(placeRecord)
	return []string{
		strconv.Itoa(r.PID),
		truncate(r.PDetail, 48),
		strconv.Itoa(r.DID),
	}
}

func (p *Places) Fields() []crud.Field {
	return []crud.Field{
		{Key: "pdetail", Title: "Detail", Kind: crud.FieldTextArea, Required: true},
		{Key: "did", Title: "Destination", Kind: crud.FieldSelect, Required: true, Reference: true},
		{Key: "pimg", Title: "Image URL", Placeholder: "https://...", Kind: crud.FieldText, Required: true},
	}
}

// List scopes by destination id when a filter is active.
func (p *Places) List(ctx context.Context, filter string) ([]crud.Record, error) {
	items, err := p.client.ListPlaces(ctx, atoi(filter))
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, placeRecord{item})
	}
	return records, nil
}

func (p *Places) input(values crud.Values) *api.PlaceInput {
	return &api.PlaceInput{
		PDetail: values["pdetail"],
		PImg:    values["pimg"],
		DID:     atoi(values["did"]),
	}
}

func (p *Places) Create(ctx context.Context, values crud.Values) (crud.Record, error) {
	out, err := p.client.CreatePlace(ctx, p.input(values))
	if err != nil {
		return nil, err
	}
	return placeRecord{*out}, nil
}

func (p *Places) Update(ctx context.Context, id int, values crud.Values) (crud.Record, error) {
	out, err := p.client.UpdatePlace(ctx, id, p.input(values))
	if err != nil {
		return nil, err
	}
	return placeRecord{*out}, nil
}

func (p *Places) FormValues(rec crud.Record) crud.Values {
	r := rec.(placeRecord)
	return crud.Values{
		"pdetail": r.PDetail,
		"did":     strconv.Itoa(r.DID),
		"pimg":    r.PImg,
	}
}

func (p *Places) Delete(ctx context.Context, id int) error {
	return p.client.DeletePlace(ctx, id)
}

// ReferenceOptions lists destinations for the foreign-key select.
func (p *Places) ReferenceOptions(ctx context.Context) ([]crud.Option, error) {
	return destinationOptions(ctx, p.client)
}

// FilterOptions scopes the list by destination.
func (p *Places) FilterOptions(refs []crud.Option) []crud.Option {
	return refs
}
