// ABOUTME: Package management adapter with full CRUD
// ABOUTME: References destinations for the foreign-key select and list filter

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

// Packages manages the bookable package collection.
type Packages struct {
	client *api.Client
}

func NewPackages(client *api.Client) *Packages {
	return &Packages{client: client}
}

type packageRecord struct {
	api.Package
}

func (r packageRecord) RecordID() int { return r.ID }

func (p *Packages) Title() string    { return "Packages" }
func (p *Packages) Singular() string { return "Package" }

func (p *Packages) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 26},
		{Title: "Price", Width: 10},
		{Title: "Destination", Width: 20},
		{Title: "Description", Width: 32},
	}
}

func (p *Packages) Row(rec crud.Record) []string {
	r := rec.(packageRecord)
	dest := strconv.Itoa(r.DestinationID)
	if r.Destination != nil {
		dest = r.Destination.Name
	}
	return []string{
		strconv.Itoa(r.ID),
		r.Name,
		strconv.FormatFloat(r.Price, 'f', 2, 64),
		dest,
		truncate(r.Description, 32),
	}
}

func (p *Packages) Fields() []crud.Field {
	return []crud.Field{
		{Key: "name", Title: "Name", Placeholder: "e.g. Annapurna Circuit", Kind: crud.FieldText, Required: true},
		{Key: "price", Title: "Price", Placeholder: "e.g. 499.99", Kind: crud.FieldNumber, Required: true, Float: true},
		{Key: "destinationId", Title: "Destination", Kind: crud.FieldSelect, Required: true, Reference: true},
		{Key: "image", Title: "Image URL", Placeholder: "https://...", Kind: crud.FieldText, Required: true},
		{Key: "description", Title: "Description", Kind: crud.FieldTextArea, Required: true},
	}
}

// List scopes by destination id when a filter is active.
func (p *Packages) List(ctx context.Context, filter string) ([]crud.Record, error) {
	items, err := p.client.ListPackages(ctx, atoi(filter))
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, packageRecord{item})
	}
	return records, nil
}

func (p *Packages) input(values crud.Values) *api.PackageInput {
	return &api.PackageInput{
		Name:          values["name"],
		Price:         parseFloat(values["price"]),
		Description:   values["description"],
		Image:         values["image"],
		DestinationID: atoi(values["destinationId"]),
	}
}

func (p *Packages) Create(ctx context.Context, values crud.Values) (crud.Record, error) {
	out, err := p.client.CreatePackage(ctx, p.input(values))
	if err != nil {
		return nil, err
	}
	return packageRecord{*out}, nil
}

func (p *Packages) Update(ctx context.Context, id int, values crud.Values) (crud.Record, error) {
	out, err := p.client.UpdatePackage(ctx, id, p.input(values))
	if err != nil {
		return nil, err
	}
	return packageRecord{*out}, nil
}

func (p *Packages) FormValues(rec crud.Record) crud.Values {
	r := rec.(packageRecord)
	return crud.Values{
		"name":          r.Name,
		"price":         strconv.FormatFloat(r.Price, 'f', -1, 64),
		"destinationId": strconv.Itoa(r.DestinationID),
		"image":         r.Image,
		"description":   r.Description,
	}
}

func (p *Packages) Delete(ctx context.Context, id int) error {
	return p.client.DeletePackage(ctx, id)
}

// ReferenceOptions lists destinations for the foreign-key select.
func (p *Packages) ReferenceOptions(ctx context.Context) ([]crud.Option, error) {
	return destinationOptions(ctx, p.client)
}

// FilterOptions scopes the list by destination.
func (p *Packages) FilterOptions(refs []crud.Option) []crud.Option {
	return refs
}

func destinationOptions(ctx context.Context, client *api.Client) ([]crud.Option, error) {
	items, err := client.ListDestinations(ctx, "")
	if err != nil {
		return nil, err
	}
	opts := make([]crud.Option, 0, len(items))
	for _, d := range items {
		opts = append(opts, crud.Option{Label: d.Name, Value: strconv.Itoa(d.DID)})
	}
	return opts, nil
}
