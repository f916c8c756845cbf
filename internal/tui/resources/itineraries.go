// ABOUTME: Itinerary management adapter with full CRUD
// ABOUTME: References tours for the foreign-key select and list filter

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

// Itineraries manages the day-by-day plans attached to tours.
type Itineraries struct {
	client *api.Client
}

func NewItineraries(client *api.Client) *Itineraries {
	return &Itineraries{client: client}
}

type itineraryRecord struct {
	api.Itinerary
}

func (r itineraryRecord) RecordID() int { return r.IID }

func (i *Itineraries) Title() string    { return "Itineraries" }
func (i *Itineraries) Singular() string { return "Itinerary" }

func (i *Itineraries) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 28},
		{Title: "Tour", Width: 6},
		{Title: "Day 1", Width: 40},
	}
}

func (i *Itineraries) Row(rec crud.Record) []string {
	r := rec.(itineraryRecord)
	return []string{
		strconv.Itoa(r.IID),
		r.IName,
		strconv.Itoa(r.TID),
		truncate(r.IDay1, 40),
	}
}

func (i *Itineraries) Fields() []crud.Field {
	return []crud.Field{
		{Key: "iname", Title: "Name", Placeholder: "e.g. Classic 7-day plan", Kind: crud.FieldText, Required: true},
		{Key: "tid", Title: "Tour", Kind: crud.FieldSelect, Required: true, Reference: true},
		{Key: "iday1", Title: "Day 1", Kind: crud.FieldTextArea, Required: true},
		{Key: "iday2", Title: "Day 2", Kind: crud.FieldTextArea},
		{Key: "iday3", Title: "Day 3", Kind: crud.FieldTextArea},
		{Key: "iday4", Title: "Day 4", Kind: crud.FieldTextArea},
		{Key: "iday5", Title: "Day 5", Kind: crud.FieldTextArea},
		{Key: "iday6", Title: "Day 6", Kind: crud.FieldTextArea},
		{Key: "iday7", Title: "Day 7", Kind: crud.FieldTextArea},
	}
}

// List scopes by tour id when a filter is active.
func (i *Itineraries) List(ctx context.Context, filter string) ([]crud.Record, error) {
	items, err := i.client.ListItineraries(ctx, atoi(filter))
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, itineraryRecord{item})
	}
	return records, nil
}

func (i *Itineraries) input(values crud.Values) *api.ItineraryInput {
	return &api.ItineraryInput{
		IName: values["iname"],
		IDay1: values["iday1"],
		IDay2: values["iday2"],
		IDay3: values["iday3"],
		IDay4: values["iday4"],
		IDay5: values["iday5"],
		IDay6: values["iday6"],
		IDay7: values["iday7"],
		TID:   atoi(values["tid"]),
	}
}

func (i *Itineraries) Create(ctx context.Context, values crud.Values) (crud.Record, error) {
	out, err := i.client.CreateItinerary(ctx, i.input(values))
	if err != nil {
		return nil, err
	}
	return itineraryRecord{*out}, nil
}

func (i *Itineraries) Update(ctx context.Context, id int, values crud.Values) (crud.Record, error) {
	out, err := i.client.UpdateItinerary(ctx, id, i.input(values))
	if err != nil {
		return nil, err
	}
	return itineraryRecord{*out}, nil
}

func (i *Itineraries) FormValues(rec crud.Record) crud.Values {
	r := rec.(itineraryRecord)
	return crud.Values{
		"iname": r.IName,
		"tid":   strconv.Itoa(r.TID),
		"iday1": r.IDay1,
		"iday2": r.IDay2,
		"iday3": r.IDay3,
		"iday4": r.IDay4,
		"iday5": r.IDay5,
		"iday6": r.IDay6,
		"iday7": r.IDay7,
	}
}

func (i *Itineraries) Delete(ctx context.Context, id int) error {
	return i.client.DeleteItinerary(ctx, id)
}

// ReferenceOptions lists tours for the foreign-key select.
func (i *Itineraries) ReferenceOptions(ctx context.Context) ([]crud.Option, error) {
	items, err := i.client.ListTours(ctx, 0)
	if err != nil {
		return nil, err
	}
	opts := make([]crud.Option, 0, len(items))
	for _, t := range items {
		opts = append(opts, crud.Option{Label: t.TName, Value: strconv.Itoa(t.TID)})
	}
	return opts, nil
}

// FilterOptions scopes the list by tour.
func (i *Itineraries) FilterOptions(refs []crud.Option) []crud.Option {
	return refs
}
