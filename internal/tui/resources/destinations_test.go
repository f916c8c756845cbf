// ABOUTME: Tests for the destination adapter's client wiring
// ABOUTME: Covers filter passthrough, payload mapping, and buffer round trips

package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

func TestDestinationsListPassesFilter(t *testing.T) {
	var gotDType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDType = r.URL.Query().Get("dtype")
		json.NewEncoder(w).Encode([]api.Destination{{DID: 1, Name: "Pokhara", DType: "domestic"}})
	}))
	defer srv.Close()

	d := NewDestinations(api.New(srv.URL, nil))
	records, err := d.List(context.Background(), "domestic")
	if err != nil {
		t.Fatal(err)
	}
	if gotDType != "domestic" {
		t.Errorf("filter should reach the backend, got %q", gotDType)
	}
	if len(records) != 1 || records[0].RecordID() != 1 {
		t.Fatalf("unexpected records %+v", records)
	}
}

func TestDestinationsCreateMapsValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in api.DestinationInput
		json.NewDecoder(r.Body).Decode(&in)
		if in.Name != "Goa" || in.DType != "domestic" {
			t.Errorf("unexpected payload %+v", in)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(api.Destination{
			DID: 42, Name: in.Name, Image: in.Image, Description: in.Description, DType: in.DType,
		})
	}))
	defer srv.Close()

	d := NewDestinations(api.New(srv.URL, nil))
	rec, err := d.Create(context.Background(), crud.Values{
		"name": "Goa", "dtype": "domestic", "image": "https://img", "description": "Beaches",
	})
	if err != nil {
		t.Fatal(err)
	}
	if rec.RecordID() != 42 {
		t.Errorf("expected server-assigned id 42, got %d", rec.RecordID())
	}
}

func TestDestinationsFormValuesRoundTrip(t *testing.T) {
	d := NewDestinations(nil)
	rec := destinationRecord{api.Destination{
		DID: 3, Name: "Paris", Image: "https://img", Description: "City", DType: "international",
	}}

	values := d.FormValues(rec)
	for key, want := range map[string]string{
		"name": "Paris", "dtype": "international", "image": "https://img", "description": "City",
	} {
		if values[key] != want {
			t.Errorf("values[%q] = %q, want %q", key, values[key], want)
		}
	}
}

func TestDestinationsFilterOptionsAreStatic(t *testing.T) {
	d := NewDestinations(nil)
	opts := d.FilterOptions([]crud.Option{{Label: "ignored", Value: "9"}})
	if len(opts) != 2 || opts[0].Value != "domestic" || opts[1].Value != "international" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestRowTruncatesLongDescriptions(t *testing.T) {
	d := NewDestinations(nil)
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'x'
	}
	row := d.Row(destinationRecord{api.Destination{DID: 1, Name: "N", Description: string(long)}})
	if len(row[3]) > 40 {
		t.Errorf("description cell should be truncated, got %d chars", len(row[3]))
	}
}
