// ABOUTME: Tests for field validation rules
// ABOUTME: Required and numeric checks run before any network call

package crud

import (
	"testing"

	"github.com/tourbase/tourbase-admin/internal/api"
)

func TestValidate(t *testing.T) {
	fields := []Field{
		{Key: "name", Title: "Name", Kind: FieldText, Required: true},
		{Key: "price", Title: "Price", Kind: FieldNumber, Required: true, Float: true},
		{Key: "days", Title: "Days", Kind: FieldNumber},
		{Key: "notes", Title: "Notes", Kind: FieldTextArea},
	}

	cases := []struct {
		name    string
		values  Values
		wantErr string
	}{
		{"all valid", Values{"name": "Trek", "price": "499.99", "days": "12"}, ""},
		{"optional fields empty", Values{"name": "Trek", "price": "10"}, ""},
		{"missing required", Values{"price": "10"}, "Name is required"},
		{"whitespace only", Values{"name": "   ", "price": "10"}, "Name is required"},
		{"bad float", Values{"name": "Trek", "price": "cheap"}, "Price must be a number"},
		{"bad int", Values{"name": "Trek", "price": "10", "days": "twelve"}, "Days must be a number"},
		{"float in int field", Values{"name": "Trek", "price": "10", "days": "1.5"}, "Days must be a number"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(fields, tc.values)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !api.IsValidationFailed(err) {
				t.Errorf("expected ValidationFailed kind, got %v", api.KindOf(err))
			}
			if err.Error() != tc.wantErr {
				t.Errorf("got %q, want %q", err.Error(), tc.wantErr)
			}
		})
	}
}
