// ABOUTME: Capability contracts between the CRUD controller and resources
// ABOUTME: Adapters implement these over the typed API client

package crud

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tourbase/tourbase-admin/internal/api"
)

// Record is one row in a resource collection.
type Record interface {
	// RecordID returns the server-assigned identifier, unique within the
	// collection.
	RecordID() int
}

// Values is the string form buffer, keyed by Field.Key.
type Values map[string]string

// Option is one choice in a select field or filter.
type Option struct {
	Label string
	Value string
}

// FieldKind selects the input widget and coercion rule for a field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldTextArea
	FieldNumber
	FieldSelect
)

// Field describes one form input for a resource.
type Field struct {
	Key         string
	Title       string
	Placeholder string
	Kind        FieldKind
	Required    bool
	Float       bool     // numeric field accepts decimals
	Options     []Option // static select options
	Reference   bool     // select options come from the reference collection
}

// Column describes one list table column.
type Column struct {
	Title string
	Width int
}

// Resource is the minimum capability every management screen needs: a way to
// list records and describe how to render and edit them.
type Resource interface {
	Title() string    // plural screen title, e.g. "Destinations"
	Singular() string // e.g. "Destination"
	Columns() []Column
	Row(Record) []string
	Fields() []Field
	// List fetches the collection, scoped by the filter value when non-empty.
	List(ctx context.Context, filter string) ([]Record, error)
}

// Creator is implemented by resources that support the create path.
type Creator interface {
	Create(ctx context.Context, values Values) (Record, error)
}

// Updater is implemented by resources that support the edit path.
type Updater interface {
	Update(ctx context.Context, id int, values Values) (Record, error)
	// FormValues fills the edit buffer from an existing record.
	FormValues(Record) Values
}

// Deleter is implemented by resources that support deletion.
type Deleter interface {
	Delete(ctx context.Context, id int) error
}

// Referencer is implemented by resources with a foreign-key selector. The
// referenced collection is fetched concurrently with the list on mount and
// feeds the options of any Reference field.
type Referencer interface {
	ReferenceOptions(ctx context.Context) ([]Option, error)
}

// Filterer is implemented by resources whose list call can be scoped. The
// reference options (nil when the resource has none, or while they load) are
// available for foreign-key filters.
type Filterer interface {
	FilterOptions(refs []Option) []Option
}

// Validate applies the client-side rules before any mutation goes out:
// required fields must be non-empty and numeric fields must coerce. A
// failure is a local ValidationFailed; the server is never consulted.
func Validate(fields []Field, values Values) error {
	for _, f := range fields {
		raw := strings.TrimSpace(values[f.Key])
		if raw == "" {
			if f.Required {
				return &api.Error{
					Kind:    api.KindValidationFailed,
					Message: fmt.Sprintf("%s is required", f.Title),
				}
			}
			continue
		}
		if f.Kind == FieldNumber {
			var err error
			if f.Float {
				_, err = strconv.ParseFloat(raw, 64)
			} else {
				_, err = strconv.Atoi(raw)
			}
			if err != nil {
				return &api.Error{
					Kind:    api.KindValidationFailed,
					Message: fmt.Sprintf("%s must be a number", f.Title),
				}
			}
		}
	}
	return nil
}
