package document

import (
	"maps"

	"go.uber.org/zap"

	"phfile/internal/diagnostic"
	"phfile/schema"
)

// Mode selects full or partial validation.
type Mode int

const (
	// Full validation fills defaults, requires required fields and replaces
	// the document.
	Full Mode = iota + 1
	// Partial validation checks supplied fields only and merges them.
	Partial
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return "unknown"
	}
}

// Record is one validated entry of a list-of-record field.
type Record map[string]any

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for unknown-field warnings.
func WithLogger(l *zap.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// CrossCheck inspects a complete set of coerced values and reports
// inconsistencies between fields, such as a table whose length does not
// match its count field.
type CrossCheck func(values map[string]any, diags *diagnostic.Diagnostics)

// WithCheck adds a cross-field check run by full validation.
func WithCheck(c CrossCheck) Option {
	return func(d *Document) {
		d.checks = append(d.checks, c)
	}
}

// Document is a keyed store of values validated against one schema.
type Document struct {
	schema *schema.Schema
	values map[string]any
	diags  *diagnostic.Diagnostics
	logger *zap.Logger
	checks []CrossCheck
}

// New creates an empty document for s.
func New(s *schema.Schema, opts ...Option) *Document {
	d := &Document{
		schema: s,
		values: make(map[string]any),
		diags:  &diagnostic.Diagnostics{},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.logger = d.logger.With(zap.String("format", s.Name()))

	return d
}

// Schema returns the registry the document is validated against.
func (d *Document) Schema() *schema.Schema {
	return d.schema
}

// Logger returns the document logger.
func (d *Document) Logger() *zap.Logger {
	return d.logger
}

// Len returns the number of fields holding a value.
func (d *Document) Len() int {
	return len(d.values)
}

// Has reports whether the named field holds a value.
func (d *Document) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// Lookup returns a copy of the value of the named field.
// Unlike Get it never warns.
func (d *Document) Lookup(name string) (any, bool) {
	v, ok := d.values[name]
	if !ok {
		return nil, false
	}

	return cloneValue(v), true
}

// Values returns a deep copy of all stored values.
func (d *Document) Values() map[string]any {
	out := make(map[string]any, len(d.values))
	for k, v := range d.values {
		out[k] = cloneValue(v)
	}

	return out
}

// Int returns an integer field.
func (d *Document) Int(name string) (int, bool) {
	v, ok := d.values[name].(int)
	return v, ok
}

// Float returns a float field.
func (d *Document) Float(name string) (float64, bool) {
	v, ok := d.values[name].(float64)
	return v, ok
}

// String returns a string field.
func (d *Document) String(name string) (string, bool) {
	v, ok := d.values[name].(string)
	return v, ok
}

// Floats returns a copy of a float list field.
func (d *Document) Floats(name string) ([]float64, bool) {
	v, ok := d.values[name].([]float64)
	if !ok {
		return nil, false
	}

	return append([]float64(nil), v...), true
}

// Records returns a copy of a list-of-record field.
func (d *Document) Records(name string) ([]Record, bool) {
	v, ok := d.values[name].([]Record)
	if !ok {
		return nil, false
	}

	return cloneValue(v).([]Record), true
}

// Errors returns the field errors of the last operation, keyed by field path.
func (d *Document) Errors() map[string]string {
	return d.diags.Fields()
}

// Diagnostics returns a copy of the diagnostics of the last operation.
func (d *Document) Diagnostics() *diagnostic.Diagnostics {
	return d.diags.Clone()
}

func cloneValue(v any) any {
	switch x := v.(type) {
	case []float64:
		return append([]float64(nil), x...)
	case []any:
		return append([]any(nil), x...)
	case []Record:
		out := make([]Record, len(x))
		for i, r := range x {
			out[i] = maps.Clone(r)
		}

		return out
	default:
		return v
	}
}
