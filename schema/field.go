package schema

import "fmt"

// Field defines one entry of a Schema.
type Field struct {
	// Name is the unique key of the field.
	Name string
	// Kind is the type a value must have after coercion.
	Kind Kind
	// Required fields must be present after full validation.
	Required bool
	// Default fills the field during full validation when it is absent.
	// Nil means no default.
	Default any
	// Coerce lists conversions tried in order; the first success wins.
	Coerce []Coercer
	// Min and Max bound numeric values, both inclusive. Nil means unbounded.
	Min, Max *float64
	// Allowed, when non-empty, is the finite set of accepted values.
	Allowed []any
	// Elem describes list elements (KindList only).
	Elem *Field
	// Record describes the records of a KindRecords field.
	Record *Schema
}

// HasDefault reports whether the field carries a default value.
func (f Field) HasDefault() bool {
	return f.Default != nil
}

// Limit returns a pointer to v, for use as Field.Min or Field.Max.
func Limit(v float64) *float64 {
	return &v
}

// Schema is an ordered, immutable set of field definitions.
type Schema struct {
	name   string
	fields []Field
	index  map[string]int
}

// New creates a schema from fields, keeping their order.
// It panics on duplicate or empty names; schemas are built at init time.
func New(name string, fields ...Field) *Schema {
	s := &Schema{
		name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		if f.Name == "" {
			panic(fmt.Sprintf("schema %s: field %d has no name", name, i+1))
		}

		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("schema %s: duplicate field %q", name, f.Name))
		}

		s.index[f.Name] = i
	}

	return s
}

// Name returns the schema name, e.g. "ldt".
func (s *Schema) Name() string {
	return s.name
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Fields returns the field definitions in declared order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Names returns the field names in declared order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}

	return names
}

// Field returns the definition of the named field.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Has reports whether the schema defines the named field.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// At returns the name of the n-th field, counting from 1.
// Callers must keep n within 1..Len().
func (s *Schema) At(n int) string {
	return s.fields[n-1].Name
}

// Position returns the 1-based position of the named field, or 0.
func (s *Schema) Position(name string) int {
	i, ok := s.index[name]
	if !ok {
		return 0
	}

	return i + 1
}
