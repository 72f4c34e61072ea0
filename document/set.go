package document

import (
	"fmt"
	"slices"

	"phfile/internal/diagnostic"
)

// Set validates and merges field values in Partial mode.
//
// args is a flat name, value, name, value... sequence; kwargs maps names to
// values and wins over args for the same name. Names unknown to the schema
// are dropped with a warning. An odd-length args returns *ArgumentCountError.
func (d *Document) Set(args []any, kwargs map[string]any) error {
	if len(args)%2 != 0 {
		return &ArgumentCountError{Count: len(args)}
	}

	fields := make(map[string]any, len(args)/2+len(kwargs))

	for i := 0; i < len(args); i += 2 {
		fields[argName(args[i])] = args[i+1]
	}

	for name, v := range kwargs {
		fields[name] = v
	}

	diags := &diagnostic.Diagnostics{}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		if !d.schema.Has(name) {
			d.warnMissing(diags, name)
			delete(fields, name)
		}
	}

	err := d.validate(fields, Partial, diags)
	d.diags = diags

	return err
}

func argName(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
