package document

import (
	"maps"

	"go.uber.org/zap"

	"phfile/internal/diagnostic"
)

// Result holds the outcome of Get.
type Result struct {
	names  []string
	values map[string]any
}

// Found reports whether at least one requested field resolved. A Result that
// is not Found is the "nothing found" outcome.
func (r Result) Found() bool {
	return len(r.names) > 0
}

// Names returns the resolved field names in request order.
func (r Result) Names() []string {
	return append([]string(nil), r.names...)
}

// Value returns the bare value when exactly one field resolved, a
// name -> value map when several did, and nil when nothing did.
func (r Result) Value() any {
	switch len(r.names) {
	case 0:
		return nil
	case 1:
		return r.values[r.names[0]]
	default:
		return r.Map()
	}
}

// Map returns the resolved values keyed by field name.
func (r Result) Map() map[string]any {
	return maps.Clone(r.values)
}

// Get returns the values of the requested fields.
//
// Names unknown to the schema, and known names that hold no value, are left
// out of the result and reported once each as a warning.
func (d *Document) Get(names ...string) Result {
	diags := &diagnostic.Diagnostics{}
	res := Result{values: make(map[string]any, len(names))}
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}

		seen[name] = struct{}{}

		v, ok := d.values[name]
		if !ok || !d.schema.Has(name) {
			d.warnMissing(diags, name)
			continue
		}

		res.names = append(res.names, name)
		res.values[name] = cloneValue(v)
	}

	d.diags = diags

	return res
}

func (d *Document) warnMissing(diags *diagnostic.Diagnostics, name string) {
	diags.AddWarning(diagnostic.CodeUnknownField, "there is no field "+name, name)
	d.logger.Warn("there is no field", zap.String("field", name))
}
