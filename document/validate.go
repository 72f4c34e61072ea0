package document

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"phfile/internal/diagnostic"
	"phfile/schema"
	"phfile/utils"
)

// Validate checks input against the schema.
//
// In Full mode absent fields take their defaults, missing required fields
// are errors, and on success the document is replaced by the result.
// In Partial mode only supplied fields are checked and, on success, merged
// into the document. Input keys unknown to the schema are ignored.
// Cross-field checks registered with WithCheck run after a clean Full pass.
//
// On failure the document is left unchanged and a *ValidationError is
// returned; its reasons stay available through Errors.
func (d *Document) Validate(input map[string]any, mode Mode) error {
	diags := &diagnostic.Diagnostics{}
	err := d.validate(input, mode, diags)
	d.diags = diags

	return err
}

// Check validates input like Validate but never stores anything. It returns
// the coerced values, with defaults filled in Full mode.
func (d *Document) Check(input map[string]any, mode Mode) (map[string]any, error) {
	diags := &diagnostic.Diagnostics{}
	out, err := d.check(input, mode, diags)
	d.diags = diags

	return out, err
}

func (d *Document) check(input map[string]any, mode Mode, diags *diagnostic.Diagnostics) (map[string]any, error) {
	out := normalizeFields(d.schema, input, mode, "", diags)

	if mode == Full && !diags.HasErrors() {
		for _, c := range d.checks {
			c(out, diags)
		}
	}

	if diags.HasErrors() {
		return nil, &ValidationError{Mode: mode, Diagnostics: diags.Clone()}
	}

	return out, nil
}

func (d *Document) validate(input map[string]any, mode Mode, diags *diagnostic.Diagnostics) error {
	out, err := d.check(input, mode, diags)
	if err != nil {
		return err
	}

	if mode == Full {
		d.values = out
		return nil
	}

	for k, v := range out {
		d.values[k] = v
	}

	return nil
}

// normalizeFields validates every field of s in declared order.
func normalizeFields(
	s *schema.Schema,
	input map[string]any,
	mode Mode,
	prefix string,
	diags *diagnostic.Diagnostics,
) map[string]any {
	out := make(map[string]any, s.Len())

	for _, f := range s.Fields() {
		path := prefix + f.Name

		raw, present := input[f.Name]
		if !present {
			if mode != Full {
				continue
			}

			if f.HasDefault() {
				out[f.Name] = f.Default
				continue
			}

			if f.Required {
				diags.AddError(diagnostic.CodeRequired, "required field", path)
			}

			continue
		}

		if v, ok := normalizeField(f, raw, path, diags); ok {
			out[f.Name] = v
		}
	}

	return out
}

func normalizeField(f schema.Field, raw any, path string, diags *diagnostic.Diagnostics) (any, bool) {
	switch {
	case f.Kind == schema.KindList:
		return normalizeList(f, raw, path, diags)
	case f.Kind == schema.KindRecords:
		return normalizeRecords(f, raw, path, diags)
	case f.Kind.IsScalar():
		return normalizeScalar(f, raw, path, diags)
	default:
		diags.AddError(diagnostic.CodeType, fmt.Sprintf("unsupported field kind %d", int(f.Kind)), path)
		return nil, false
	}
}

func normalizeScalar(f schema.Field, raw any, path string, diags *diagnostic.Diagnostics) (any, bool) {
	v, err := coerce(f, raw)
	if err != nil {
		diags.AddError(diagnostic.CodeCoerce,
			fmt.Sprintf("field '%s' cannot be coerced: %v", f.Name, err), path)

		return nil, false
	}

	if !hasKind(f.Kind, v) {
		diags.AddError(diagnostic.CodeType, fmt.Sprintf("must be of %s type", f.Kind), path)
		return nil, false
	}

	if f.Kind.IsNumber() {
		n := toNumber(v)

		if f.Min != nil && !utils.AtLeast(*f.Min, n) {
			diags.AddError(diagnostic.CodeMin, "min value is "+formatBound(*f.Min), path)
			return nil, false
		}

		if f.Max != nil && !utils.AtMost(n, *f.Max) {
			diags.AddError(diagnostic.CodeMax, "max value is "+formatBound(*f.Max), path)
			return nil, false
		}
	}

	if len(f.Allowed) > 0 && !slices.Contains(f.Allowed, v) {
		diags.AddError(diagnostic.CodeAllowed, fmt.Sprintf("unallowed value %v", v), path)
		return nil, false
	}

	return v, true
}

func normalizeList(f schema.Field, raw any, path string, diags *diagnostic.Diagnostics) (any, bool) {
	items, ok := sliceItems(raw)
	if !ok {
		diags.AddError(diagnostic.CodeType, "must be of list type", path)
		return nil, false
	}

	elem := schema.Field{Kind: schema.KindFloat, Coerce: []schema.Coercer{schema.ToFloat}}
	if f.Elem != nil {
		elem = *f.Elem
	}

	values := make([]any, 0, len(items))
	failed := false

	for i, item := range items {
		v, ok := normalizeScalar(elem, item, path+"["+strconv.Itoa(i)+"]", diags)
		if !ok {
			failed = true
			continue
		}

		values = append(values, v)
	}

	if failed {
		return nil, false
	}

	if elem.Kind != schema.KindFloat {
		return values, true
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.(float64)
	}

	return out, true
}

func normalizeRecords(f schema.Field, raw any, path string, diags *diagnostic.Diagnostics) (any, bool) {
	items, ok := sliceItems(raw)
	if !ok || f.Record == nil {
		diags.AddError(diagnostic.CodeType, "must be of list type", path)
		return nil, false
	}

	out := make([]Record, 0, len(items))
	before := len(diags.Errors)

	for i, item := range items {
		itemPath := path + "[" + strconv.Itoa(i) + "]"

		fields, ok := recordFields(item)
		if !ok {
			diags.AddError(diagnostic.CodeType, "must be of dict type", itemPath)
			continue
		}

		// Records are always complete, even inside a partial update.
		rec := normalizeFields(f.Record, fields, Full, itemPath+".", diags)
		out = append(out, Record(rec))
	}

	if len(diags.Errors) > before {
		return nil, false
	}

	return out, true
}

func coerce(f schema.Field, raw any) (any, error) {
	if len(f.Coerce) == 0 {
		return raw, nil
	}

	var firstErr error

	for _, c := range f.Coerce {
		v, err := c.Apply(raw)
		if err == nil {
			return v, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, firstErr
}

func hasKind(k schema.Kind, v any) bool {
	switch k {
	case schema.KindString:
		_, ok := v.(string)
		return ok
	case schema.KindInteger:
		_, ok := v.(int)
		return ok
	case schema.KindFloat:
		_, ok := v.(float64)
		return ok
	default:
		return false
	}
}

func toNumber(v any) float64 {
	switch x := v.(type) {
	case int:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func formatBound(b float64) string {
	return strconv.FormatFloat(b, 'f', -1, 64)
}

// sliceItems turns any slice value into []any.
func sliceItems(raw any) ([]any, bool) {
	switch x := raw.(type) {
	case []any:
		return x, true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

func recordFields(item any) (map[string]any, bool) {
	switch x := item.(type) {
	case Record:
		return x, true
	case map[string]any:
		return x, true
	default:
		return nil, false
	}
}
