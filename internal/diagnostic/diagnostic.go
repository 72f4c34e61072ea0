package diagnostic

import (
	"errors"
	"strings"
)

// Code classifies a diagnostic.
type Code string

// Codes emitted by the document model and the codecs.
const (
	CodeRequired       Code = "required"
	CodeCoerce         Code = "coerce"
	CodeType           Code = "type"
	CodeMin            Code = "min"
	CodeMax            Code = "max"
	CodeAllowed        Code = "allowed"
	CodeLengthMismatch Code = "length_mismatch"
	CodeUnknownField   Code = "unknown_field"
)

// Severity tells errors from warnings.
type Severity int

const (
	SeverityWarning Severity = iota + 1
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one finding about a field.
type Diagnostic struct {
	Severity Severity
	Code     Code
	// Field is the path of the field, e.g. "tilt" or "lamps[0].cri".
	Field   string
	Message string
}

// String renders "field: [code] message", leaving out empty parts.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Field != "" {
		b.WriteString(d.Field)
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString("[" + string(d.Code) + "] ")
	}

	b.WriteString(d.Message)

	return b.String()
}

// Diagnostics collects the findings of one validation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

func (d *Diagnostics) AddError(code Code, message, field string) {
	d.Errors = append(d.Errors, Diagnostic{Severity: SeverityError, Code: code, Field: field, Message: message})
}

func (d *Diagnostics) AddWarning(code Code, message, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{Severity: SeverityWarning, Code: code, Field: field, Message: message})
}

func (d *Diagnostics) HasErrors() bool {
	return d != nil && len(d.Errors) > 0
}

// Fields maps each failed field to its reason. Several reasons for one field
// are joined with "; ".
func (d *Diagnostics) Fields() map[string]string {
	if d == nil {
		return map[string]string{}
	}

	out := make(map[string]string, len(d.Errors))

	for _, e := range d.Errors {
		if prev, ok := out[e.Field]; ok {
			out[e.Field] = prev + "; " + e.Message
		} else {
			out[e.Field] = e.Message
		}
	}

	return out
}

// Clone returns a copy sharing no slices with d. A nil receiver yields an
// empty set.
func (d *Diagnostics) Clone() *Diagnostics {
	if d == nil {
		return &Diagnostics{}
	}

	return &Diagnostics{
		Errors:   append([]Diagnostic(nil), d.Errors...),
		Warnings: append([]Diagnostic(nil), d.Warnings...),
	}
}

// Err joins all errors into one, in the order they were added, or returns
// nil when there are none.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		parts[i] = e.String()
	}

	return errors.New(strings.Join(parts, "; "))
}
