package document

import (
	"fmt"

	"phfile/internal/diagnostic"
)

// ValidationError reports a rejected validation batch.
type ValidationError struct {
	Mode        Mode
	Diagnostics *diagnostic.Diagnostics
}

func (e *ValidationError) Error() string {
	msg := "input data seems to be incomplete or incorrect"
	if e.Mode == Partial {
		msg = "input data seems to be incorrect"
	}

	if e.Diagnostics != nil {
		if err := e.Diagnostics.Err(); err != nil {
			return msg + ": " + err.Error()
		}
	}

	return msg
}

// Fields returns the rejected fields and their reasons.
func (e *ValidationError) Fields() map[string]string {
	if e.Diagnostics == nil {
		return map[string]string{}
	}

	return e.Diagnostics.Fields()
}

// LayoutError reports a positional file whose size does not match the size
// derived from its own header fields.
type LayoutError struct {
	// Format is the file format, "ldt" or "ies".
	Format string
	// Unit names what was counted, "lines" or "values".
	Unit     string
	Got      int
	Expected int
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%s file has wrong number of %s (got %d expected %d)",
		e.Format, e.Unit, e.Got, e.Expected)
}

// ArgumentCountError reports an odd-length name/value sequence passed to Set.
type ArgumentCountError struct {
	Count int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("set takes an even number of arguments (%d given)", e.Count)
}
