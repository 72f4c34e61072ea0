// Package diagnostic records field-level errors and warnings of one
// validation run.
//
// Errors carry a Code and the path of the field they concern, so callers can
// both print them and map them back to fields. Warnings are used for names
// that are not part of a schema.
package diagnostic
