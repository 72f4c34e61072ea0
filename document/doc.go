// Package document provides the schema-driven store shared by the LDT and IES
// codecs.
//
// A Document owns one map of validated values and the diagnostics of its last
// operation. Values enter it only through Validate (full or partial) or Set;
// a rejected batch never changes the stored values.
//
// # Validation
//
// For every field in the input the coercers declared in the schema are tried
// in order and the first success wins. The coerced value must then satisfy
// the field's kind, bounds and allowed set, otherwise the whole field is
// rejected. Full validation additionally fills defaults for absent fields,
// requires every required field and replaces the stored values wholesale.
// Partial validation only checks supplied fields and merges them.
//
// # Errors
//
//   - *ValidationError: a field failed, or a required field is missing.
//     Per-field reasons are available through Errors.
//   - *LayoutError: a positional file has the wrong number of lines/values.
//   - *ArgumentCountError: Set received an odd name/value sequence.
//
// Unknown field names passed to Get or Set are not errors: they are logged
// at warn level and recorded as warning diagnostics.
package document
