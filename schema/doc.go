// Package schema declares the static field registries of the two photometric
// text formats: EULUMDAT (.ldt) and IESNA LM-63 (.ies).
//
// A Schema is an ordered list of Field definitions. The order is the on-disk
// order for LDT and the template substitution order for IES, so the 1-based
// position of a field (see Schema.At) doubles as its LDT column number.
//
// Registries are pure data. Validation and coercion are applied by package
// document; the Coercer values listed on a field are tried in order and the
// first one that succeeds wins.
package schema
