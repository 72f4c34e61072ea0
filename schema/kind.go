package schema

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the value type of a field.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindString  // string
	KindInteger // integer
	KindFloat   // float
	KindList    // list
	KindRecords // records

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether values of the kind are single strings or numbers.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindString, KindInteger, KindFloat:
		return true
	}
}

// IsNumber reports whether values of the kind are numeric.
func (k Kind) IsNumber() bool {
	return k == KindInteger || k == KindFloat
}
