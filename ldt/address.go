package ldt

import (
	"regexp"
	"strconv"

	"phfile/document"
	"phfile/schema"
	"phfile/utils"
)

// maxPositionalArg is the highest position accepted in the name slots of the
// positional Set arguments; keyed names accept up to schema.LDTPositions.
const maxPositionalArg = 30

var positionRe = regexp.MustCompile(`^([1-9]|[12][0-9]|3[01])$`)

// FieldName returns the name of the field at 1-based position n.
// n must be within 1..schema.LDTPositions.
func FieldName(n int) string {
	return schema.LDT.At(n)
}

// Set validates and merges fields like document.Document.Set, additionally
// accepting field positions as names: an int 1..30 in a name slot of args,
// or a key "1".."31" in kwargs.
func (f *File) Set(args []any, kwargs map[string]any) error {
	return f.doc.Set(translateArgs(args), translateKwargs(kwargs))
}

// Get returns field values like document.Document.Get; names may also be
// positions "1".."31".
func (f *File) Get(names ...string) document.Result {
	translated := make([]string, len(names))
	for i, name := range names {
		translated[i] = TranslateName(name)
	}

	return f.doc.Get(translated...)
}

func translateArgs(args []any) []any {
	if len(args) == 0 {
		return args
	}

	out := make([]any, len(args))
	copy(out, args)

	for i := 0; i < len(out); i += 2 {
		if n, ok := out[i].(int); ok && utils.IsInRange(1, n, maxPositionalArg) {
			out[i] = FieldName(n)
		}
	}

	return out
}

func translateKwargs(kwargs map[string]any) map[string]any {
	if len(kwargs) == 0 {
		return kwargs
	}

	out := make(map[string]any, len(kwargs))
	for name, v := range kwargs {
		out[TranslateName(name)] = v
	}

	return out
}

// TranslateName returns the field name at position "1".."31"; any other name
// is returned unchanged.
func TranslateName(name string) string {
	if !positionRe.MatchString(name) {
		return name
	}

	n, _ := strconv.Atoi(name)

	return FieldName(n)
}
