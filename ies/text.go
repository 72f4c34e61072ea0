package ies

import (
	"fmt"
	"strings"

	"phfile/document"
	"phfile/internal/diagnostic"
	"phfile/schema"
)

const tiltNone = "TILT=NONE"

// dimensionFields are the ten values of the line following TILT.
var dimensionFields = []string{
	schema.IESNumberOfLamps,
	schema.IESLumensPerLamp,
	schema.IESCandelaMultiplier,
	schema.IESNumberOfVerticalAngles,
	schema.IESNumberOfHorizontalAngles,
	schema.IESPhotometricType,
	schema.IESUnitsType,
	schema.IESWidth,
	schema.IESLength,
	schema.IESHeight,
}

// electricalFields are the three values of the second data line.
var electricalFields = []string{
	schema.IESBallastFactor,
	schema.IESFutureUse,
	schema.IESInputWatts,
}

var tableFields = []string{
	schema.IESVerticalAngles,
	schema.IESHorizontalAngles,
	schema.IESCandelaValues,
}

// Text fully validates the document and renders it into the IES template.
// There is no trailing line break.
func (f *File) Text() (string, error) {
	if err := f.doc.Validate(f.doc.Values(), document.Full); err != nil {
		return "", err
	}

	return strings.Join(f.Lines(), "\n"), nil
}

// Lines renders the stored values without validating them.
func (f *File) Lines() []string {
	lines := []string{f.value(schema.IESHeader)}

	for _, k := range schema.IESKeywords {
		lines = append(lines, "["+k.Keyword+"] "+f.value(k.Field))
	}

	lines = append(lines, tiltNone,
		f.join(dimensionFields...),
		f.join(electricalFields...),
	)

	for _, name := range tableFields {
		lines = append(lines, f.join(name))
	}

	return lines
}

func (f *File) value(name string) string {
	v, ok := f.doc.Lookup(name)
	if !ok {
		return ""
	}

	return document.FormatValue(v)
}

// join renders the named fields space-separated, lists element by element.
func (f *File) join(names ...string) string {
	var parts []string

	for _, name := range names {
		v, ok := f.doc.Lookup(name)
		if !ok {
			continue
		}

		parts = append(parts, document.FormatList(v)...)
	}

	return strings.Join(parts, " ")
}

func checkTables(values map[string]any, diags *diagnostic.Diagnostics) {
	nv, _ := values[schema.IESNumberOfVerticalAngles].(int)
	nh, _ := values[schema.IESNumberOfHorizontalAngles].(int)

	expected := []struct {
		name string
		n    int
	}{
		{schema.IESVerticalAngles, nv},
		{schema.IESHorizontalAngles, nh},
		{schema.IESCandelaValues, nv * nh},
	}

	for _, e := range expected {
		got, _ := values[e.name].([]float64)
		if len(got) != e.n {
			diags.AddError(diagnostic.CodeLengthMismatch,
				fmt.Sprintf("expected %d entries, got %d", e.n, len(got)), e.name)
		}
	}
}
