package ldt

import (
	"fmt"
	"strings"

	"phfile/document"
	"phfile/internal/diagnostic"
	"phfile/schema"
)

// Text fully validates the document and renders it as LDT lines joined by
// "\n", without a trailing line break. Tables are written one value per
// line and each lamp record as its six values.
func (f *File) Text() (string, error) {
	if err := f.doc.Validate(f.doc.Values(), document.Full); err != nil {
		return "", err
	}

	return strings.Join(f.Lines(), "\n"), nil
}

// Lines renders the stored values in file order without validating them.
func (f *File) Lines() []string {
	var lines []string

	for _, fld := range schema.LDT.Fields() {
		v, ok := f.doc.Lookup(fld.Name)
		if !ok {
			continue
		}

		switch fld.Kind {
		case schema.KindRecords:
			recs, _ := v.([]document.Record)
			for _, rec := range recs {
				for _, name := range fld.Record.Names() {
					lines = append(lines, document.FormatValue(rec[name]))
				}
			}
		case schema.KindList:
			lines = append(lines, document.FormatList(v)...)
		default:
			lines = append(lines, document.FormatValue(v))
		}
	}

	return lines
}

// checkTables verifies that every table is as long as its count fields say,
// so that the rendered text parses back.
func checkTables(values map[string]any, diags *diagnostic.Diagnostics) {
	n, _ := values[schema.LDTNumberN].(int)
	mc, _ := values[schema.LDTNumberMc].(int)
	ng, _ := values[schema.LDTNumberNg].(int)
	sym, _ := values[schema.LDTSymmetryIndicator].(int)

	intensities, err := IntensityCount(Symmetry(sym), mc, ng)
	if err != nil {
		diags.AddError(diagnostic.CodeAllowed, err.Error(), schema.LDTSymmetryIndicator)
		return
	}

	lamps, _ := values[schema.LDTLamps].([]document.Record)
	checkLength(diags, schema.LDTLamps, len(lamps), n)

	expected := []struct {
		name string
		n    int
	}{
		{schema.LDTDirectRatios, schema.LDTDirectRatioLines},
		{schema.LDTAnglesC, mc},
		{schema.LDTAnglesG, ng},
		{schema.LDTLuminousIntensities, intensities},
	}

	for _, e := range expected {
		got, _ := values[e.name].([]float64)
		checkLength(diags, e.name, len(got), e.n)
	}
}

func checkLength(diags *diagnostic.Diagnostics, name string, got, want int) {
	if got == want {
		return
	}

	diags.AddError(diagnostic.CodeLengthMismatch,
		fmt.Sprintf("expected %d entries, got %d", want, got), name)
}
