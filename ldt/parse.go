package ldt

import (
	"phfile/document"
	"phfile/schema"
)

// Parse reads the document from the lines of an LDT file and replaces the
// current document on success.
//
// The layout fields (symmetry_indicator, number_mc, number_ng, number_n) are
// validated first since they size the tables; a bad value there is reported
// as a *document.ValidationError. A line count that does not match the
// derived layout is a *document.LayoutError. Everything else is left to full
// validation.
func (f *File) Parse(lines []string) error {
	fields, err := f.splitFields(lines)
	if err != nil {
		return err
	}

	return f.doc.Validate(fields, document.Full)
}

// ParseLines is a convenience for New followed by Parse.
func ParseLines(lines []string, opts ...document.Option) (*File, error) {
	f := New(opts...)
	if err := f.Parse(lines); err != nil {
		return nil, err
	}

	return f, nil
}

type layout struct {
	lamps       int
	mc          int
	ng          int
	intensities int
}

func (f *File) splitFields(lines []string) (map[string]any, error) {
	if len(lines) < schema.LDTScalarLines {
		return nil, &document.LayoutError{
			Format:   Extension,
			Unit:     "lines",
			Got:      len(lines),
			Expected: schema.LDTScalarLines,
		}
	}

	names := schema.LDT.Names()
	c := cursor{lines: lines}

	var head []string
	head, c = c.take(schema.LDTScalarLines)

	fields := make(map[string]any, schema.LDT.Len())
	for i, line := range head {
		fields[names[i]] = line
	}

	lay, err := f.layoutOf(fields)
	if err != nil {
		return nil, err
	}

	if total := lay.lines(); total != len(lines) {
		return nil, &document.LayoutError{
			Format:   Extension,
			Unit:     "lines",
			Got:      len(lines),
			Expected: total,
		}
	}

	lampNames := schema.Lamp.Names()
	lamps := make([]any, 0, lay.lamps)

	for range lay.lamps {
		var block []string
		block, c = c.take(schema.LDTLampLines)

		rec := make(map[string]any, len(lampNames))
		for j, line := range block {
			rec[lampNames[j]] = line
		}

		lamps = append(lamps, rec)
	}

	fields[schema.LDTLamps] = lamps

	tables := []struct {
		name string
		n    int
	}{
		{schema.LDTDirectRatios, schema.LDTDirectRatioLines},
		{schema.LDTAnglesC, lay.mc},
		{schema.LDTAnglesG, lay.ng},
		{schema.LDTLuminousIntensities, lay.intensities},
	}

	for _, t := range tables {
		var block []string
		block, c = c.take(t.n)
		fields[t.name] = block
	}

	return fields, nil
}

// lines returns the total line count the header asks for.
func (l layout) lines() int {
	total := schema.LDTScalarLines
	total = satAdd(total, satMul(schema.LDTLampLines, l.lamps))
	total = satAdd(total, schema.LDTDirectRatioLines)
	total = satAdd(total, l.mc)
	total = satAdd(total, l.ng)

	return satAdd(total, l.intensities)
}

// layoutOf validates the header fields that size the tables.
func (f *File) layoutOf(fields map[string]any) (layout, error) {
	input := map[string]any{
		schema.LDTSymmetryIndicator: fields[schema.LDTSymmetryIndicator],
		schema.LDTNumberMc:          fields[schema.LDTNumberMc],
		schema.LDTNumberNg:          fields[schema.LDTNumberNg],
		schema.LDTNumberN:           fields[schema.LDTNumberN],
	}

	values, err := f.doc.Check(input, document.Partial)
	if err != nil {
		return layout{}, err
	}

	lay := layout{
		lamps: values[schema.LDTNumberN].(int),
		mc:    values[schema.LDTNumberMc].(int),
		ng:    values[schema.LDTNumberNg].(int),
	}

	sym := Symmetry(values[schema.LDTSymmetryIndicator].(int))

	lay.intensities, err = IntensityCount(sym, lay.mc, lay.ng)
	if err != nil {
		return layout{}, err
	}

	return lay, nil
}
