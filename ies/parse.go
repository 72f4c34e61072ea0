package ies

import (
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"phfile/document"
	"phfile/schema"
)

var (
	// ErrUnsupportedTilt is returned for any TILT other than NONE.
	ErrUnsupportedTilt = errors.New("only TILT=NONE is supported")
	// ErrMissingTilt is returned when no TILT line precedes the data.
	ErrMissingTilt = errors.New("ies file has no TILT line")
)

var keywordRe = regexp.MustCompile(`^\[([A-Z0-9_]+)\]\s*(.*)$`)

// Parse reads the document from the lines of an IES file and replaces the
// current document on success.
//
// The value counts after TILT are checked against the angle counts they
// declare; a mismatch is a *document.LayoutError counting values.
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

func (f *File) splitFields(lines []string) (map[string]any, error) {
	fields := make(map[string]any, schema.IES.Len())

	i := 0
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "IESNA") {
		fields[schema.IESHeader] = strings.TrimSpace(lines[0])
		i++
	}

	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		if tilt, ok := strings.CutPrefix(line, "TILT="); ok {
			if strings.TrimSpace(tilt) != "NONE" {
				return nil, ErrUnsupportedTilt
			}

			return f.splitValues(fields, strings.Fields(strings.Join(lines[i+1:], " ")))
		}

		m := keywordRe.FindStringSubmatch(line)
		if m == nil {
			f.doc.Logger().Debug("skipping line", zap.Int("line", i+1))
			continue
		}

		name, ok := schema.IESKeywordField(m[1])
		if !ok {
			f.doc.Logger().Debug("skipping keyword", zap.String("keyword", m[1]))
			continue
		}

		if _, seen := fields[name]; !seen {
			fields[name] = m[2]
		}
	}

	return nil, ErrMissingTilt
}

func (f *File) splitValues(fields map[string]any, tokens []string) (map[string]any, error) {
	head := len(dimensionFields) + len(electricalFields)
	if len(tokens) < head {
		return nil, &document.LayoutError{Format: Extension, Unit: "values", Got: len(tokens), Expected: head}
	}

	for i, name := range dimensionFields {
		fields[name] = tokens[i]
	}

	for i, name := range electricalFields {
		fields[name] = tokens[len(dimensionFields)+i]
	}

	counts, err := f.doc.Check(map[string]any{
		schema.IESNumberOfVerticalAngles:   fields[schema.IESNumberOfVerticalAngles],
		schema.IESNumberOfHorizontalAngles: fields[schema.IESNumberOfHorizontalAngles],
	}, document.Partial)
	if err != nil {
		return nil, err
	}

	nv := counts[schema.IESNumberOfVerticalAngles].(int)
	nh := counts[schema.IESNumberOfHorizontalAngles].(int)

	if want := head + nv + nh + nv*nh; len(tokens) != want {
		return nil, &document.LayoutError{Format: Extension, Unit: "values", Got: len(tokens), Expected: want}
	}

	rest := tokens[head:]
	fields[schema.IESVerticalAngles] = rest[:nv]
	fields[schema.IESHorizontalAngles] = rest[nv : nv+nh]
	fields[schema.IESCandelaValues] = rest[nv+nh:]

	return fields, nil
}
