package ies

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phfile/document"
	"phfile/internal/textio"
	"phfile/schema"
)

const downlightIES = `IESNA:LM-63-2002
[TEST] 2018-10-09
[TESTLAB] AQLAB
[ISSUEDATE] 2018-10-09
[MANUFAC] ACME
[LUMCAT] DL-15
[LUMINAIRE] Downlight 15
[LAMPCAT] LED
[LAMP] LED 3000K
TILT=NONE
1 1500 1.0 3 1 1 2 0.1 0.1 0.05
1.0 1 15.0
0.0 45.0 90.0
0.0
300.0 200.0 0.0`

func values() map[string]any {
	return map[string]any{
		schema.IESTest:                     "2018-10-09",
		schema.IESTestLab:                  "AQLAB",
		schema.IESIssueDate:                "2018-10-09",
		schema.IESManufac:                  "ACME",
		schema.IESLumCat:                   "DL-15",
		schema.IESLuminaire:                "Downlight 15",
		schema.IESLampCat:                  "LED",
		schema.IESLamp:                     "LED 3000K",
		schema.IESNumberOfLamps:            1,
		schema.IESLumensPerLamp:            1500,
		schema.IESNumberOfVerticalAngles:   3,
		schema.IESNumberOfHorizontalAngles: 1,
		schema.IESWidth:                    0.1,
		schema.IESLength:                   0.1,
		schema.IESHeight:                   0.05,
		schema.IESInputWatts:               15,
		schema.IESVerticalAngles:           []float64{0, 45, 90},
		schema.IESHorizontalAngles:         []float64{0},
		schema.IESCandelaValues:            []float64{300, 200, 0},
	}
}

func TestText(t *testing.T) {
	f := New()
	require.NoError(t, f.Validate(values(), document.Full))

	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, downlightIES, text)
}

func TestText_Incomplete(t *testing.T) {
	f := New()
	require.NoError(t, f.Set([]any{schema.IESLamp, "LED"}, nil))

	_, err := f.Text()

	var verr *document.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, document.Full, verr.Mode)
	assert.Equal(t, "required field", f.Errors()[schema.IESTest])
	assert.Equal(t, "LED", f.Get(schema.IESLamp).Value(), "failed validation keeps the document")
}

func TestText_TableLengths(t *testing.T) {
	in := values()
	in[schema.IESCandelaValues] = []float64{300, 200}

	f := New()
	err := f.Validate(in, document.Full)

	var verr *document.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{schema.IESCandelaValues: "expected 3 entries, got 2"}, verr.Fields())
}

func TestParse(t *testing.T) {
	f, err := ParseLines(textio.SplitLines(downlightIES))
	require.NoError(t, err)

	assert.Equal(t, "Downlight 15", f.Get(schema.IESLuminaire).Value())
	assert.Equal(t, []float64{0, 45, 90}, f.Get(schema.IESVerticalAngles).Value())
	assert.Equal(t, 2, f.Get(schema.IESUnitsType).Value())

	text, err := f.Text()
	require.NoError(t, err)
	assert.Equal(t, downlightIES, text)
}

func TestParse_RoundTrip(t *testing.T) {
	first := New()
	require.NoError(t, first.Validate(values(), document.Full))

	text, err := first.Text()
	require.NoError(t, err)

	second, err := ParseLines(textio.SplitLines(text))
	require.NoError(t, err)

	if diff := cmp.Diff(first.Document().Values(), second.Document().Values()); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestParse_Variants(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(lines []string) []string
		check  func(t *testing.T, f *File)
	}{
		{
			name: "wrapped tables",
			mutate: func(lines []string) []string {
				return append(lines[:12], "0.0 45.0", "90.0 0.0", "300.0", "200.0 0.0")
			},
		},
		{
			name: "no header line",
			mutate: func(lines []string) []string {
				return lines[1:]
			},
			check: func(t *testing.T, f *File) {
				assert.Equal(t, schema.IESDefaultHeader, f.Get(schema.IESHeader).Value())
			},
		},
		{
			name: "older header and extra keywords",
			mutate: func(lines []string) []string {
				out := []string{"IESNA91", "[MORE] continued", "[_CUSTOM] value"}
				return append(out, lines[1:]...)
			},
			check: func(t *testing.T, f *File) {
				assert.Equal(t, "IESNA91", f.Get(schema.IESHeader).Value())
			},
		},
		{
			name: "first repeated keyword wins",
			mutate: func(lines []string) []string {
				out := append([]string{}, lines[:7]...)
				out = append(out, "[LUMINAIRE] second")
				return append(out, lines[7:]...)
			},
			check: func(t *testing.T, f *File) {
				assert.Equal(t, "Downlight 15", f.Get(schema.IESLuminaire).Value())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseLines(tt.mutate(textio.SplitLines(downlightIES)))
			require.NoError(t, err)

			assert.Equal(t, []float64{300, 200, 0}, f.Get(schema.IESCandelaValues).Value())

			if tt.check != nil {
				tt.check(t, f)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	base := textio.SplitLines(downlightIES)

	t.Run("tilt include", func(t *testing.T) {
		in := append([]string{}, base...)
		in[9] = "TILT=INCLUDE"

		err := New().Parse(in)
		require.ErrorIs(t, err, ErrUnsupportedTilt)
	})

	t.Run("no tilt", func(t *testing.T) {
		err := New().Parse(base[:9])
		require.ErrorIs(t, err, ErrMissingTilt)
	})

	tests := []struct {
		name     string
		input    []string
		got      int
		expected int
	}{
		{name: "extra value", input: append(append([]string{}, base...), "1.0"), got: 21, expected: 20},
		{name: "missing value", input: append(append([]string{}, base[:14]...), "300.0 200.0"), got: 19, expected: 20},
		{name: "truncated header values", input: base[:11], got: 10, expected: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Parse(tt.input)

			var lerr *document.LayoutError
			require.True(t, errors.As(err, &lerr), "got %v", err)
			assert.Equal(t, tt.got, lerr.Got)
			assert.Equal(t, tt.expected, lerr.Expected)
			assert.Contains(t, err.Error(), "ies file has wrong number of values")
		})
	}

	t.Run("bad angle count", func(t *testing.T) {
		in := append([]string{}, base...)
		in[10] = "1 1500 1.0 three 1 1 2 0.1 0.1 0.05"

		f := New()
		err := f.Parse(in)

		var verr *document.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, f.Errors(), schema.IESNumberOfVerticalAngles)
	})

	t.Run("future use must be one", func(t *testing.T) {
		in := append([]string{}, base...)
		in[11] = "1.0 2 15.0"

		f := New()
		require.Error(t, f.Parse(in))
		assert.Equal(t, map[string]string{schema.IESFutureUse: "unallowed value 2"}, f.Errors())
	})
}

func TestLoadWrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.ies")
	require.NoError(t, os.WriteFile(src, []byte(strings.ReplaceAll(downlightIES, "\n", "\r\n")), 0o644))

	f := New()
	require.NoError(t, f.Load(src))

	out := filepath.Join(dir, "out.ies")
	written, err := f.Write(out)
	require.NoError(t, err)
	assert.Equal(t, out, written)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, downlightIES, string(data))
}

func TestDefaultName(t *testing.T) {
	f := New()
	assert.Equal(t, "none.ies", f.DefaultName())

	require.NoError(t, f.Set(nil, map[string]any{schema.IESLuminaire: "Down/light 15"}))
	assert.Equal(t, "Down_light 15.ies", f.DefaultName())
}
