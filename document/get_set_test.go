package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phfile/internal/diagnostic"
	"phfile/schema"
)

var ldtItems = map[string]any{
	"report_no":      "2017-11-09/AQLAB",
	"luminaire_name": "dioda LENS LINE 15st 3000K 250mA",
	"luminaire_no":   "12345",
}

func seeded(t *testing.T) *Document {
	t.Helper()

	d := New(schema.IES)
	require.NoError(t, d.Validate(map[string]any{
		"test":       "2018-10-09",
		"testlab":    "AQLAB",
		"issuedate":  "2018-10-09",
		"future_use": 1,
	}, Partial))

	return d
}

func TestGet_Single(t *testing.T) {
	d := seeded(t)

	res := d.Get("test")
	require.True(t, res.Found())
	assert.Equal(t, "2018-10-09", res.Value())
	assert.Equal(t, []string{"test"}, res.Names())
}

func TestGet_Multiple(t *testing.T) {
	d := seeded(t)

	res := d.Get("test", "testlab", "future_use")
	require.True(t, res.Found())
	assert.Equal(t, map[string]any{
		"test":       "2018-10-09",
		"testlab":    "AQLAB",
		"future_use": 1,
	}, res.Value())
}

func TestGet_Unknown(t *testing.T) {
	d, logs := newObserved(schema.IES)
	require.NoError(t, d.Validate(map[string]any{"test": "x"}, Partial))

	res := d.Get("fake_item", "another_fake_item")
	assert.False(t, res.Found())
	assert.Nil(t, res.Value())
	assert.Empty(t, res.Map())

	entries := logs.FilterMessage("there is no field").All()
	require.Len(t, entries, 2)

	var fields []string
	for _, e := range entries {
		fields = append(fields, e.ContextMap()["field"].(string))
	}

	assert.ElementsMatch(t, []string{"fake_item", "another_fake_item"}, fields)

	warnings := d.Diagnostics().Warnings
	require.Len(t, warnings, 2)
	assert.Equal(t, diagnostic.CodeUnknownField, warnings[0].Code)
	assert.Equal(t, "there is no field fake_item", warnings[0].Message)
}

func TestGet_ValidAndUnknown(t *testing.T) {
	d, logs := newObserved(schema.IES)
	require.NoError(t, d.Validate(map[string]any{
		"test": "2018-10-09", "testlab": "AQLAB", "issuedate": "2018-10-09",
	}, Partial))

	res := d.Get("test", "testlab", "fake_item", "issuedate", "fake_item")

	assert.Equal(t, map[string]any{
		"test":      "2018-10-09",
		"testlab":   "AQLAB",
		"issuedate": "2018-10-09",
	}, res.Value())

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fake_item", entries[0].ContextMap()["field"])
	assert.Equal(t, "ies", entries[0].ContextMap()["format"])
}

func TestGet_KnownButUnset(t *testing.T) {
	d, logs := newObserved(schema.IES)

	res := d.Get("lamp")
	assert.False(t, res.Found())
	assert.Equal(t, 1, logs.Len())
}

func TestSet_Positional(t *testing.T) {
	d := New(schema.LDT)

	var args []any
	for _, name := range []string{"report_no", "luminaire_name", "luminaire_no"} {
		args = append(args, name, ldtItems[name])
	}

	require.NoError(t, d.Set(args, nil))
	assert.Equal(t, ldtItems, d.Get("report_no", "luminaire_name", "luminaire_no").Value())
}

func TestSet_Keyed(t *testing.T) {
	d := New(schema.LDT)

	require.NoError(t, d.Set(nil, ldtItems))
	assert.Equal(t, ldtItems, d.Get("report_no", "luminaire_name", "luminaire_no").Value())
}

func TestSet_KeyedWinsOverPositional(t *testing.T) {
	d := New(schema.LDT)

	require.NoError(t, d.Set(
		[]any{"report_no", "positional", "luminaire_no", "1"},
		map[string]any{"report_no": "keyed"},
	))

	assert.Equal(t, "keyed", d.Get("report_no").Value())
	assert.Equal(t, "1", d.Get("luminaire_no").Value())
}

func TestSet_ArgumentCount(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		wantErr bool
	}{
		{name: "one", args: []any{"arg1"}, wantErr: true},
		{name: "two", args: []any{"report_no", "R"}},
		{name: "three", args: []any{"arg1", "arg2", "arg3"}, wantErr: true},
		{name: "four", args: []any{"report_no", "R", "luminaire_no", "N"}},
		{name: "five", args: []any{"a", "b", "c", "d", "e"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New(schema.LDT)
			err := d.Set(tt.args, nil)

			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			var cerr *ArgumentCountError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, len(tt.args), cerr.Count)
			assert.Zero(t, d.Len())
		})
	}
}

func TestSet_UnknownField(t *testing.T) {
	d, logs := newObserved(schema.LDT)

	args := []any{
		"report_no", ldtItems["report_no"],
		"luminaire_name", ldtItems["luminaire_name"],
		"luminaire_no", ldtItems["luminaire_no"],
		"fake_item", "fake_value",
	}
	require.NoError(t, d.Set(args, nil))

	entries := logs.FilterMessage("there is no field").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fake_item", entries[0].ContextMap()["field"])

	assert.False(t, d.Has("fake_item"))
	assert.Equal(t, ldtItems, d.Get("report_no", "luminaire_name", "luminaire_no").Value())
}

func TestSet_InvalidLeavesDocument(t *testing.T) {
	d := New(schema.LDT)
	require.NoError(t, d.Set(nil, ldtItems))

	err := d.Set([]any{"report_no", "changed", "cri", 1}, map[string]any{"tilt": "steep"})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, d.Errors(), "tilt")
	assert.Equal(t, ldtItems["report_no"], d.Get("report_no").Value())
}
