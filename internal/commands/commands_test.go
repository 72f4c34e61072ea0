package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phfile/schema"
)

const lensLDT = "ACME\n1\n1\n2\n15\n1\n5.0\nR-1\nLens Line\n12345\nlens.ldt\nPK\n" +
	"100.0\n50.0\n20.0\n90.0\n40.0\n0.0\n0.0\n0.0\n0.0\n100.0\n95.5\n1.0\n0.0\n0\n" +
	"0.1\n0.2\n0.3\n0.4\n0.5\n0.6\n0.7\n0.8\n0.9\n1.0\n0.0\n180.0\n0.0\n300.5\n250.0"

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.ldt", lensLDT)
	bad := writeFile(t, dir, "bad.ldt", strings.Replace(lensLDT, "95.5\n1.0\n0.0\n0\n", "95.5\n1.0\n95\n0\n", 1))
	short := writeFile(t, dir, "short.ldt", "ACME\n1\n")

	stdout, _, err := execute(t, "check", good, bad, short)
	require.Error(t, err)
	assert.Equal(t, "2 of 3 files invalid", err.Error())

	assert.Contains(t, stdout, good+": ok\n")
	assert.Contains(t, stdout, bad+": invalid\n  tilt: max value is 90\n")
	assert.Contains(t, stdout, "ldt file has wrong number of lines (got 2 expected 26)")
}

func TestCheck_FieldsInFileOrder(t *testing.T) {
	bad := strings.Replace(lensLDT, "95.5\n1.0\n0.0\n0\n", "95.5\n1.0\n95\n0\n", 1)
	bad = strings.Replace(bad, "ACME\n1\n", "ACME\n9\n", 1)
	path := writeFile(t, t.TempDir(), "bad.ldt", bad)

	stdout, _, err := execute(t, "check", path)
	require.Error(t, err)
	assert.Equal(t, path+": invalid\n  type_indicator: max value is 3\n  tilt: max value is 90\n", stdout)
}

func TestFieldOrder(t *testing.T) {
	fields := map[string]string{
		"zzz":                 "unknown",
		"lamps[0].color_temp": "max value is 6500",
		"tilt":                "max value is 90",
		"company":             "required field",
	}

	assert.Equal(t,
		[]string{"company", "tilt", "lamps[0].color_temp", "zzz"},
		fieldOrder(schema.LDT, fields))
	assert.Equal(t,
		[]string{"company", "lamps[0].color_temp", "tilt", "zzz"},
		fieldOrder(nil, fields))
}

func TestGet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lens.ldt", lensLDT)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "by name", args: []string{"luminaire_name"}, want: "Lens Line\n"},
		{name: "by position", args: []string{"9"}, want: "Lens Line\n"},
		{name: "list", args: []string{"angles_c"}, want: "0.0 180.0\n"},
		{name: "several", args: []string{"company", "31"}, want: "company: ACME\nluminous_intensities: 300.5 250.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"get", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lens.ldt", lensLDT)

	stdout, stderr, err := execute(t, "get", path, "colour", "company")
	require.NoError(t, err)
	assert.Equal(t, "ACME\n", stdout)
	assert.Contains(t, stderr, "there is no field")
	assert.Contains(t, stderr, "colour")

	_, _, err = execute(t, "get", path, "colour")
	require.EqualError(t, err, "no field found")
}

func TestSet_Write(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lens.ldt", lensLDT)
	out := filepath.Join(dir, "renamed.ldt")

	stdout, _, err := execute(t, "set", path, "luminaire_name=Lens Line 2", "29=0,90", "-w", out)
	require.NoError(t, err)
	assert.Equal(t, out+"\n", stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	assert.Equal(t, "Lens Line 2", lines[8])
	assert.Equal(t, []string{"0.0", "90.0"}, lines[36:38])
}

func TestSet_ValuesFileAndDefaultName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lens.ldt", lensLDT)
	values := writeFile(t, dir, "values.yaml", "luminaire_name: From YAML\nreport_no: R-9\n")
	cfg := writeFile(t, dir, "phfile.yaml", "output_dir: "+filepath.Join(dir, "out")+"\n")

	stdout, _, err := execute(t, "--config", cfg, "set", path, "--values", values, "report_no=R-10", "-d")
	require.NoError(t, err)

	want := filepath.Join(dir, "out", "From YAML.ldt")
	assert.Equal(t, want+"\n", stdout)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\nR-10\nFrom YAML\n")
}

func TestSet_Invalid(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lens.ldt", lensLDT)

	_, _, err := execute(t, "set", path, "tilt=120")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tilt: [max] max value is 90")

	_, _, err = execute(t, "set", path, "tilt")
	require.EqualError(t, err, `expected NAME=VALUE, got "tilt"`)

	_, _, err = execute(t, "set", path, "tilt=1", "-w", "x.ldt", "-d")
	require.Error(t, err)
}

func TestFmt(t *testing.T) {
	src := strings.Replace(lensLDT, "\n5.0\n", "\n5\n", 1)
	path := writeFile(t, t.TempDir(), "lens.ldt", strings.ReplaceAll(src, "\n", "\r\n"))

	stdout, _, err := execute(t, "fmt", path)
	require.NoError(t, err)
	assert.Equal(t, lensLDT+"\n", stdout)
}

func TestDump(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lens.ldt", lensLDT)

	stdout, _, err := execute(t, "dump", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "company: ACME\ntype_indicator: 1\n"), stdout)
	assert.Contains(t, stdout, "angles_c: [0.0, 180.0]\n")

	stdout, _, err = execute(t, "dump", path, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"number_mc": 2`)

	stdout, _, err = execute(t, "dump", path, "-o", "debug")
	require.NoError(t, err)
	assert.Contains(t, stdout, "map[string]interface {}")

	_, _, err = execute(t, "dump", path, "-o", "xml")
	require.EqualError(t, err, `unknown output format "xml"`)
}

func TestRoot_BadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "lens.ldt", lensLDT)
	cfg := writeFile(t, dir, "phfile.yaml", "version: 3\n")

	_, _, err := execute(t, "--config", cfg, "get", path, "company")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config version")
}

func TestRoot_Verbose(t *testing.T) {
	path := writeFile(t, t.TempDir(), "lens.ldt", lensLDT)

	_, stderr, err := execute(t, "-v", "get", path, "company")
	require.NoError(t, err)
	assert.Contains(t, stderr, "loading")
}
