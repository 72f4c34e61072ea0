package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"phfile/document"
	"phfile/format"
)

func registerGetCmd(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "get FILE FIELD...",
		Short: "Print field values",
		Long: `Print the values of the named fields. LDT fields may also be named by
their position in the file, 1 to 31. Unknown names are logged and skipped.`,
		Example: `  # Print the luminaire name of an LDT file, by name and by position
  phfile get lens.ldt luminaire_name
  phfile get lens.ldt 9`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.open(args[0])
			if err != nil {
				return err
			}

			return runGet(cmd.OutOrStdout(), f, args[1:])
		},
	}

	parent.AddCommand(cmd)
}

func runGet(out io.Writer, f format.File, names []string) error {
	res := f.Get(names...)
	if !res.Found() {
		return errors.New("no field found")
	}

	if len(res.Names()) == 1 {
		fmt.Fprintln(out, renderValue(f, res.Names()[0], res.Value()))
		return nil
	}

	values := res.Map()
	for _, name := range res.Names() {
		fmt.Fprintf(out, "%s: %s\n", name, renderValue(f, name, values[name]))
	}

	return nil
}

// renderValue prints scalars plainly, lists space-separated and records one
// per line as name=value pairs.
func renderValue(f format.File, name string, v any) string {
	recs, ok := v.([]document.Record)
	if !ok {
		return strings.Join(document.FormatList(v), " ")
	}

	fld, _ := f.Document().Schema().Field(name)

	lines := make([]string, len(recs))
	for i, rec := range recs {
		pairs := make([]string, 0, len(rec))
		for _, key := range fld.Record.Names() {
			pairs = append(pairs, key+"="+document.FormatValue(rec[key]))
		}

		lines[i] = strings.Join(pairs, " ")
	}

	return strings.Join(lines, "\n")
}
