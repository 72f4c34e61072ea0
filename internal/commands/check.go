package commands

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"phfile/document"
	"phfile/format"
	"phfile/schema"
)

func registerCheckCmd(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate photometric files",
		Long: `Parse and fully validate each file. Every file is reported; the command
fails when at least one file is invalid.`,
		Example: `  # Check all LDT files in a directory
  phfile check lights/*.ldt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd.OutOrStdout(), args)
		},
	}

	parent.AddCommand(cmd)
}

func (a *app) runCheck(out io.Writer, paths []string) error {
	failed := 0

	for _, path := range paths {
		f, err := a.open(path)
		if err == nil {
			_, err = f.Text()
		}

		if err == nil {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}

		failed++

		var verr *document.ValidationError
		if !errors.As(err, &verr) {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			continue
		}

		fmt.Fprintf(out, "%s: invalid\n", path)

		fields := verr.Fields()

		for _, name := range fieldOrder(schemaOf(path), fields) {
			fmt.Fprintf(out, "  %s: %s\n", name, fields[name])
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files invalid", failed, len(paths))
	}

	return nil
}

func schemaOf(path string) *schema.Schema {
	f, err := format.New(filepath.Ext(path))
	if err != nil {
		return nil
	}

	return f.Document().Schema()
}

// fieldOrder lists the reported fields in file order, nested paths under
// their top-level field and unknown names last.
func fieldOrder(s *schema.Schema, fields map[string]string) []string {
	pos := func(name string) int {
		if s == nil {
			return 0
		}

		if i := strings.IndexAny(name, "[."); i >= 0 {
			name = name[:i]
		}

		if p := s.Position(name); p > 0 {
			return p
		}

		return math.MaxInt
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	slices.SortFunc(names, func(a, b string) int {
		return cmp.Or(cmp.Compare(pos(a), pos(b)), strings.Compare(a, b))
	})

	return names
}
