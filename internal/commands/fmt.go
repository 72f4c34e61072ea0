package commands

import (
	"github.com/spf13/cobra"
)

func registerFmtCmd(parent *cobra.Command, a *app) {
	var out outputFlags

	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Re-serialize a file in canonical form",
		Long: `Parse and validate the file, then print it, or write it with -w or -d.
Numbers are written in canonical form, e.g. 90 becomes 90.0 for float fields.`,
		Example: `  # Normalize a file in place
  phfile fmt lens.ldt -w lens.ldt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.open(args[0])
			if err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), f, out)
		},
	}

	out.register(cmd)

	parent.AddCommand(cmd)
}
