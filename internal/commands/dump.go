package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"phfile/format"
)

func registerDumpCmd(parent *cobra.Command, a *app) {
	var output string

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print all fields of a file",
		Long: `Print every stored field. yaml keeps the file's field order, json sorts
fields by name and debug shows the Go values with their types.`,
		Example: `  # Convert an IES file into an editable YAML mapping
  phfile dump downlight.ies -o yaml > values.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.open(args[0])
			if err != nil {
				return err
			}

			return runDump(cmd.OutOrStdout(), f, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml, json or debug")

	parent.AddCommand(cmd)
}

func runDump(out io.Writer, f format.File, output string) error {
	switch output {
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)

		if err := enc.Encode(f.Document()); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(f.Document().Values())
	case "debug":
		spew.Fdump(out, f.Document().Values())
		return nil
	default:
		return fmt.Errorf("unknown output format %q", output)
	}
}
