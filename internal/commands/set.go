package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phfile/document"
	"phfile/format"
	"phfile/ldt"
	"phfile/schema"
)

func registerSetCmd(parent *cobra.Command, a *app) {
	var (
		valuesPath string
		out        outputFlags
	)

	cmd := &cobra.Command{
		Use:   "set FILE [NAME=VALUE...]",
		Short: "Change fields and print or write the result",
		Long: `Validate the given fields and merge them into the file. List fields take
comma-separated values. Values may also come from a YAML mapping given with
--values; NAME=VALUE arguments take precedence over it.`,
		Example: `  # Rename the luminaire and write the result next to the original
  phfile set lens.ldt luminaire_name="LENS LINE 2" -w lens2.ldt

  # Set the C-plane angles by position
  phfile set lens.ldt 29=0,180 -d`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.open(args[0])
			if err != nil {
				return err
			}

			kwargs := map[string]any{}

			if valuesPath != "" {
				kwargs, err = document.LoadValues(valuesPath)
				if err != nil {
					return err
				}
			}

			assigned, err := parseAssignments(f, args[1:])
			if err != nil {
				return err
			}

			for name, v := range assigned {
				kwargs[name] = v
			}

			if err := f.Set(nil, kwargs); err != nil {
				return err
			}

			return a.emit(cmd.OutOrStdout(), f, out)
		},
	}

	cmd.Flags().StringVar(&valuesPath, "values", "", "YAML file with field values")
	out.register(cmd)

	parent.AddCommand(cmd)
}

func parseAssignments(f format.File, args []string) (map[string]any, error) {
	kwargs := make(map[string]any, len(args))

	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected NAME=VALUE, got %q", arg)
		}

		if fieldKind(f, name) == schema.KindList {
			kwargs[name] = splitList(value)
		} else {
			kwargs[name] = value
		}
	}

	return kwargs, nil
}

func fieldKind(f format.File, name string) schema.Kind {
	s := f.Document().Schema()

	if fld, ok := s.Field(name); ok {
		return fld.Kind
	}

	if f.Extension() == ldt.Extension {
		if fld, ok := s.Field(ldt.TranslateName(name)); ok {
			return fld.Kind
		}
	}

	return schema.KindString
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{}
	}

	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}
