package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phfile/format"
)

// outputFlags selects where a command writes the resulting file.
type outputFlags struct {
	path        string
	defaultName bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "write", "w", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVarP(&o.defaultName, "default-name", "d", false,
		"write the result to the output directory under a name derived from the luminaire")
}

// emit prints the file text, or writes it when an output was selected.
func (a *app) emit(out io.Writer, f format.File, o outputFlags) error {
	if o.path != "" && o.defaultName {
		return errors.New("--write and --default-name are mutually exclusive")
	}

	path := o.path
	if o.defaultName {
		path = filepath.Join(a.cfg.OutputDir, f.DefaultName())
	}

	if path == "" {
		text, err := f.Text()
		if err != nil {
			return err
		}

		fmt.Fprintln(out, text)

		return nil
	}

	written, err := f.WriteEncoded(path, a.cfg.Encoding)
	if err != nil {
		return err
	}

	a.logger.Info("written", zap.String("path", written))
	fmt.Fprintln(out, written)

	return nil
}
