// Package commands contains the phfile command definitions.
package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phfile/document"
	"phfile/format"
	"phfile/internal/config"
	"phfile/internal/observability"
)

// app is the state shared by all commands once the root pre-run has loaded
// the configuration.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "phfile",
		Short: "Inspect and edit LDT and IES photometric files",
		Long: `phfile reads EULUMDAT (.ldt) and IESNA LM-63 (.ies) photometric files,
validates them, reads and changes single fields and writes them back.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (default: ./phfile.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	registerCheckCmd(rootCmd, a)
	registerGetCmd(rootCmd, a)
	registerSetCmd(rootCmd, a)
	registerFmtCmd(rootCmd, a)
	registerDumpCmd(rootCmd, a)

	return rootCmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.Log.Level = "debug"
	}

	a.cfg = cfg
	a.logger = observability.NewLogger(cfg.Log, cmd.ErrOrStderr())

	return nil
}

// open loads a photometric file in the configured encoding.
func (a *app) open(path string) (format.File, error) {
	a.logger.Debug("loading", zap.String("path", path), zap.String("encoding", a.cfg.Encoding))

	return format.OpenEncoded(path, a.cfg.Encoding, document.WithLogger(a.logger))
}
