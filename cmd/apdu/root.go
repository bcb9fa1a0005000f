package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	Verbose   bool
	LogFormat string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "apdu",
		Short:         "Encode and decode ISO/IEC 7816-4 APDUs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.LogFormat, opts.Verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			// Sync on a console sink can report EINVAL; nothing useful to do with it.
			_ = opts.logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log raw byte traces at debug level")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "console", "log encoding: console|json")

	cmd.AddCommand(
		newEncodeCmd(opts),
		newDecodeCommandCmd(opts),
		newDecodeResponseCmd(opts),
	)
	return cmd
}

// newLogger builds a stderr logger. Console output uses the development encoder,
// json uses the production one.
func newLogger(format string, verbose bool) (*zap.Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(format) {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q (want console or json)", format)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}
