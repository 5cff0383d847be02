package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/retouch/cmd/retouch/opts"
	"github.com/walteh/retouch/pkg/config"
	"github.com/walteh/retouch/pkg/status"
)

var (
	// Flags
	configFile string
	debug      bool
)

// newRootOpts creates the shared RootOpts. The config itself is loaded in
// PersistentPreRunE, after cobra has parsed the --config flag.
func newRootOpts(ctx context.Context, userLogger *status.UserLogger) *opts.RootOpts {
	return &opts.RootOpts{
		UserLogger: userLogger,
		Formatter:  status.NewDefaultFileFormatter(),
		Console:    os.Stdout,
	}
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: .retouch.yaml/.retouch.hcl if present, else built-in defaults)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
}

// loadConfig resolves the configuration once flags are parsed
func loadConfig(ctx context.Context, o *opts.RootOpts) error {
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	o.Config = cfg
	return nil
}

// setupLogging configures zerolog console output. The level is raised in
// PersistentPreRunE once the --debug flag has actually been parsed.
func setupLogging() {
	log.Logger = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// applyLogLevel applies the parsed --debug flag
func applyLogLevel() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
