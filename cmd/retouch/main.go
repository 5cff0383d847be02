package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/walteh/retouch/cmd/retouch/commands"
	"github.com/walteh/retouch/pkg/status"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := log.Logger.WithContext(context.Background())

	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Create shared options; the config is filled in below once cobra has
	// parsed the --config flag
	opts := newRootOpts(ctx, userLogger)

	// Create root command
	var activeCommand string
	rootCmd := &cobra.Command{
		Use:   "retouch",
		Short: "A tool for applying scripted touch-ups to source files",
		Long: `retouch applies ordered text substitution rules to source files in place.
It ships two fixers: restyle rewrites utility-class tokens across a configured
file list, and inject inserts a missing field into object literals after a
sentinel field.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			activeCommand = cmd.Name()
			applyLogLevel()
			if err := loadConfig(cmd.Context(), opts); err != nil {
				userLogger.LogValidation(false, "Failed to load configuration", err)
				return err
			}
			return nil
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRestyleCmd(opts),
		commands.NewInjectCmd(opts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if activeCommand == "" {
			activeCommand = rootCmd.Name()
		}
		userLogger.LogCommandFailed(activeCommand, err)
		os.Exit(1)
	}
}
