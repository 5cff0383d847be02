package commands

import (
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/retouch/cmd/retouch/opts"
	"github.com/walteh/retouch/pkg/inject"
	"github.com/walteh/retouch/pkg/operation"
)

// NewInjectCmd creates the inject command
func NewInjectCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inject <file>",
		Short: "Insert the configured field after its sentinel in one file",
		Long: `Inject inserts the configured field (organisationalPressure: 1, by default)
immediately after every sentinel field assignment (codeChange by default) in
the given file, preserving the whitespace that followed the sentinel, and
overwrites the file in place.

There is no error isolation: a missing argument, unreadable file or failed
write aborts with a non-zero exit status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			injector, err := inject.New(o.Config.Inject.Sentinel, o.Config.Inject.Field, o.Config.Inject.Value)
			if err != nil {
				return errors.Errorf("building injector: %w", err)
			}

			op := &operation.InjectOperation{
				Path:      args[0],
				Injector:  injector,
				Formatter: o.Formatter,
				Console:   o.Console,
			}

			o.UserLogger.LogRunStart(op.Name(), 1)

			if err := operation.Run(ctx, op); err != nil {
				return errors.Errorf("injecting field: %w", err)
			}

			return nil
		},
	}

	return cmd
}
