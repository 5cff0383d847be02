package commands

import (
	"github.com/spf13/cobra"

	"github.com/walteh/retouch/cmd/retouch/opts"
	"github.com/walteh/retouch/pkg/operation"
	"github.com/walteh/retouch/pkg/text"
)

// NewRestyleCmd creates the restyle command
func NewRestyleCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restyle",
		Short: "Rewrite style tokens across the configured files",
		Long: `Restyle applies the configured substitution rules, in order, to each file
in the configured list and overwrites the files in place.

Failures are isolated per file: a missing or unreadable file gets an error
line and the run continues with the remaining files. The exit code is zero
even when files fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rules := make([]text.ReplacementRule, 0, len(o.Config.Restyle.Rules))
			for _, r := range o.Config.Restyle.Rules {
				rules = append(rules, text.ReplacementRule{
					Pattern:        r.Pattern,
					Replace:        r.Replace,
					FileFilterGlob: r.FileFilterGlob,
				})
			}

			op := &operation.RestyleOperation{
				Files:     o.Config.Restyle.Files,
				Rules:     rules,
				Replacer:  text.NewRegexReplacer(),
				Formatter: o.Formatter,
				Console:   o.Console,
				Async:     o.Config.Restyle.Async,
			}

			o.UserLogger.LogRunStart(op.Name(), len(op.Files))

			// The operation never fails: per-file errors were already printed.
			return operation.Run(ctx, op)
		},
	}

	return cmd
}
