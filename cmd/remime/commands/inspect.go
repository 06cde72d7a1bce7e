package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/remime/cmd/remime/opts"
	"github.com/walteh/remime/pkg/operation"
	"github.com/walteh/remime/pkg/source"
	"github.com/walteh/remime/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewInspectCmd creates a new inspect command
func NewInspectCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show what a run would change without writing anything",
		Long: `Inspect is a dry run: it loads the items, applies the configured rewrite in
memory and prints what every attachment would become. No output document is
written and the source is never modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "inspect").Logger().WithContext(ctx)
			logger := zerolog.Ctx(ctx)

			src, err := source.New(ctx, opts.Config.Source)
			if err != nil {
				return errors.Errorf("creating source: %w", err)
			}

			op, err := operation.New(operation.Options{
				Config:   opts.Config,
				Source:   src,
				Reporter: status.New(logger),
			})
			if err != nil {
				return errors.Errorf("creating operation: %w", err)
			}

			infos, err := op.Preview(ctx)
			if err != nil {
				return errors.Errorf("previewing rewrite: %w", err)
			}

			for _, info := range infos {
				opts.UserLogger.LogAttachmentChange(info)
			}

			return nil
		},
	}

	return cmd
}
