package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/remime/cmd/remime/opts"
	"github.com/walteh/remime/pkg/log"
	"github.com/walteh/remime/pkg/operation"
	"github.com/walteh/remime/pkg/source"
	"github.com/walteh/remime/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite MIME type and filename metadata on matching attachments",
		Long: `Run loads the pipeline items from the configured source, rewrites the MIME
type, filename and extension metadata of every attachment matching the
property selector, and writes the transformed item list to the configured
output (stdout when none is set). Payload bytes pass through untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)
			logger := zerolog.Ctx(ctx)
			console := log.FromContext(ctx)

			// Build source
			src, err := source.New(ctx, opts.Config.Source)
			if err != nil {
				return errors.Errorf("creating source: %w", err)
			}

			// Create status manager
			reporter := status.New(logger)

			// Create and run the rewrite operation
			op, err := operation.New(operation.Options{
				Config:   opts.Config,
				Source:   src,
				Reporter: reporter,
			})
			if err != nil {
				return errors.Errorf("creating operation: %w", err)
			}

			output := opts.Config.Output
			if output == "" {
				output = "stdout"
			}
			console.StartRunOperation(ctx, log.RunOperation{
				Source:   src.Describe(),
				MimeType: opts.Config.MimeType,
				Output:   output,
			})

			runner := operation.NewRunner(logger, opts.Config.Async)
			if err := runner.Run(ctx, operation.OperationFunc(op.Apply)); err != nil {
				return errors.Errorf("rewriting attachments: %w", err)
			}

			tracked := reporter.ListAttachments(ctx)
			for _, info := range tracked {
				console.LogAttachmentOperation(ctx, attachmentOperation(info))
			}
			console.EndRunOperation(ctx)

			console.Success(fmt.Sprintf("Rewrote %d attachments (%s)",
				len(tracked), opts.Config.String()))

			return nil
		},
	}

	return cmd
}

// attachmentOperation converts a tracked attachment into its console form
func attachmentOperation(info status.AttachmentInfo) log.AttachmentOperation {
	return log.AttachmentOperation{
		ItemIndex: info.ItemIndex,
		Property:  info.Property,
		FileName:  info.NewFileName,
		MimeType:  info.NewMimeType,
		Status:    strings.ToUpper(info.Status.String()),
		IsRenamed: info.Status == status.StatusRenamed,
		IsSkipped: info.Status == status.StatusSkipped,
	}
}
