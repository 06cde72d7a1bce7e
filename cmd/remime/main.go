package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/walteh/remime/cmd/remime/commands"
	"github.com/walteh/remime/cmd/remime/opts"
	"github.com/walteh/remime/pkg/log"
	"github.com/walteh/remime/pkg/status"

	// Item sources register themselves by type name
	_ "github.com/walteh/remime/pkg/source/dir"
	_ "github.com/walteh/remime/pkg/source/github"
	_ "github.com/walteh/remime/pkg/source/jsonl"
)

func main() {
	// Setup logging
	setupLogging()
	ctx := zlog.Logger.WithContext(context.Background())

	// Console logger for the per-run attachment summary
	ctx = log.NewContext(ctx, log.New(os.Stderr, zerolog.InfoLevel))

	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Root options are filled in once flags have been parsed
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "remime",
		Short: "A tool for rewriting MIME type and filename metadata on pipeline attachments",
		Long: `remime changes the MIME type, file extension and filename metadata of the
binary attachments carried by pipeline items, without touching the payload
bytes. Items come from a JSON/JSONL document, a local directory or a GitHub
repository path.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return initRootOpts(cmd.Context(), rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewRunCmd(rootOpts),
		commands.NewInspectCmd(rootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
