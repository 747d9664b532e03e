package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/llehouerou/wavedeck/internal/config"
)

type runFunc func(ctx context.Context, opts config.Options) error

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(run)
}

func newRootCmd(runner runFunc) *cobra.Command {
	opts := config.Default()

	cmd := &cobra.Command{
		Use:   "wavedeck [PATH]",
		Short: "Browse and play audio files in the terminal",
		Long: `wavedeck browses the current directory in a two-pane terminal UI and
plays mp3, wav, ogg and flac files.

With PATH it plays that one file without a UI and exits when it ends.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Path = args[0]
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return runner(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Loop, "loop", "l", false, "repeat PATH forever")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "write a debug log to `FILE`")
	_ = cmd.Flags().MarkHidden("log-file")

	return cmd
}

func run(ctx context.Context, opts config.Options) error {
	switch opts.Mode() {
	case config.ModeSingle:
		return runSingle(ctx, opts)
	case config.ModeInteractive:
	}
	return runInteractive(ctx, opts)
}
