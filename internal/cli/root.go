package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/maebert/bragmaster/internal/ui"
)

// NewRootCommand creates the top-level Cobra command hosting subcommands and
// the TUI launcher.
func NewRootCommand(ctx context.Context) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "brag",
		Short: "Track goals and weekly progress in a shared plain-text log.",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := opts.newManager()
			if err != nil {
				return err
			}
			m := ui.NewModel(ctx, manager)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "Path to the brag file (default: $BRAG_FILE or ~/.brag.md)")
	cmd.PersistentFlags().StringVarP(&opts.users, "users", "u", "", "Filter output by users, comma-separated")

	cmd.AddCommand(
		newCurrentCommand(ctx, opts),
		newLastCommand(ctx, opts),
		newTemplateCommand(ctx, opts),
		newUsersCommand(ctx, opts),
		newStatsCommand(ctx, opts),
		newUpdateCommand(ctx, opts),
		newEditCommand(ctx, opts),
		newVersionCommand(),
	)

	return cmd
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/brag/main.go to keep wiring in one package.
func Main(ctx context.Context) {
	if err := ExecuteCommand(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
