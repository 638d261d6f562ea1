package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newUsersCommand(ctx context.Context, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List everyone tracked in the brag file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := opts.loadDocument(ctx)
			if err != nil {
				return err
			}
			view := opts.view(doc)
			if len(view.Users) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "(no users)")
				return nil
			}
			names := make([]string, 0, len(view.Users))
			for _, u := range view.Users {
				names = append(names, u.DisplayName())
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, ", "))
			return nil
		},
	}
}

func newStatsCommand(ctx context.Context, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-user completion statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := opts.loadDocument(ctx)
			if err != nil {
				return err
			}
			view := opts.view(doc)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%-24s %6s %8s %7s %7s\n", "USER", "DONE", "PARTIAL", "MISSED", "RATIO")
			fmt.Fprintln(out, strings.Repeat("-", 56))
			for _, u := range view.Users {
				stats := u.Stats()
				fmt.Fprintf(out, "%-24s %6d %8d %7d %6.0f%%\n",
					u.Name,
					stats.Done,
					stats.Partial,
					stats.Missed,
					stats.CompletionRatio()*100,
				)
			}
			return nil
		},
	}
}
