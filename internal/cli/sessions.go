package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maebert/bragmaster/internal/brag"
)

func newCurrentCommand(ctx context.Context, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show everyone's latest session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := opts.loadDocument(ctx)
			if err != nil {
				return err
			}
			view := opts.view(doc)
			return printSessionFor(cmd, view, view.CurrentDate)
		},
	}
}

func newLastCommand(ctx context.Context, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "last",
		Short: "Show everyone's previous session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := opts.loadDocument(ctx)
			if err != nil {
				return err
			}
			view := opts.view(doc)
			return printSessionFor(cmd, view, view.LastDate)
		},
	}
}

func printSessionFor(cmd *cobra.Command, doc *brag.Document, pick func() (time.Time, error)) error {
	date, err := pick()
	if err != nil {
		if errors.Is(err, brag.ErrInsufficientHistory) {
			printNoHistory(cmd)
			return nil
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), doc.SessionReport(date))
	return nil
}

func newTemplateCommand(ctx context.Context, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print an editing template for the next session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := opts.loadDocument(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.view(doc).Template(time.Now()))
			return nil
		},
	}
}
