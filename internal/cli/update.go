package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/maebert/bragmaster/internal/brag"
	"github.com/maebert/bragmaster/internal/files"
)

func newUpdateCommand(ctx context.Context, opts *options) *cobra.Command {
	var (
		inputFlag string
		writeFlag bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Merge an incoming session log into the brag file.",
		Long: "update reads a second brag document from --input or stdin and reconciles it " +
			"into the base file. Matching entries take the incoming status and comment; " +
			"new users, sessions, and tasks are appended. Nothing is ever deleted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, manager, err := opts.loadDocument(ctx)
			if err != nil {
				return err
			}

			var incoming *brag.Document
			if inputFlag != "" {
				incoming, err = files.LoadText(inputFlag)
			} else {
				incoming, err = readDocument(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			doc.Update(incoming)

			if writeFlag {
				if err := manager.Save(ctx, doc); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", manager.Path())
				return nil
			}
			printDocument(cmd, opts.view(doc))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input file with the incoming document (default: stdin)")
	cmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the merged document back to the brag file")

	return cmd
}

func readDocument(r io.Reader) (*brag.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read incoming document: %w", err)
	}
	return brag.Parse(string(data))
}

func newEditCommand(ctx context.Context, opts *options) *cobra.Command {
	var editorFlag string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Fill in the next session in your editor and merge it back.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, manager, err := opts.loadDocument(ctx)
			if err != nil {
				return err
			}

			template := doc.Template(time.Now())
			edited, err := files.Edit(ctx, editorFlag, template+"\n")
			if err != nil {
				return err
			}

			incoming, err := brag.Parse(edited)
			if err != nil {
				return err
			}

			doc.Update(incoming)
			if err := manager.Save(ctx, doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", manager.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&editorFlag, "editor", "", "Editor command (default: $VISUAL, $EDITOR, or vi)")

	return cmd
}
