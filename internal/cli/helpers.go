package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/maebert/bragmaster/internal/brag"
	"github.com/maebert/bragmaster/internal/files"
)

// options carries the persistent root flags into each command.
type options struct {
	file  string
	users string
}

func (o *options) newManager() (*files.Manager, error) {
	return files.NewManager(o.file)
}

// loadDocument reads the full document from disk. The user filter is applied
// separately (see view) so that merges never write a filtered subset back.
func (o *options) loadDocument(ctx context.Context) (*brag.Document, *files.Manager, error) {
	manager, err := o.newManager()
	if err != nil {
		return nil, nil, err
	}
	doc, err := manager.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return doc, manager, nil
}

// view narrows the document to the --users selection for display.
func (o *options) view(doc *brag.Document) *brag.Document {
	if strings.TrimSpace(o.users) == "" {
		return doc
	}
	return doc.Filter(strings.Split(o.users, ","))
}

func printDocument(cmd *cobra.Command, doc *brag.Document) {
	fmt.Fprintln(cmd.OutOrStdout(), doc.Render())
}

func printNoHistory(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), "No dated sessions yet.")
}
