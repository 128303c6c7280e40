package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"fmt"
)

type docRmCmd struct{}

func (docRmCmd) Name() string        { return "doc-rm" }
func (docRmCmd) Description() string { return "Delete uploaded documents by record id" }
func (docRmCmd) Usage() string       { return "doc-rm <document-id>..." }

func (docRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.Documents.DeleteDocuments(ctx, args); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %d document(s)\n", len(args))
	return nil
}

func init() { RegisterCmd(docRmCmd{}) }
