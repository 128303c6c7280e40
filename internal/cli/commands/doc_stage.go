package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/cli/model"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
	"path/filepath"
)

type docStageCmd struct{}

func (docStageCmd) Name() string { return "doc-stage" }
func (docStageCmd) Description() string {
	return "Copy a local file into the staging area for the next staff-add or staff-edit"
}
func (docStageCmd) Usage() string { return "doc-stage <file> [name] | doc-stage --from <staff-id>" }

func (docStageCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("doc-stage", flag.ContinueOnError)
	from := fs.String("from", "", "staff id whose documents are re-staged")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()

	if *from != "" {
		if len(rest) != 0 {
			return ErrUsage
		}
		return restageFromStaff(ctx, cfg, *from)
	}

	if len(rest) < 1 || len(rest) > 2 {
		return ErrUsage
	}
	path := rest[0]
	name := ""
	if len(rest) == 2 {
		name = rest[1]
	}
	if name == "" {
		name = filepath.Base(path)
	}

	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	staged, err := svc.Staging.Stage(path, name)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Staged %s as %q (id %s)\n", path, staged.Name, staged.ID)
	return nil
}

// restageFromStaff copies an existing staff member's documents back into
// the staging area so they can be attached to another staff member.
func restageFromStaff(ctx context.Context, cfg *config.Config, staffID string) error {
	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	docs, err := svc.Documents.FetchDocuments(ctx, staffID)
	if err != nil {
		return err
	}
	items := model.ToDocumentItems(docs)
	for _, item := range items {
		staged, err := svc.Staging.Stage(item.Path, item.Name)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Staged %q (id %s)\n", staged.Name, staged.ID)
	}
	if skipped := len(docs) - len(items); skipped > 0 {
		fmt.Fprintf(Out, "Skipped %d document(s) without a local file\n", skipped)
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "Nothing staged")
	}
	return nil
}

func init() { RegisterCmd(docStageCmd{}) }
