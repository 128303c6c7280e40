package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
)

type docsCmd struct{}

func (docsCmd) Name() string        { return "docs" }
func (docsCmd) Description() string { return "List a staff member's ID documents" }
func (docsCmd) Usage() string       { return "docs <staff-id> [--verify]" }

func (docsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	staffID := args[0]
	fs := flag.NewFlagSet("docs", flag.ContinueOnError)
	verify := fs.Bool("verify", false, "cross-check the staff record's idCards list against the reverse query")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	docs, err := svc.Documents.FetchDocuments(ctx, staffID)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Fprintln(Out, "No documents")
	}
	for _, d := range docs {
		kind := d.FileType()
		if kind == "" {
			kind = "?"
		}
		fmt.Fprintf(Out, "- %s  %s  [%s]  %s\n", d.ID, d.Name, kind, d.Asset.Path)
		if d.IsImage() {
			// Warm the two-tier cache so the next view is local.
			if _, ok := svc.Images.Get(d.Asset.ID); !ok {
				if data, err := os.ReadFile(d.Asset.Path); err == nil {
					svc.Images.Set(d.Asset.ID, data)
				}
			}
		}
	}

	if *verify {
		missingFromList, missingFromQuery, err := svc.Documents.CheckDocumentConsistency(ctx, staffID)
		if err != nil {
			return err
		}
		if len(missingFromList) == 0 && len(missingFromQuery) == 0 {
			fmt.Fprintln(Out, "idCards list is consistent with the reverse query")
		} else {
			if len(missingFromList) > 0 {
				fmt.Fprintf(Out, "documents missing from the idCards list: %v\n", missingFromList)
			}
			if len(missingFromQuery) > 0 {
				fmt.Fprintf(Out, "idCards entries with no matching document: %v\n", missingFromQuery)
			}
		}
	}
	return nil
}

func init() { RegisterCmd(docsCmd{}) }
