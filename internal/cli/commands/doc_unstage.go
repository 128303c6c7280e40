package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"fmt"
)

type docUnstageCmd struct{}

func (docUnstageCmd) Name() string        { return "doc-unstage" }
func (docUnstageCmd) Description() string { return "Remove a document from the staging area" }
func (docUnstageCmd) Usage() string       { return "doc-unstage <staged-id> | doc-unstage --all" }

func (docUnstageCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	if args[0] == "--all" {
		if err := svc.Staging.Clear(); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Staging area cleared")
		return nil
	}
	if err := svc.Staging.Remove(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Unstaged %s\n", args[0])
	return nil
}

func init() { RegisterCmd(docUnstageCmd{}) }
