package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"fmt"
	"time"
)

type stagedCmd struct{}

func (stagedCmd) Name() string        { return "staged" }
func (stagedCmd) Description() string { return "List documents waiting in the staging area" }
func (stagedCmd) Usage() string       { return "staged" }

func (stagedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.Staging.List()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Staging area is empty")
		return nil
	}
	for _, d := range list {
		fmt.Fprintf(Out, "- %s  %s  staged %s\n", d.ID, d.Name, time.Unix(d.CreatedAt, 0).Format(time.RFC3339))
	}
	return nil
}

func init() { RegisterCmd(stagedCmd{}) }
