package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"fmt"
)

type householdsCmd struct{}

func (householdsCmd) Name() string        { return "households" }
func (householdsCmd) Description() string { return "List all households" }
func (householdsCmd) Usage() string       { return "households" }

func (householdsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.Households.ListHouseholds(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No households")
		return nil
	}
	for _, h := range list {
		fmt.Fprintf(Out, "- %s  %s  (%s)\n", h.ID, h.Name, h.Address)
		if h.Notes != "" {
			fmt.Fprintf(Out, "    notes: %s\n", h.Notes)
		}
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(householdsCmd{}) }
