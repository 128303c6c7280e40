package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
)

type householdAddCmd struct{}

func (householdAddCmd) Name() string        { return "household-add" }
func (householdAddCmd) Description() string { return "Create a household" }
func (householdAddCmd) Usage() string {
	return "household-add --name <name> --address <address> [--notes <notes>]"
}

func (householdAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("household-add", flag.ContinueOnError)
	name := fs.String("name", "", "household name")
	address := fs.String("address", "", "household address")
	notes := fs.String("notes", "", "optional notes")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	h, err := svc.Households.CreateHousehold(ctx, *name, *address, *notes)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Created household %s (%s)\n", h.ID, h.Name)
	return nil
}

func init() { RegisterCmd(householdAddCmd{}) }
