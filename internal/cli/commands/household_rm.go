package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
)

type householdRmCmd struct{}

func (householdRmCmd) Name() string { return "household-rm" }
func (householdRmCmd) Description() string {
	return "Delete a household (with --cascade also its staff and documents)"
}
func (householdRmCmd) Usage() string { return "household-rm <household-id> [--cascade]" }

func (householdRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]
	fs := flag.NewFlagSet("household-rm", flag.ContinueOnError)
	cascade := fs.Bool("cascade", false, "also delete staff and their documents")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	if !*cascade {
		if err := svc.Households.DeleteHousehold(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Deleted household %s (staff and documents were left in place)\n", id)
		return nil
	}

	remaining, err := svc.Households.DeleteHouseholdCascade(ctx, id)
	if err != nil {
		if len(remaining) > 0 {
			fmt.Fprintf(Out, "Cascade incomplete, remaining ids: %v\n", remaining)
		}
		return err
	}
	fmt.Fprintf(Out, "Deleted household %s and all its staff and documents\n", id)
	return nil
}

func init() { RegisterCmd(householdRmCmd{}) }
