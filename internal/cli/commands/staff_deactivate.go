package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"fmt"
)

type staffDeactivateCmd struct{}

func (staffDeactivateCmd) Name() string { return "staff-deactivate" }
func (staffDeactivateCmd) Description() string {
	return "Mark a staff member inactive, keeping the record and documents"
}
func (staffDeactivateCmd) Usage() string { return "staff-deactivate <staff-id>" }

func (staffDeactivateCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	staff, err := svc.Staff.Deactivate(ctx, args[0])
	if err != nil {
		return err
	}
	left := "unknown"
	if staff.LeavingDate != nil {
		left = staff.LeavingDate.Format("2006-01-02")
	}
	fmt.Fprintf(Out, "Deactivated %s (%s), leaving date %s\n", staff.ID, staff.DisplayName(), left)
	return nil
}

func init() { RegisterCmd(staffDeactivateCmd{}) }
