package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"fmt"
)

type staffRmCmd struct{}

func (staffRmCmd) Name() string { return "staff-rm" }
func (staffRmCmd) Description() string {
	return "Permanently delete a staff member and their documents"
}
func (staffRmCmd) Usage() string { return "staff-rm <staff-id>" }

func (staffRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	if err := svc.Staff.DeleteStaff(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted staff %s\n", args[0])
	return nil
}

func init() { RegisterCmd(staffRmCmd{}) }
