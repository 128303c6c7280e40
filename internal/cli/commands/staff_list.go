package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
	"time"
)

type staffCmd struct{}

func (staffCmd) Name() string        { return "staff" }
func (staffCmd) Description() string { return "List a household's staff (active only by default)" }
func (staffCmd) Usage() string       { return "staff <household-id> [--all]" }

func (staffCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	householdID := args[0]
	fs := flag.NewFlagSet("staff", flag.ContinueOnError)
	all := fs.Bool("all", false, "include inactive staff")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	list, err := svc.Staff.ListStaff(ctx, householdID, *all)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No staff")
		return nil
	}
	now := time.Now()
	for _, s := range list {
		fmt.Fprintf(Out, "- %s  %s  %s  %.2f %s  employed %s\n",
			s.ID, s.DisplayName(), s.EmploymentStatus(), s.MonthlySalary, s.CurrencyCode, s.EmploymentDuration(now))
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(staffCmd{}) }
