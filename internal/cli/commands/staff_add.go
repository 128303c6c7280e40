package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/cli/model"
	"HomeCrew/internal/cli/service"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
	"time"
)

type staffAddCmd struct{}

func (staffAddCmd) Name() string { return "staff-add" }
func (staffAddCmd) Description() string {
	return "Create a staff member; uploads every staged document"
}
func (staffAddCmd) Usage() string {
	return "staff-add --household <id> --name <full legal name> --start <YYYY-MM-DD> --salary <amount> --duties <text> [--aka <name>] [--currency <code>] [--leaves <n>]"
}

func (staffAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("staff-add", flag.ContinueOnError)
	household := fs.String("household", "", "owning household id")
	name := fs.String("name", "", "full legal name")
	aka := fs.String("aka", "", "commonly known as")
	start := fs.String("start", "", "starting date, YYYY-MM-DD")
	salary := fs.Float64("salary", 0, "monthly salary")
	currency := fs.String("currency", model.DefaultCurrencyCode, "ISO 4217 currency code")
	leaves := fs.Int("leaves", model.DefaultLeavesAllocated, "allocated leaves per year")
	duties := fs.String("duties", "", "agreed duties")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}

	var startDate time.Time
	if *start != "" {
		var err error
		if startDate, err = time.Parse("2006-01-02", *start); err != nil {
			return fmt.Errorf("invalid --start date: %w", err)
		}
	}

	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	staged, err := svc.Staging.List()
	if err != nil {
		return err
	}
	docs := make([]model.DocumentItem, 0, len(staged))
	for _, d := range staged {
		docs = append(docs, model.DocumentItem{Path: d.Path, Name: d.Name})
	}

	created, err := svc.Staff.CreateStaff(ctx, service.StaffInput{
		HouseholdID:     *household,
		FullLegalName:   *name,
		CommonlyKnownAs: *aka,
		StartingDate:    startDate,
		LeavesAllocated: *leaves,
		MonthlySalary:   *salary,
		CurrencyCode:    *currency,
		AgreedDuties:    *duties,
	}, docs)
	if err != nil {
		if created.ID != "" {
			// Staff record exists but documents failed; staging is kept
			// so the upload can be retried.
			fmt.Fprintf(Out, "Created staff %s, but document upload failed\n", created.ID)
		}
		return err
	}
	if err := svc.Staging.Clear(); err != nil {
		return fmt.Errorf("staff %s created, but clearing the staging area failed: %w", created.ID, err)
	}
	fmt.Fprintf(Out, "Created staff %s (%s) with %d document(s)\n", created.ID, created.DisplayName(), len(docs))
	return nil
}

func init() { RegisterCmd(staffAddCmd{}) }
