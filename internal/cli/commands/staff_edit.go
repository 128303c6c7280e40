package commands

import (
	"HomeCrew/internal/cli/bootstrap"
	"HomeCrew/internal/cli/model"
	"HomeCrew/internal/cli/service"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
	"strings"
	"time"
)

type staffEditCmd struct{}

func (staffEditCmd) Name() string { return "staff-edit" }
func (staffEditCmd) Description() string {
	return "Edit a staff member's fields and documents"
}
func (staffEditCmd) Usage() string {
	return "staff-edit <staff-id> [--name <v>] [--aka <v>] [--start <YYYY-MM-DD>] [--leaving <YYYY-MM-DD>] [--clear-leaving] [--leaves <n>] [--salary <v>] [--currency <v>] [--duties <v>] [--remove-doc <id>]... [--use-staged]"
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func (staffEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	id := args[0]
	fs := flag.NewFlagSet("staff-edit", flag.ContinueOnError)
	name := fs.String("name", "", "full legal name")
	aka := fs.String("aka", "", "commonly known as (empty clears it)")
	start := fs.String("start", "", "starting date, YYYY-MM-DD")
	leaving := fs.String("leaving", "", "leaving date, YYYY-MM-DD")
	clearLeaving := fs.Bool("clear-leaving", false, "clear the leaving date")
	leaves := fs.Int("leaves", 0, "allocated leaves per year")
	salary := fs.Float64("salary", 0, "monthly salary")
	currency := fs.String("currency", "", "ISO 4217 currency code")
	duties := fs.String("duties", "", "agreed duties")
	var removeDocs multiFlag
	fs.Var(&removeDocs, "remove-doc", "document record id to delete (repeatable)")
	useStaged := fs.Bool("use-staged", false, "upload every staged document for this staff member")
	if err := fs.Parse(args[1:]); err != nil {
		return ErrUsage
	}

	// Only flags the user actually passed become part of the edit, so an
	// omitted flag never resets a stored value to its zero.
	upd := service.StaffUpdate{ClearLeavingDate: *clearLeaving}
	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			upd.FullLegalName = name
		case "aka":
			upd.CommonlyKnownAs = aka
		case "start":
			t, err := time.Parse("2006-01-02", *start)
			if err != nil {
				parseErr = fmt.Errorf("invalid --start date: %w", err)
				return
			}
			upd.StartingDate = &t
		case "leaving":
			t, err := time.Parse("2006-01-02", *leaving)
			if err != nil {
				parseErr = fmt.Errorf("invalid --leaving date: %w", err)
				return
			}
			upd.LeavingDate = &t
		case "leaves":
			upd.LeavesAllocated = leaves
		case "salary":
			upd.MonthlySalary = salary
		case "currency":
			upd.CurrencyCode = currency
		case "duties":
			upd.AgreedDuties = duties
		}
	})
	if parseErr != nil {
		return parseErr
	}

	svc, done, err := bootstrap.Open(cfg)
	if err != nil {
		return err
	}
	defer done()

	var newDocs []model.DocumentItem
	if *useStaged {
		staged, err := svc.Staging.List()
		if err != nil {
			return err
		}
		for _, d := range staged {
			newDocs = append(newDocs, model.DocumentItem{Path: d.Path, Name: d.Name})
		}
	}

	updated, err := svc.Staff.UpdateStaff(ctx, id, upd, removeDocs, newDocs)
	if err != nil {
		return err
	}
	if *useStaged && len(newDocs) > 0 {
		if err := svc.Staging.Clear(); err != nil {
			return fmt.Errorf("staff %s updated, but clearing the staging area failed: %w", id, err)
		}
	}
	fmt.Fprintf(Out, "Updated staff %s (%s), %s\n", updated.ID, updated.DisplayName(), updated.EmploymentStatus())
	return nil
}

func init() { RegisterCmd(staffEditCmd{}) }
