package commands

import (
	"HomeCrew/internal/cli/auth"
	"HomeCrew/internal/config"
	"context"
	"errors"
	"fmt"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show the signed-in user" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	profile, err := auth.NewSession().Current()
	if err != nil {
		if errors.Is(err, auth.ErrNotSignedIn) {
			fmt.Fprintln(Out, "Not signed in")
			return nil
		}
		return err
	}
	fmt.Fprintf(Out, "Signed in as user %s", profile.UserID)
	if profile.FullName != "" {
		fmt.Fprintf(Out, " (%s)", profile.FullName)
	}
	if profile.Email != "" {
		fmt.Fprintf(Out, " <%s>", profile.Email)
	}
	fmt.Fprintln(Out)
	fmt.Fprintf(Out, "Server: %s\n", cfg.ServerURL)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
