package commands

import (
	"HomeCrew/internal/cli/api"
	"HomeCrew/internal/cli/auth"
	"HomeCrew/internal/config"
	"context"
	"flag"
	"fmt"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account and sign in" }
func (registerCmd) Usage() string {
	return "register <login> <password> [--full-name <name>] [--email <email>]"
}

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	fullName := fs.String("full-name", "", "display name")
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args[2:]); err != nil {
		return ErrUsage
	}

	identity := api.NewIdentityClient(cfg)
	profile, err := identity.Register(ctx, args[0], args[1], *fullName, *email)
	if err != nil {
		return err
	}
	if err := auth.NewSession().SignedIn(profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	fmt.Fprintln(Out, "Registered and signed in")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
