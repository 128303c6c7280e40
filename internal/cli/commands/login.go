package commands

import (
	"HomeCrew/internal/cli/api"
	"HomeCrew/internal/cli/auth"
	"HomeCrew/internal/config"
	"context"
	"fmt"
)

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in and store the auth cookie and profile" }
func (loginCmd) Usage() string       { return "login <login> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	identity := api.NewIdentityClient(cfg)
	profile, err := identity.SignIn(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if err := auth.NewSession().SignedIn(profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	fmt.Fprintln(Out, "Signed in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
