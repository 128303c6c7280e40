package commands

import (
	"HomeCrew/internal/cli/auth"
	"HomeCrew/internal/config"
	"context"
	"fmt"
)

type logoutCmd struct{}

func (logoutCmd) Name() string        { return "logout" }
func (logoutCmd) Description() string { return "Sign out and remove the stored profile" }
func (logoutCmd) Usage() string       { return "logout" }

func (logoutCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	if err := auth.NewSession().SignOut(); err != nil {
		return err
	}
	fmt.Fprintln(Out, "Signed out")
	return nil
}

func init() { RegisterCmd(logoutCmd{}) }
