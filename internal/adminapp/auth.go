package adminapp

import (
	"context"
	"fmt"

	"github.com/dznutri/dznutri/internal/termio"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = termio.GetSimpleText
var getPassword = termio.GetPassword

func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter admin email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.LoginAdmin(ctx, username, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
