package scanapp

import (
	"context"
	"fmt"
	"os"

	"github.com/dznutri/dznutri/internal/termio"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = termio.GetSimpleText
var getPassword = termio.GetPassword

// Login prompts for credentials and installs the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Email)
	a.auth.RegisterPushToken(ctx, os.Getenv("DZNUTRI_PUSH_TOKEN"))
	return nil
}

// Register creates an account and logs straight in, matching the mobile
// onboarding flow.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ForgotPassword(ctx, email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "If the address exists, a reset email is on its way.")
	return nil
}

func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter the reset token from the email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, token, string(password)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password updated. You can log in now.")
	return nil
}
