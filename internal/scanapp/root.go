package scanapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/services"
)

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}

// Root runs the interactive loop. It exits on EOF or "exit"/"quit".
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to DZnutri (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn() {
		a.report(a.Login(ctx))
	}

	for {
		fmt.Fprintf(a.out, "dznutri %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: scan [barcode], history, stats, delete <id...>, profile, editprofile, report, submit, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, register, forgot, reset, exit")
			}
		case "register":
			a.report(a.Register(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "logout":
			a.report(a.Logout(ctx))
		case "forgot":
			a.report(a.ForgotPassword(ctx))
		case "reset":
			a.report(a.ResetPassword(ctx))
		case "scan":
			a.report(a.Scan(ctx, args))
		case "history":
			a.report(a.History(ctx))
		case "stats":
			a.report(a.Stats(ctx))
		case "delete":
			a.report(a.DeleteHistory(ctx, args))
		case "profile":
			a.report(a.ShowProfile(ctx))
		case "editprofile":
			a.report(a.EditProfile(ctx))
		case "report":
			a.report(a.FileReport(ctx))
		case "submit":
			a.report(a.SubmitProduct(ctx))
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// report renders a command's failure. A dead session gets one uniform
// message; the next prompt shows the logged-out state and the user logs in
// again.
func (a *App) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Session expired. Please log in again.")
	case errors.Is(err, api.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unreachable. Check your connection and try again.")
	case errors.Is(err, api.ErrTimeout):
		fmt.Fprintln(a.out, "The server took too long to respond. Try again.")
	case errors.Is(err, services.ErrInvalidCredentials):
		fmt.Fprintln(a.out, "Invalid email or password.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
