package adminapp

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
	fmt.Fprintln(a.out, "DZnutri moderation console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn() {
		a.report(a.Login(ctx))
	}

	for {
		fmt.Fprintf(a.out, "dzadmin %s> ", a.getStatus())
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
				fmt.Fprintln(a.out, "Available commands: dashboard, pending, list [status], approve <id>, reject <id>, reports, tab <type>, editproduct <barcode>, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, exit")
			}
		case "login":
			a.report(a.Login(ctx))
		case "logout":
			a.report(a.Logout(ctx))
		case "dashboard":
			a.report(a.Dashboard(ctx))
		case "pending":
			a.report(a.ListSubmissions(ctx, nil))
		case "list":
			a.report(a.ListSubmissions(ctx, args))
		case "approve":
			a.report(a.Approve(ctx, args))
		case "reject":
			a.report(a.Reject(ctx, args))
		case "reports":
			a.report(a.ListReports(ctx))
		case "tab":
			a.report(a.FilterReports(args))
		case "editproduct":
			a.report(a.EditProduct(ctx, args))
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

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
		fmt.Fprintln(a.out, "Invalid username or password.")
	case errors.Is(err, services.ErrNotAdmin):
		fmt.Fprintln(a.out, "This account has no moderator rights.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
