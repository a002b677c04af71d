package adminapp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/score"
	"github.com/dznutri/dznutri/internal/services"
)

// Dashboard shows the moderator header: account, per-status totals. Each
// number loads independently; a failed one is shown as "-" instead of
// taking the whole dashboard down.
func (a *App) Dashboard(ctx context.Context) error {
	if profile, err := a.moderation.Profile(ctx); err == nil {
		fmt.Fprintf(a.out, "Moderator: %s\n", profile.Email)
	} else {
		return err
	}

	counts := a.moderation.Counts(ctx)
	for _, status := range []string{models.StatusPending, models.StatusApproved, models.StatusRejected} {
		badge := score.StatusBadge(status)
		if n, ok := counts[status]; ok {
			fmt.Fprintf(a.out, "  %-12s %d\n", badge.Label, n)
		} else {
			fmt.Fprintf(a.out, "  %-12s -\n", badge.Label)
		}
	}
	return nil
}

// ListSubmissions loads the submissions with the given status (default
// pending) into the working view.
func (a *App) ListSubmissions(ctx context.Context, args []string) error {
	status := models.StatusPending
	if len(args) > 0 {
		status = args[0]
	}

	subs, err := a.moderation.Refresh(ctx, status)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Fprintf(a.out, "No %s submissions.\n", status)
		return nil
	}
	for _, s := range subs {
		fmt.Fprintf(a.out, "%4d  %-15s %-25s %-15s %s\n", s.ID, s.Barcode, s.ProductName, s.Brand, s.SubmittedAt)
	}
	return nil
}

// Approve publishes a submission. The moderator can correct the product
// name before publishing; the rest of the OCR-extracted data is sent as-is.
func (a *App) Approve(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "approve")
	if err != nil || id == 0 {
		return err
	}

	sub := a.findSubmission(id)
	if sub == nil {
		fmt.Fprintf(a.out, "Submission %d is not in the current list.\n", id)
		return nil
	}

	edit := services.EditFromSubmission(sub)
	name, err := getSimpleText(a.reader, fmt.Sprintf("Product name [%s] (leave empty to keep)", edit.ProductName), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		edit.ProductName = name
	}

	if err := a.moderation.Approve(ctx, id, edit); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Submission %d approved. %d pending left.\n", id, len(a.moderation.Submissions()))
	return nil
}

func (a *App) Reject(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "reject")
	if err != nil || id == 0 {
		return err
	}

	if a.findSubmission(id) == nil {
		fmt.Fprintf(a.out, "Submission %d is not in the current list.\n", id)
		return nil
	}

	if err := a.moderation.Reject(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Submission %d rejected. %d pending left.\n", id, len(a.moderation.Submissions()))
	return nil
}

func (a *App) idArg(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		fmt.Fprintf(a.out, "Usage: %s <id>\n", usage)
		return 0, nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}

func (a *App) findSubmission(id int64) *models.Submission {
	for _, s := range a.moderation.Submissions() {
		if s.ID == id {
			return &s
		}
	}
	return nil
}
