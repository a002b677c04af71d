package scanapp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dznutri/dznutri/internal/score"
)

func (a *App) History(ctx context.Context) error {
	entries, err := a.history.Refresh(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No scans yet.")
		return nil
	}
	for _, e := range entries {
		cat := score.Categorize(e.CustomScore)
		fmt.Fprintf(a.out, "%4d  %-30s %-15s %3.0f %s\n", e.ID, e.ProductName, e.Brand, e.CustomScore, cat.Label)
	}
	return nil
}

// DeleteHistory removes entries by id. Ids already gone from the list are
// skipped silently.
func (a *App) DeleteHistory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id> [id...]")
		return nil
	}
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", arg)
		}
		ids = append(ids, id)
	}
	if err := a.history.Delete(ctx, ids...); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d entries in history.\n", len(a.history.Entries()))
	return nil
}

func (a *App) Stats(ctx context.Context) error {
	stats, err := a.history.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Scans: %d  Average score: %.1f\n", stats.TotalScans, stats.AverageScore)
	d := stats.Distribution
	fmt.Fprintf(a.out, "  Excellent: %d  Bon: %d  Médiocre: %d  Mauvais: %d\n", d.Excellent, d.Bon, d.Mediocre, d.Mauvais)
	return nil
}
