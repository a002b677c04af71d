package scanapp

import (
	"context"
	"fmt"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profile.Load(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Height: %.0f cm  Weight: %.1f kg  Activity: %s\n", p.Height, p.Weight, p.ActivityLevel)
	if p.DietType != "" {
		fmt.Fprintf(a.out, "Diet: %s\n", p.DietType)
	}
	if len(p.Allergies) > 0 {
		fmt.Fprintf(a.out, "Allergies: %s\n", payload.JoinTags(p.Allergies))
	}
	fmt.Fprintf(a.out, "Daily targets: %d kcal, %d g protein\n", p.DailyCalories, p.DailyProteins)
	return nil
}

// EditProfile collects the physical fields and the comma-separated lists,
// saves, and prints the server-recomputed daily targets. Numeric inputs
// accept a decimal comma.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.profile.Load(ctx)
	if err != nil {
		return err
	}

	p := *current

	if err := a.promptMeasure("Height in cm", &p.Height); err != nil {
		return err
	}
	if err := a.promptMeasure("Weight in kg", &p.Weight); err != nil {
		return err
	}

	gender, err := getSimpleText(a.reader, "Gender (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if gender != "" {
		p.Gender = gender
	}

	activity, err := getSimpleText(a.reader, "Activity level (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if activity != "" {
		p.ActivityLevel = activity
	}

	allergies, err := getSimpleText(a.reader, "Allergies, comma separated (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if allergies != "" {
		p.Allergies = payload.SplitTags(allergies)
	}

	saved, err := a.profile.Save(ctx, &p)
	if err != nil {
		return err
	}
	return a.printTargets(saved)
}

// promptMeasure reads a numeric field, keeping the current value on empty
// input. "72,5" and "72.5" both parse.
func (a *App) promptMeasure(prompt string, dst *float64) error {
	raw, err := getSimpleText(a.reader, fmt.Sprintf("%s (current %.1f, leave empty to keep)", prompt, *dst), a.out)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}
	v, ok := payload.ParseNutrient(raw)
	if !ok {
		return fmt.Errorf("invalid number %q", raw)
	}
	*dst = v
	return nil
}

func (a *App) printTargets(p *models.HealthProfile) error {
	fmt.Fprintf(a.out, "Profile saved. Daily targets: %d kcal, %d g protein\n", p.DailyCalories, p.DailyProteins)
	return nil
}
