package services

import (
	"context"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
	"github.com/dznutri/dznutri/internal/reconcile"
)

// Moderation drives the admin submission dashboard. The pending view is
// reconciled locally after each action; a refetch only happens on an
// explicit Refresh.
type Moderation struct {
	client api.Client
	logger logging.Logger
	list   *reconcile.List[models.Submission]
}

func NewModeration(client api.Client, logger logging.Logger) *Moderation {
	return &Moderation{
		client: client,
		logger: logger,
		list:   reconcile.NewList(func(s models.Submission) int64 { return s.ID }),
	}
}

// Refresh loads the submissions with the given status into the local view.
func (m *Moderation) Refresh(ctx context.Context, status string) ([]models.Submission, error) {
	epoch := m.list.Begin()
	list, err := m.client.Submissions(ctx, status)
	if err != nil {
		return nil, err
	}
	m.list.Replace(epoch, list.Submissions)
	return m.list.Items(), nil
}

func (m *Moderation) Submissions() []models.Submission {
	return m.list.Items()
}

func (m *Moderation) Invalidate() {
	m.list.Invalidate()
}

// Approve publishes a submission with the moderator's edit (nil approves it
// as submitted) and drops it from the local view on success. An id already
// absent from the view is a no-op: no second network call is issued for a
// submission that was already acted on.
func (m *Moderation) Approve(ctx context.Context, id int64, edit *payload.ProductEdit) error {
	if !m.list.Contains(id) {
		return nil
	}
	if err := m.client.ApproveSubmission(ctx, id, edit); err != nil {
		return err
	}
	m.list.Remove(id)
	return nil
}

// Reject mirrors Approve.
func (m *Moderation) Reject(ctx context.Context, id int64) error {
	if !m.list.Contains(id) {
		return nil
	}
	if err := m.client.RejectSubmission(ctx, id); err != nil {
		return err
	}
	m.list.Remove(id)
	return nil
}

// Counts fetches the per-status totals for the dashboard header, one
// independent call per status. A status whose fetch failed is missing from
// the map and the dashboard keeps its previous number.
func (m *Moderation) Counts(ctx context.Context) map[string]int {
	statuses := []string{models.StatusPending, models.StatusApproved, models.StatusRejected}
	return reconcile.Counts(ctx, statuses, func(ctx context.Context, status string) (int, error) {
		list, err := m.client.Submissions(ctx, status)
		if err != nil {
			return 0, err
		}
		return list.Count, nil
	}, m.logger)
}

// EditFromSubmission prefills a moderator edit form from the submission's
// OCR-extracted data.
func EditFromSubmission(s *models.Submission) *payload.ProductEdit {
	edit := &payload.ProductEdit{
		ProductName:     s.ProductName,
		Brand:           s.Brand,
		IngredientsText: s.OCRIngredientsText,
		AdditivesTags:   append([]string(nil), s.FoundAdditives...),
		Nutriments:      make(map[string]float64, len(payload.NutrimentKeys)),
	}
	for _, key := range payload.NutrimentKeys {
		edit.Nutriments[key] = s.ParsedNutriments[key]
	}
	return edit
}

// Profile returns the moderator account for the dashboard header.
func (m *Moderation) Profile(ctx context.Context) (*models.User, error) {
	return m.client.AdminProfile(ctx)
}
