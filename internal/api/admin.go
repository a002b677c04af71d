package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

// Submissions lists submissions, optionally filtered by status. An empty
// status returns every submission.
func (c *HTTPClient) Submissions(ctx context.Context, status string) (*models.SubmissionList, error) {
	path := "/api/admin/submissions"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var list models.SubmissionList
	if err := c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ApproveSubmission publishes a submission as a product. The edit carries
// the moderator's corrections; nil approves the submission as-is.
func (c *HTTPClient) ApproveSubmission(ctx context.Context, id int64, edit *payload.ProductEdit) error {
	path := "/api/admin/submissions/" + strconv.FormatInt(id, 10) + "/approve"
	if edit == nil {
		return c.sendJSON(ctx, http.MethodPost, path, nil, nil)
	}
	return c.sendJSON(ctx, http.MethodPost, path, edit, nil)
}

func (c *HTTPClient) RejectSubmission(ctx context.Context, id int64) error {
	path := "/api/admin/submissions/" + strconv.FormatInt(id, 10) + "/reject"
	return c.sendJSON(ctx, http.MethodPost, path, nil, nil)
}

// AdminProfile returns the authenticated moderator's account, shown in the
// dashboard header.
func (c *HTTPClient) AdminProfile(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, "/api/admin/profile", &u); err != nil {
		return nil, err
	}
	return &u, nil
}
