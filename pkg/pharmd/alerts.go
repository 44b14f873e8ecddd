package pharmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AlertSummary fetches the aggregate alert counts for the dashboard.
func (c *Client) AlertSummary(ctx context.Context) (*AlertSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/alerts/summary", nil, true)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "alert summary")
	if err != nil {
		return nil, err
	}

	var summary AlertSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected alert summary response shape"}
	}
	return &summary, nil
}

// ListAlerts fetches all active alerts. The documented shape is a bare
// JSON array.
func (c *Client) ListAlerts(ctx context.Context) ([]Alert, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/alerts/", nil, true)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "list alerts")
	if err != nil {
		return nil, err
	}

	var alerts []Alert
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected alert list response shape"}
	}
	return alerts, nil
}

// GenerateAlerts asks the backend to regenerate low-stock and expiry
// alerts from current data.
func (c *Client) GenerateAlerts(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/alerts/generate", nil, false)
	if err != nil {
		return err
	}

	_, err = c.do(req, "generate alerts")
	return err
}

// DeleteAlert removes a single alert.
func (c *Client) DeleteAlert(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/api/alerts/%d", id), nil, false)
	if err != nil {
		return err
	}

	if _, err := c.do(req, "delete alert"); err != nil {
		return asNotFound(err, "alert", id)
	}
	return nil
}
