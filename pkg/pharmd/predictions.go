package pharmd

import (
	"context"
	"encoding/json"
	"net/http"
)

// PredictionSummary fetches the latest demand predictions for every
// medicine. The documented shape is the bare summary object.
func (c *Client) PredictionSummary(ctx context.Context) (*PredictionSummary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/predictions/summary", nil, true)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "prediction summary")
	if err != nil {
		return nil, err
	}

	var summary PredictionSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected prediction summary response shape"}
	}
	return &summary, nil
}
