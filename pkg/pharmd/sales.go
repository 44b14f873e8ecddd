package pharmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// UploadSales sends a weekly sales CSV/Excel file to the backend, which
// updates stock, regenerates predictions and alerts from it. Only .csv and
// .xlsx names are accepted; the check runs before anything is read.
func (c *Client) UploadSales(ctx context.Context, filename string, data io.Reader) (*SalesUploadResult, error) {
	lower := strings.ToLower(filename)
	if !strings.HasSuffix(lower, ".csv") && !strings.HasSuffix(lower, ".xlsx") {
		return nil, &ValidationError{Field: "file", Message: "only CSV or Excel files allowed"}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &TransportError{Op: "upload sales", Err: err}
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, &TransportError{Op: "upload sales", Err: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &TransportError{Op: "upload sales", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/sales/upload", &buf)
	if err != nil {
		return nil, &TransportError{Op: "upload sales", Err: err}
	}
	// multipart sets its own content type with the boundary
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(req)

	raw, err := c.do(req, "upload sales")
	if err != nil {
		return nil, err
	}

	var result SalesUploadResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected sales upload response shape"}
	}
	return &result, nil
}
