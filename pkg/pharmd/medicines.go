package pharmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Defaults applied to absent create fields before the request is built.
const (
	DefaultSafetyStock  = 10
	DefaultLeadTimeDays = 7
	DefaultInitialStock = 0
)

// ListMedicines fetches the entire remote collection. The client
// re-paginates locally, so no server-side paging parameters are sent.
// The documented response shape is a bare JSON array; anything else is a
// ServerError, never probed for alternate envelopes.
func (c *Client) ListMedicines(ctx context.Context) ([]Medicine, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/medicines/", nil, true)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "list medicines")
	if err != nil {
		return nil, err
	}

	var medicines []Medicine
	if err := json.Unmarshal(raw, &medicines); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected medicine list response shape"}
	}
	return medicines, nil
}

// GetMedicine fetches a single medicine by id.
func (c *Client) GetMedicine(ctx context.Context, id int) (*Medicine, error) {
	req, err := c.newRequest(ctx, http.MethodGet, fmt.Sprintf("/medicines/%d", id), nil, true)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "get medicine")
	if err != nil {
		return nil, asNotFound(err, "medicine", id)
	}

	var m Medicine
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected medicine response shape"}
	}
	return &m, nil
}

// CreateMedicine validates input locally, applies defaults, and submits a
// new medicine. Constraint violations fail fast with ValidationError
// before any request is sent.
func (c *Client) CreateMedicine(ctx context.Context, input CreateMedicineInput) (*Medicine, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	body := Medicine{
		MedicineName: strings.TrimSpace(input.MedicineName),
		BatchNo:      strings.TrimSpace(input.BatchNo),
		UnitPrice:    input.UnitPrice,
		SafetyStock:  valueOr(input.SafetyStock, DefaultSafetyStock),
		LeadTimeDays: valueOr(input.LeadTimeDays, DefaultLeadTimeDays),
		ExpiryDate:   input.ExpiryDate,
		CurrentStock: valueOr(input.CurrentStock, DefaultInitialStock),
		Category:     input.Category,
		Manufacturer: input.Manufacturer,
		Description:  input.Description,
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/medicines/", body, false)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "create medicine")
	if err != nil {
		return nil, err
	}

	var m Medicine
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected create response shape"}
	}
	return &m, nil
}

// UpdateMedicine submits full or partial field changes for an existing
// medicine.
func (c *Client) UpdateMedicine(ctx context.Context, id int, input UpdateMedicineInput) (*Medicine, error) {
	req, err := c.newRequest(ctx, http.MethodPut, fmt.Sprintf("/medicines/%d", id), input, false)
	if err != nil {
		return nil, err
	}

	raw, err := c.do(req, "update medicine")
	if err != nil {
		return nil, asNotFound(err, "medicine", id)
	}

	var m Medicine
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, &ServerError{Status: http.StatusOK, Message: "unexpected update response shape"}
	}
	return &m, nil
}

// DeleteMedicine removes a medicine. The backend may answer with the
// deleted record or with an empty body; both are success.
func (c *Client) DeleteMedicine(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/medicines/%d", id), nil, false)
	if err != nil {
		return err
	}

	if _, err := c.do(req, "delete medicine"); err != nil {
		return asNotFound(err, "medicine", id)
	}
	return nil
}

// AdjustStock is a read-modify-write: it fetches the current quantity,
// applies delta, and persists the result. The new quantity is validated
// locally before the mutating request goes out. There is no server-side
// atomicity, so concurrent adjustments from different clients can lose
// updates; callers that saw a fresher quantity should pre-check first.
func (c *Client) AdjustStock(ctx context.Context, id, delta int, reason string) (*Medicine, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, &ValidationError{Field: "reason", Message: "adjustment reason is required"}
	}

	current, err := c.GetMedicine(ctx, id)
	if err != nil {
		return nil, err
	}

	newQty := current.CurrentStock + delta
	if newQty < 0 {
		return nil, &ValidationError{Field: "current_stock", Message: "stock quantity cannot be negative"}
	}

	return c.UpdateMedicine(ctx, id, UpdateMedicineInput{CurrentStock: &newQty})
}

func validateCreate(input CreateMedicineInput) error {
	if strings.TrimSpace(input.MedicineName) == "" {
		return &ValidationError{Field: "medicine_name", Message: "name is required"}
	}
	if strings.TrimSpace(input.BatchNo) == "" {
		return &ValidationError{Field: "batch_no", Message: "batch number is required"}
	}
	if input.UnitPrice <= 0 {
		return &ValidationError{Field: "unit_price", Message: "unit price must be greater than zero"}
	}
	if input.SafetyStock != nil && *input.SafetyStock < 0 {
		return &ValidationError{Field: "safety_stock", Message: "safety stock cannot be negative"}
	}
	if input.LeadTimeDays != nil && *input.LeadTimeDays < 0 {
		return &ValidationError{Field: "lead_time_days", Message: "lead time cannot be negative"}
	}
	if strings.TrimSpace(input.ExpiryDate) == "" {
		return &ValidationError{Field: "expiry_date", Message: "expiry date is required"}
	}
	if input.CurrentStock != nil && *input.CurrentStock < 0 {
		return &ValidationError{Field: "current_stock", Message: "initial stock cannot be negative"}
	}
	return nil
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
