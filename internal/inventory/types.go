package inventory

import (
	"time"

	"pharmacy-inventory-console/internal/model"
)

// Status is the controller's load state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// SortKey selects the column the medicine list is ordered by.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByPrice  SortKey = "price"
	SortByStock  SortKey = "stock"
	SortByExpiry SortKey = "expiry"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortByName, SortByPrice, SortByStock, SortByExpiry:
		return SortKey(s), nil
	}
	return "", ErrInvalidSortKey
}

// CreateInput is the input for creating a medicine. Pointer fields
// distinguish "not provided" (a default applies) from an explicit zero.
type CreateInput struct {
	Name         string
	BatchNo      string
	UnitPrice    float64
	SafetyStock  *int // default 10
	LeadTimeDays *int // default 7
	ExpiryDate   string
	InitialStock *int // default 0

	Category     string
	Manufacturer string
	Description  string
}

// UpdateInput carries partial field changes; nil pointers are untouched.
type UpdateInput struct {
	Name         *string
	BatchNo      *string
	UnitPrice    *float64
	SafetyStock  *int
	LeadTimeDays *int
	ExpiryDate   *string
	CurrentStock *int
	Category     *string
	Manufacturer *string
	Description  *string
}

// AdjustStockInput is the input for a manual stock adjustment.
type AdjustStockInput struct {
	MedicineID int
	Delta      int
	Reason     string
}

// Notification is a transient per-mutation message. Each one clears
// itself after the controller's TTL.
type Notification struct {
	ID        string    `json:"id"`
	Level     string    `json:"level"` // "success" or "error"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// ViewOutput is the derived page the UI renders: the visible slice of the
// snapshot plus everything needed to draw pagination and sort controls.
type ViewOutput struct {
	Rows       []model.Medicine
	Query      string
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
	SortKey    SortKey
	SortDesc   bool
	Status     Status
	LastError  string
}
