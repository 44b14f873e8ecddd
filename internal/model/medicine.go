package model

// Medicine is an inventory record as the backend stores it. The backend is
// the source of truth; this struct is the full local view of one row.
type Medicine struct {
	ID           int     // medicine_id
	Name         string  // medicine_name
	BatchNo      string  // batch_no
	UnitPrice    float64 // unit_price
	SafetyStock  int     // safety_stock
	LeadTimeDays int     // lead_time_days
	ExpiryDate   string  // expiry_date, ISO date (2006-01-02)
	CurrentStock int     // current_stock

	// Optional catalogue fields. Older backend rows omit them; search
	// treats an absent value as a non-match, nothing more.
	Category     string
	Manufacturer string
	Description  string

	// Read-only fields maintained by the backend.
	LastActualQuantity int
	CreatedAt          string
	LastUpdated        string
}
