package pharmd

// Medicine is the backend's medicine record. Field names are the wire
// contract; do not rename.
type Medicine struct {
	MedicineID   int     `json:"medicine_id"`
	MedicineName string  `json:"medicine_name"`
	BatchNo      string  `json:"batch_no"`
	UnitPrice    float64 `json:"unit_price"`
	SafetyStock  int     `json:"safety_stock"`
	LeadTimeDays int     `json:"lead_time_days"`
	ExpiryDate   string  `json:"expiry_date"`
	CurrentStock int     `json:"current_stock"`

	Category     string `json:"category,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	Description  string `json:"description,omitempty"`

	LastActualQuantity int    `json:"last_actual_quantity,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
	LastUpdated        string `json:"last_updated,omitempty"`
}

// CreateMedicineInput is the client-side create payload. Pointer fields
// distinguish "absent" (backend-visible default applied locally) from an
// explicit zero.
type CreateMedicineInput struct {
	MedicineName string
	BatchNo      string
	UnitPrice    float64
	SafetyStock  *int // default 10
	LeadTimeDays *int // default 7
	ExpiryDate   string
	CurrentStock *int // default 0

	Category     string
	Manufacturer string
	Description  string
}

// UpdateMedicineInput carries full or partial field changes. Nil pointers
// are omitted from the request body.
type UpdateMedicineInput struct {
	MedicineName *string  `json:"medicine_name,omitempty"`
	BatchNo      *string  `json:"batch_no,omitempty"`
	UnitPrice    *float64 `json:"unit_price,omitempty"`
	SafetyStock  *int     `json:"safety_stock,omitempty"`
	LeadTimeDays *int     `json:"lead_time_days,omitempty"`
	ExpiryDate   *string  `json:"expiry_date,omitempty"`
	CurrentStock *int     `json:"current_stock,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

// Alert is one backend alert row.
type Alert struct {
	AlertID      int    `json:"alert_id"`
	MedicineID   int    `json:"medicine_id"`
	AlertType    string `json:"alert_type"`
	AlertMessage string `json:"alert_message"`
	AlertDate    string `json:"alert_date"`
}

// AlertSummary is the GET /api/alerts/summary payload.
type AlertSummary struct {
	Summary struct {
		TotalAlerts         int `json:"total_alerts"`
		LowStockAlerts      int `json:"low_stock_alerts"`
		ExpiryAlerts        int `json:"expiry_alerts"`
		CriticalAlertsToday int `json:"critical_alerts_today"`
	} `json:"summary"`
	RecentAlerts []Alert `json:"recent_alerts"`
}

// Prediction is one row of the dashboard prediction summary.
type Prediction struct {
	MedicineName       string   `json:"medicine_name"`
	PredictedDemand    int      `json:"predicted_demand"`
	ReorderLevel       int      `json:"reorder_level"`
	CurrentStock       int      `json:"current_stock"`
	LastActualQuantity int      `json:"last_actual_quantity"`
	StockStatus        string   `json:"stock_status"`
	PredictionDate     string   `json:"prediction_date"`
	PercentageChange   *float64 `json:"percentage_change"`
	DemandTrendSummary string   `json:"demand_trend_summary"`
}

// PredictionSummary is the GET /api/predictions/summary payload.
type PredictionSummary struct {
	TotalMedicines int          `json:"total_medicines"`
	Predictions    []Prediction `json:"predictions"`
}

// SalesUploadResult reports what POST /api/sales/upload changed.
type SalesUploadResult struct {
	Message       string   `json:"message"`
	SalesInserted int      `json:"sales_inserted"`
	StockUpdated  int      `json:"stock_updated"`
	Skipped       []string `json:"skipped"`
}

// AuthUser is the backend's login/signup response.
type AuthUser struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
