package model

// AlertType distinguishes the two alert classes the backend generates.
type AlertType string

const (
	AlertLowStock AlertType = "low_stock"
	AlertExpiry   AlertType = "expiry"
)

// Alert is one active backend alert.
type Alert struct {
	ID         int
	MedicineID int
	Type       AlertType
	Message    string
	Date       string // RFC3339 timestamp from the backend
}

// AlertSummary is the dashboard's aggregate alert view.
type AlertSummary struct {
	TotalAlerts    int
	LowStockAlerts int
	ExpiryAlerts   int
	CriticalToday  int
	RecentAlerts   []Alert
}
