package dashboard

import "pharmacy-inventory-console/internal/model"

// Status is the dashboard's load state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// Stats are the four headline numbers at the top of the dashboard.
type Stats struct {
	TotalMedicines int
	LowStock       int
	Expiring       int
	TotalAlerts    int
}

// Overview is everything the dashboard renders at once.
type Overview struct {
	Stats       Stats
	Summary     model.AlertSummary
	Alerts      []model.Alert
	Predictions []model.Prediction

	Status    Status
	LastError string
}
