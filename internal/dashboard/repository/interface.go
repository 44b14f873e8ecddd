package repository

import (
	"context"
	"io"

	"pharmacy-inventory-console/internal/model"
)

// AlertRepository is the interface for alert data access against the
// backend.
type AlertRepository interface {
	AlertSummary(ctx context.Context) (model.AlertSummary, error)
	ListAlerts(ctx context.Context) ([]model.Alert, error)
	GenerateAlerts(ctx context.Context) error
	DeleteAlert(ctx context.Context, id int) error
}

// PredictionRepository serves the precomputed demand predictions.
type PredictionRepository interface {
	PredictionSummary(ctx context.Context) (model.PredictionSummary, error)
}

// SalesRepository uploads weekly sales files.
type SalesRepository interface {
	UploadSales(ctx context.Context, filename string, data io.Reader) (model.SalesUploadResult, error)
}
