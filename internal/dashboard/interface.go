package dashboard

import (
	"context"
	"io"

	"pharmacy-inventory-console/internal/model"
)

// UseCase defines the business logic interface for the dashboard domain.
type UseCase interface {
	// Load fetches alert summary, alert list and predictions
	// concurrently and assembles the overview. Retries from Failed.
	Load(ctx context.Context) error

	// Overview returns the last assembled overview.
	Overview(ctx context.Context) Overview

	// GenerateAlerts asks the backend to regenerate alerts, then reloads.
	GenerateAlerts(ctx context.Context) error

	// DeleteAlert dismisses one alert, then reloads.
	DeleteAlert(ctx context.Context, id int) error

	// UploadSales forwards a weekly sales file to the backend, then
	// reloads: an upload changes stock, predictions and alerts.
	UploadSales(ctx context.Context, filename string, data io.Reader) (model.SalesUploadResult, error)
}
