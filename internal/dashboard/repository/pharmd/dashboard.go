package pharmd

import (
	"context"
	"io"

	"pharmacy-inventory-console/internal/dashboard/repository"
	"pharmacy-inventory-console/internal/model"
	pkgLog "pharmacy-inventory-console/pkg/log"
	"pharmacy-inventory-console/pkg/pharmd"
)

type implRepository struct {
	client *pharmd.Client
	l      pkgLog.Logger
}

// New creates a dashboard repository backed by the pharmacy backend. The
// one implementation serves all three repository interfaces.
func New(client *pharmd.Client, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

var (
	_ repository.AlertRepository      = (*implRepository)(nil)
	_ repository.PredictionRepository = (*implRepository)(nil)
	_ repository.SalesRepository      = (*implRepository)(nil)
)

func (r *implRepository) AlertSummary(ctx context.Context) (model.AlertSummary, error) {
	wire, err := r.client.AlertSummary(ctx)
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: alert summary: %v", err)
		return model.AlertSummary{}, err
	}

	summary := model.AlertSummary{
		TotalAlerts:    wire.Summary.TotalAlerts,
		LowStockAlerts: wire.Summary.LowStockAlerts,
		ExpiryAlerts:   wire.Summary.ExpiryAlerts,
		CriticalToday:  wire.Summary.CriticalAlertsToday,
	}
	for _, a := range wire.RecentAlerts {
		summary.RecentAlerts = append(summary.RecentAlerts, toAlert(a))
	}
	return summary, nil
}

func (r *implRepository) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	wire, err := r.client.ListAlerts(ctx)
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: list alerts: %v", err)
		return nil, err
	}

	alerts := make([]model.Alert, 0, len(wire))
	for _, a := range wire {
		alerts = append(alerts, toAlert(a))
	}
	return alerts, nil
}

func (r *implRepository) GenerateAlerts(ctx context.Context) error {
	if err := r.client.GenerateAlerts(ctx); err != nil {
		r.l.Errorf(ctx, "pharmd repository: generate alerts: %v", err)
		return err
	}
	return nil
}

func (r *implRepository) DeleteAlert(ctx context.Context, id int) error {
	if err := r.client.DeleteAlert(ctx, id); err != nil {
		r.l.Errorf(ctx, "pharmd repository: delete alert %d: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) PredictionSummary(ctx context.Context) (model.PredictionSummary, error) {
	wire, err := r.client.PredictionSummary(ctx)
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: prediction summary: %v", err)
		return model.PredictionSummary{}, err
	}

	summary := model.PredictionSummary{TotalMedicines: wire.TotalMedicines}
	for _, p := range wire.Predictions {
		summary.Predictions = append(summary.Predictions, model.Prediction{
			MedicineName:       p.MedicineName,
			PredictedDemand:    p.PredictedDemand,
			ReorderLevel:       p.ReorderLevel,
			CurrentStock:       p.CurrentStock,
			LastActualQuantity: p.LastActualQuantity,
			StockStatus:        p.StockStatus,
			PredictionDate:     p.PredictionDate,
			PercentageChange:   p.PercentageChange,
			TrendSummary:       p.DemandTrendSummary,
		})
	}
	return summary, nil
}

func (r *implRepository) UploadSales(ctx context.Context, filename string, data io.Reader) (model.SalesUploadResult, error) {
	wire, err := r.client.UploadSales(ctx, filename, data)
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: upload sales %q: %v", filename, err)
		return model.SalesUploadResult{}, err
	}

	return model.SalesUploadResult{
		Message:       wire.Message,
		SalesInserted: wire.SalesInserted,
		StockUpdated:  wire.StockUpdated,
		Skipped:       wire.Skipped,
	}, nil
}

func toAlert(a pharmd.Alert) model.Alert {
	return model.Alert{
		ID:         a.AlertID,
		MedicineID: a.MedicineID,
		Type:       model.AlertType(a.AlertType),
		Message:    a.AlertMessage,
		Date:       a.AlertDate,
	}
}
