package usecase

import (
	"context"
	"sync"

	"pharmacy-inventory-console/internal/dashboard"
	"pharmacy-inventory-console/internal/model"
)

func (uc *implUseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	uc.overview.Status = dashboard.StatusLoading
	uc.mu.Unlock()

	// The three reads are independent; fetch them in parallel and fail
	// the whole load if any one of them fails.
	var (
		wg sync.WaitGroup

		summary    model.AlertSummary
		alerts     []model.Alert
		prediction model.PredictionSummary

		summaryErr, alertsErr, predictionErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		summary, summaryErr = uc.alerts.AlertSummary(ctx)
	}()
	go func() {
		defer wg.Done()
		alerts, alertsErr = uc.alerts.ListAlerts(ctx)
	}()
	go func() {
		defer wg.Done()
		prediction, predictionErr = uc.predictions.PredictionSummary(ctx)
	}()
	wg.Wait()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, err := range []error{summaryErr, alertsErr, predictionErr} {
		if err != nil {
			uc.l.Warnf(ctx, "dashboard: load failed: %v", err)
			uc.overview.Status = dashboard.StatusFailed
			uc.overview.LastError = err.Error()
			return err
		}
	}

	uc.overview = dashboard.Overview{
		Stats: dashboard.Stats{
			TotalMedicines: prediction.TotalMedicines,
			LowStock:       summary.LowStockAlerts,
			Expiring:       summary.ExpiryAlerts,
			TotalAlerts:    summary.TotalAlerts,
		},
		Summary:     summary,
		Alerts:      alerts,
		Predictions: prediction.Predictions,
		Status:      dashboard.StatusReady,
	}
	return nil
}

func (uc *implUseCase) Overview(ctx context.Context) dashboard.Overview {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := uc.overview
	out.Alerts = append([]model.Alert(nil), uc.overview.Alerts...)
	out.Predictions = append([]model.Prediction(nil), uc.overview.Predictions...)
	return out
}
