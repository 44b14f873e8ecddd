package http

import (
	"pharmacy-inventory-console/internal/dashboard"
	"pharmacy-inventory-console/internal/model"
)

// --- Response DTOs ---

type statsResp struct {
	TotalMedicines int `json:"total_medicines"`
	LowStock       int `json:"low_stock"`
	Expiring       int `json:"expiring"`
	TotalAlerts    int `json:"total_alerts"`
}

type alertResp struct {
	ID         int    `json:"alert_id"`
	MedicineID int    `json:"medicine_id"`
	Type       string `json:"alert_type"`
	Message    string `json:"alert_message"`
	Date       string `json:"alert_date"`
}

func newAlertResp(a model.Alert) alertResp {
	return alertResp{
		ID:         a.ID,
		MedicineID: a.MedicineID,
		Type:       string(a.Type),
		Message:    a.Message,
		Date:       a.Date,
	}
}

type predictionResp struct {
	MedicineName       string   `json:"medicine_name"`
	PredictedDemand    int      `json:"predicted_demand"`
	ReorderLevel       int      `json:"reorder_level"`
	CurrentStock       int      `json:"current_stock"`
	LastActualQuantity int      `json:"last_actual_quantity"`
	StockStatus        string   `json:"stock_status"`
	PredictionDate     string   `json:"prediction_date"`
	PercentageChange   *float64 `json:"percentage_change"`
	TrendSummary       string   `json:"demand_trend_summary"`
}

type overviewResp struct {
	Stats         statsResp        `json:"stats"`
	CriticalToday int              `json:"critical_alerts_today"`
	Alerts        []alertResp      `json:"alerts"`
	Predictions   []predictionResp `json:"predictions"`
	Status        string           `json:"status"`
	LastError     string           `json:"last_error,omitempty"`
}

func newOverviewResp(o dashboard.Overview) overviewResp {
	alerts := make([]alertResp, len(o.Alerts))
	for i, a := range o.Alerts {
		alerts[i] = newAlertResp(a)
	}

	predictions := make([]predictionResp, len(o.Predictions))
	for i, p := range o.Predictions {
		predictions[i] = predictionResp{
			MedicineName:       p.MedicineName,
			PredictedDemand:    p.PredictedDemand,
			ReorderLevel:       p.ReorderLevel,
			CurrentStock:       p.CurrentStock,
			LastActualQuantity: p.LastActualQuantity,
			StockStatus:        p.StockStatus,
			PredictionDate:     p.PredictionDate,
			PercentageChange:   p.PercentageChange,
			TrendSummary:       p.TrendSummary,
		}
	}

	return overviewResp{
		Stats: statsResp{
			TotalMedicines: o.Stats.TotalMedicines,
			LowStock:       o.Stats.LowStock,
			Expiring:       o.Stats.Expiring,
			TotalAlerts:    o.Stats.TotalAlerts,
		},
		CriticalToday: o.Summary.CriticalToday,
		Alerts:        alerts,
		Predictions:   predictions,
		Status:        string(o.Status),
		LastError:     o.LastError,
	}
}

type uploadResp struct {
	Message       string   `json:"message"`
	SalesInserted int      `json:"sales_inserted"`
	StockUpdated  int      `json:"stock_updated"`
	Skipped       []string `json:"skipped,omitempty"`
}

func newUploadResp(r model.SalesUploadResult) uploadResp {
	return uploadResp{
		Message:       r.Message,
		SalesInserted: r.SalesInserted,
		StockUpdated:  r.StockUpdated,
		Skipped:       r.Skipped,
	}
}
