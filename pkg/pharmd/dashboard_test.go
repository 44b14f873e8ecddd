package pharmd_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pharmacy-inventory-console/pkg/pharmd"
)

func TestDashboardEndpoints(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/alerts/summary", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("_t") == "" {
			t.Errorf("missing cache buster on alert summary")
		}
		w.Write([]byte(`{
			"summary": {"total_alerts": 5, "low_stock_alerts": 3, "expiry_alerts": 2, "critical_alerts_today": 3},
			"recent_alerts": [
				{"alert_id": 1, "medicine_id": 7, "alert_type": "low_stock", "alert_message": "Paracetamol is low", "alert_date": "2025-08-30T10:00:00Z"}
			]
		}`))
	})

	mux.HandleFunc("/api/alerts/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"alert_id": 1, "medicine_id": 7, "alert_type": "low_stock", "alert_message": "Paracetamol is low", "alert_date": "2025-08-30T10:00:00Z"},
			{"alert_id": 2, "medicine_id": 9, "alert_type": "expiry", "alert_message": "Aspirin expires soon", "alert_date": "2025-08-29T09:00:00Z"}
		]`))
	})

	var generated bool
	mux.HandleFunc("/api/alerts/generate", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		generated = true
		w.Write([]byte(`{"message": "alerts generated", "summary": {}}`))
	})

	mux.HandleFunc("/api/predictions/summary", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"total_medicines": 2,
			"predictions": [
				{"medicine_name": "Paracetamol", "predicted_demand": 120, "reorder_level": 30,
				 "current_stock": 12, "last_actual_quantity": 100, "stock_status": "Low Stock",
				 "prediction_date": "2025-08-25", "percentage_change": 20.0,
				 "demand_trend_summary": "The demand for Paracetamol is expected to increase by 20%."},
				{"medicine_name": "Aspirin", "predicted_demand": 40, "reorder_level": 15,
				 "current_stock": 60, "last_actual_quantity": 0, "stock_status": "Adequate",
				 "prediction_date": "2025-08-25", "percentage_change": null,
				 "demand_trend_summary": "Insufficient data to calculate demand trend."}
			]
		}`))
	})

	mux.HandleFunc("/api/sales/upload", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		f, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer f.Close()
		if header.Filename != "sales.csv" {
			t.Errorf("unexpected filename %q", header.Filename)
		}
		w.Write([]byte(`{"message": "ok", "sales_inserted": 12, "stock_updated": 4, "skipped": ["Unknown Med"]}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := newTestClient(t, ts.URL)
	ctx := context.Background()

	t.Run("AlertSummary", func(t *testing.T) {
		summary, err := client.AlertSummary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.Summary.TotalAlerts != 5 || summary.Summary.LowStockAlerts != 3 {
			t.Errorf("unexpected summary: %+v", summary.Summary)
		}
		if len(summary.RecentAlerts) != 1 {
			t.Errorf("expected 1 recent alert, got %d", len(summary.RecentAlerts))
		}
	})

	t.Run("ListAlerts", func(t *testing.T) {
		alerts, err := client.ListAlerts(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(alerts) != 2 || alerts[1].AlertType != "expiry" {
			t.Errorf("unexpected alerts: %+v", alerts)
		}
	})

	t.Run("GenerateAlerts", func(t *testing.T) {
		if err := client.GenerateAlerts(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !generated {
			t.Errorf("generate endpoint not hit")
		}
	})

	t.Run("PredictionSummary", func(t *testing.T) {
		summary, err := client.PredictionSummary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.TotalMedicines != 2 || len(summary.Predictions) != 2 {
			t.Fatalf("unexpected summary: %+v", summary)
		}
		if summary.Predictions[0].PercentageChange == nil || *summary.Predictions[0].PercentageChange != 20.0 {
			t.Errorf("expected 20%% change on first prediction")
		}
		if summary.Predictions[1].PercentageChange != nil {
			t.Errorf("expected null change on second prediction")
		}
	})

	t.Run("UploadSales", func(t *testing.T) {
		result, err := client.UploadSales(ctx, "sales.csv", strings.NewReader("Product_Name,Week,Year,Week_Number,Total_Quantity\n"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.SalesInserted != 12 || result.StockUpdated != 4 {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("UploadSales Bad Extension", func(t *testing.T) {
		_, err := client.UploadSales(ctx, "sales.pdf", strings.NewReader("x"))
		if !pharmd.IsValidation(err) {
			t.Errorf("expected ValidationError for .pdf, got %v", err)
		}
	})
}
