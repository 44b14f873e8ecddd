package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-inventory-console/internal/dashboard"
	"pharmacy-inventory-console/internal/dashboard/usecase"
	"pharmacy-inventory-console/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockBackend implements all three dashboard repositories.
type mockBackend struct {
	mu sync.Mutex

	summary     model.AlertSummary
	alerts      []model.Alert
	predictions model.PredictionSummary

	failSummary error
	generated   int
	deleted     []int
	uploads     []string
}

func (b *mockBackend) AlertSummary(ctx context.Context) (model.AlertSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failSummary != nil {
		return model.AlertSummary{}, b.failSummary
	}
	return b.summary, nil
}

func (b *mockBackend) ListAlerts(ctx context.Context) ([]model.Alert, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]model.Alert(nil), b.alerts...), nil
}

func (b *mockBackend) GenerateAlerts(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.generated++
	b.summary.TotalAlerts++
	return nil
}

func (b *mockBackend) DeleteAlert(ctx context.Context, id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deleted = append(b.deleted, id)
	for i, a := range b.alerts {
		if a.ID == id {
			b.alerts = append(b.alerts[:i], b.alerts[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (b *mockBackend) PredictionSummary(ctx context.Context) (model.PredictionSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.predictions, nil
}

func (b *mockBackend) UploadSales(ctx context.Context, filename string, data io.Reader) (model.SalesUploadResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploads = append(b.uploads, filename)
	return model.SalesUploadResult{Message: "ok", SalesInserted: 7, StockUpdated: 3}, nil
}

func newBackend() *mockBackend {
	return &mockBackend{
		summary: model.AlertSummary{
			TotalAlerts:    4,
			LowStockAlerts: 3,
			ExpiryAlerts:   1,
			CriticalToday:  2,
		},
		alerts: []model.Alert{
			{ID: 1, MedicineID: 7, Type: model.AlertLowStock, Message: "Paracetamol is low"},
			{ID: 2, MedicineID: 9, Type: model.AlertExpiry, Message: "Aspirin expires soon"},
		},
		predictions: model.PredictionSummary{
			TotalMedicines: 12,
			Predictions: []model.Prediction{
				{MedicineName: "Paracetamol", PredictedDemand: 120, StockStatus: "Low Stock"},
			},
		},
	}
}

func TestLoadAssemblesOverview(t *testing.T) {
	backend := newBackend()
	uc := usecase.New(&mockLogger{}, backend, backend, backend)
	ctx := context.Background()

	assert.Equal(t, dashboard.StatusIdle, uc.Overview(ctx).Status)

	require.NoError(t, uc.Load(ctx))
	overview := uc.Overview(ctx)

	assert.Equal(t, dashboard.StatusReady, overview.Status)
	assert.Equal(t, dashboard.Stats{
		TotalMedicines: 12,
		LowStock:       3,
		Expiring:       1,
		TotalAlerts:    4,
	}, overview.Stats)
	assert.Len(t, overview.Alerts, 2)
	assert.Len(t, overview.Predictions, 1)
	assert.Equal(t, 2, overview.Summary.CriticalToday)
}

func TestLoadFailureIsRetryable(t *testing.T) {
	backend := newBackend()
	backend.failSummary = errors.New("backend down")
	uc := usecase.New(&mockLogger{}, backend, backend, backend)
	ctx := context.Background()

	require.Error(t, uc.Load(ctx))
	overview := uc.Overview(ctx)
	assert.Equal(t, dashboard.StatusFailed, overview.Status)
	assert.Contains(t, overview.LastError, "backend down")

	backend.failSummary = nil
	require.NoError(t, uc.Load(ctx))
	assert.Equal(t, dashboard.StatusReady, uc.Overview(ctx).Status)
}

func TestGenerateAlertsReloads(t *testing.T) {
	backend := newBackend()
	uc := usecase.New(&mockLogger{}, backend, backend, backend)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx))

	require.NoError(t, uc.GenerateAlerts(ctx))
	assert.Equal(t, 1, backend.generated)
	// the reload picked up the new total
	assert.Equal(t, 5, uc.Overview(ctx).Stats.TotalAlerts)
}

func TestDeleteAlertReloads(t *testing.T) {
	backend := newBackend()
	uc := usecase.New(&mockLogger{}, backend, backend, backend)
	ctx := context.Background()
	require.NoError(t, uc.Load(ctx))

	require.NoError(t, uc.DeleteAlert(ctx, 1))
	assert.Equal(t, []int{1}, backend.deleted)
	assert.Len(t, uc.Overview(ctx).Alerts, 1)
}

func TestUploadSalesReloads(t *testing.T) {
	backend := newBackend()
	uc := usecase.New(&mockLogger{}, backend, backend, backend)
	ctx := context.Background()

	result, err := uc.UploadSales(ctx, "sales.csv", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, 7, result.SalesInserted)
	assert.Equal(t, []string{"sales.csv"}, backend.uploads)
	assert.Equal(t, dashboard.StatusReady, uc.Overview(ctx).Status)
}
