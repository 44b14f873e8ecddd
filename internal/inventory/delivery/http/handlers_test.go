package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-inventory-console/internal/inventory"
	invHTTP "pharmacy-inventory-console/internal/inventory/delivery/http"
	"pharmacy-inventory-console/internal/middleware"
	"pharmacy-inventory-console/internal/model"
	"pharmacy-inventory-console/internal/session"
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

type mockUseCase struct {
	view       inventory.ViewOutput
	refreshErr error
	deleteErr  error
	adjustOut  model.Medicine
	adjustErr  error

	lastQuery string
	lastPage  int
	lastSort  inventory.SortKey
}

func (m *mockUseCase) Refresh(ctx context.Context) error { return m.refreshErr }
func (m *mockUseCase) View(ctx context.Context) inventory.ViewOutput {
	return m.view
}
func (m *mockUseCase) SetQuery(ctx context.Context, query string) inventory.ViewOutput {
	m.lastQuery = query
	return m.view
}
func (m *mockUseCase) SetPage(ctx context.Context, page int) (inventory.ViewOutput, error) {
	if page < 1 {
		return inventory.ViewOutput{}, inventory.ErrInvalidPage
	}
	m.lastPage = page
	return m.view, nil
}
func (m *mockUseCase) SetSort(ctx context.Context, key inventory.SortKey) inventory.ViewOutput {
	m.lastSort = key
	return m.view
}
func (m *mockUseCase) Create(ctx context.Context, input inventory.CreateInput) (model.Medicine, error) {
	return model.Medicine{ID: 9, Name: input.Name}, nil
}
func (m *mockUseCase) Update(ctx context.Context, id int, input inventory.UpdateInput) (model.Medicine, error) {
	return model.Medicine{ID: id}, nil
}
func (m *mockUseCase) Delete(ctx context.Context, id int) error { return m.deleteErr }
func (m *mockUseCase) AdjustStock(ctx context.Context, input inventory.AdjustStockInput) (model.Medicine, error) {
	return m.adjustOut, m.adjustErr
}
func (m *mockUseCase) Notifications(ctx context.Context) []inventory.Notification {
	return []inventory.Notification{{
		ID:        "n-1",
		Level:     inventory.NotificationSuccess,
		Message:   "Added Paracetamol",
		CreatedAt: time.Date(2025, 3, 9, 8, 15, 0, 0, time.Local),
	}}
}

func newRouter(t *testing.T, uc inventory.UseCase, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	sess := session.New(filepath.Join(t.TempDir(), "token.json"))
	if authenticated {
		require.NoError(t, sess.Set("tok-123", "alice@pharmacy.local"))
	}
	mw := middleware.New(&mockLogger{}, sess, 0)

	r := gin.New()
	h := invHTTP.New(&mockLogger{}, uc)
	invHTTP.RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoutesAreGated(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(t, uc, false)

	w := doJSON(r, http.MethodGet, "/api/v1/inventory/view", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/v1/inventory/medicines", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestViewEnvelope(t *testing.T) {
	uc := &mockUseCase{view: inventory.ViewOutput{
		Rows:       []model.Medicine{{ID: 1, Name: "Paracetamol", CurrentStock: 40}},
		Page:       1,
		PageSize:   10,
		TotalPages: 1,
		TotalItems: 1,
		SortKey:    inventory.SortByName,
		Status:     inventory.StatusReady,
	}}
	r := newRouter(t, uc, true)

	w := doJSON(r, http.MethodGet, "/api/v1/inventory/view", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ErrorCode int    `json:"error_code"`
		Message   string `json:"message"`
		Data      struct {
			Rows   []map[string]any `json:"rows"`
			Status string           `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ErrorCode)
	assert.Equal(t, "ready", resp.Data.Status)
	require.Len(t, resp.Data.Rows, 1)
	assert.Equal(t, "Paracetamol", resp.Data.Rows[0]["medicine_name"])
}

func TestSetSortValidation(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(t, uc, true)

	w := doJSON(r, http.MethodPut, "/api/v1/inventory/sort", gin.H{"key": "price"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, inventory.SortByPrice, uc.lastSort)

	w = doJSON(r, http.MethodPut, "/api/v1/inventory/sort", gin.H{"key": "potency"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIDParamValidation(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(t, uc, true)

	w := doJSON(r, http.MethodDelete, "/api/v1/inventory/medicines/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/v1/inventory/medicines/3", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdjustStockErrorMapping(t *testing.T) {
	uc := &mockUseCase{adjustErr: inventory.ErrInsufficientStock}
	r := newRouter(t, uc, true)

	w := doJSON(r, http.MethodPost, "/api/v1/inventory/medicines/1/adjust", gin.H{"delta": -99, "reason": "damaged"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	uc.adjustErr = inventory.ErrOperationPending
	w = doJSON(r, http.MethodPost, "/api/v1/inventory/medicines/1/adjust", gin.H{"delta": 5, "reason": "recount"})
	assert.Equal(t, http.StatusConflict, w.Code)

	uc.adjustErr = nil
	uc.adjustOut = model.Medicine{ID: 1, Name: "Paracetamol", CurrentStock: 25}
	w = doJSON(r, http.MethodPost, "/api/v1/inventory/medicines/1/adjust", gin.H{"delta": -15, "reason": "expired"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"current_stock":25`)
}

func TestNotificationsEndpoint(t *testing.T) {
	uc := &mockUseCase{}
	r := newRouter(t, uc, true)

	w := doJSON(r, http.MethodGet, "/api/v1/inventory/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Added Paracetamol")
	assert.Contains(t, w.Body.String(), `"created_at":"2025-03-09 08:15:00"`)
}
