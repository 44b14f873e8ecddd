package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-inventory-console/internal/auth"
	"pharmacy-inventory-console/internal/auth/usecase"
	"pharmacy-inventory-console/internal/session"
	"pharmacy-inventory-console/pkg/pharmd"
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

func newBackend(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail": "invalid credentials"}`))
			return
		}
		w.Write([]byte(`{"id": 1, "username": "alice", "email": "alice@pharmacy.local", "access_token": "tok-123", "token_type": "bearer"}`))
	})
	mux.HandleFunc("/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 2, "username": "bob", "email": "bob@pharmacy.local", "access_token": "tok-456", "token_type": "bearer"}`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func newUseCase(t *testing.T, baseURL string) (auth.UseCase, *session.Session) {
	sess := session.New(filepath.Join(t.TempDir(), "token.json"))
	client, err := pharmd.New(pharmd.Config{BaseURL: baseURL, Tokens: sess})
	require.NoError(t, err)
	return usecase.New(&mockLogger{}, client, sess), sess
}

func TestLoginStoresToken(t *testing.T) {
	ts := newBackend(t)
	uc, sess := newUseCase(t, ts.URL)
	ctx := context.Background()

	user, err := uc.Login(ctx, auth.LoginInput{Email: "alice@pharmacy.local", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "tok-123", sess.Token())
	assert.Equal(t, "alice@pharmacy.local", sess.Email())
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	ts := newBackend(t)
	uc, sess := newUseCase(t, ts.URL)
	ctx := context.Background()

	_, err := uc.Login(ctx, auth.LoginInput{Email: "alice@pharmacy.local", Password: "wrong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
	assert.False(t, sess.IsAuthenticated())
}

func TestSignupStoresToken(t *testing.T) {
	ts := newBackend(t)
	uc, sess := newUseCase(t, ts.URL)
	ctx := context.Background()

	user, err := uc.Signup(ctx, auth.SignupInput{Username: "bob", Email: "bob@pharmacy.local", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)
	assert.Equal(t, "tok-456", sess.Token())
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newBackend(t)
	uc, sess := newUseCase(t, ts.URL)
	ctx := context.Background()

	_, err := uc.Login(ctx, auth.LoginInput{Email: "alice@pharmacy.local", Password: "secret"})
	require.NoError(t, err)
	require.True(t, sess.IsAuthenticated())

	require.NoError(t, uc.Logout(ctx))
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, sess.Token())
}
