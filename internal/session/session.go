package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Session holds the backend bearer token for the current user. It is an
// explicit object handed to whoever needs it (resource client, middleware)
// rather than ambient global state. Lifecycle: Set on login, Clear on logout.
//
// When constructed with a path, the token survives console restarts via a
// small JSON file; an empty path keeps the session in memory only.
type Session struct {
	mu    sync.RWMutex
	token string
	email string
	path  string
}

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	Email       string    `json:"email,omitempty"`
	SavedAt     time.Time `json:"saved_at"`
}

// New creates a Session. If path names an existing token file the stored
// token is loaded; a missing or unreadable file just means logged out.
func New(path string) *Session {
	s := &Session{path: path}
	if path == "" {
		return s
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return s
	}
	s.token = tf.AccessToken
	s.email = tf.Email
	return s
}

// Set stores the token issued by the backend on login.
func (s *Session) Set(token, email string) error {
	s.mu.Lock()
	s.token = token
	s.email = email
	s.mu.Unlock()
	return s.persist()
}

// Clear forgets the token. Logout is purely local; the backend does not
// track sessions.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.email = ""
	s.mu.Unlock()

	if s.path == "" {
		return nil
	}
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Token returns the current bearer token, empty when logged out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Email returns the logged-in user's email, empty when logged out.
func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

// IsAuthenticated reports whether a token is present. Callers consult this
// per check; the value is never cached elsewhere.
func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) persist() error {
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	s.mu.RLock()
	tf := tokenFile{AccessToken: s.token, Email: s.email, SavedAt: time.Now()}
	s.mu.RUnlock()

	b, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}
