package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"pharmacy-inventory-console/internal/session"
	"pharmacy-inventory-console/pkg/log"
	"pharmacy-inventory-console/pkg/pharmd"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Shared infrastructure handed to the domains.
	backend *pharmd.Client
	session *session.Session

	rateLimitPerMin int
	pageSize        int
	notificationTTL time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Backend *pharmd.Client
	Session *session.Session

	RateLimitPerMin int
	PageSize        int
	NotificationTTL time.Duration
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		backend:         cfg.Backend,
		session:         cfg.Session,
		rateLimitPerMin: cfg.RateLimitPerMin,
		pageSize:        cfg.PageSize,
		notificationTTL: cfg.NotificationTTL,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.backend == nil {
		return errors.New("backend client is required")
	}
	if srv.session == nil {
		return errors.New("session is required")
	}
	return nil
}
