package usecase

import (
	"sync"
	"time"

	"pharmacy-inventory-console/internal/inventory"
	"pharmacy-inventory-console/internal/inventory/repository"
	"pharmacy-inventory-console/internal/model"
	pkgLog "pharmacy-inventory-console/pkg/log"
)

const (
	defaultPageSize        = 10
	defaultNotificationTTL = 3 * time.Second
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.MedicineRepository

	pageSize  int
	notifyTTL time.Duration

	mu sync.Mutex

	// snapshot is the full medicine list as last fetched. It is only
	// ever replaced wholesale, never patched in place.
	snapshot []model.Medicine

	query    string
	page     int
	sortKey  inventory.SortKey
	sortDesc bool

	status  inventory.Status
	lastErr error

	pending       map[int]struct{}
	notifications []inventory.Notification
}

// New creates a new inventory UseCase instance. pageSize and notifyTTL
// fall back to their defaults when zero.
func New(l pkgLog.Logger, repo repository.MedicineRepository, pageSize int, notifyTTL time.Duration) *implUseCase {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if notifyTTL <= 0 {
		notifyTTL = defaultNotificationTTL
	}
	return &implUseCase{
		l:         l,
		repo:      repo,
		pageSize:  pageSize,
		notifyTTL: notifyTTL,
		page:      1,
		sortKey:   inventory.SortByName,
		status:    inventory.StatusIdle,
		pending:   make(map[int]struct{}),
	}
}
