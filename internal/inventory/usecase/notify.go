package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pharmacy-inventory-console/internal/inventory"
)

func (uc *implUseCase) Notifications(ctx context.Context) []inventory.Notification {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]inventory.Notification, len(uc.notifications))
	copy(out, uc.notifications)
	return out
}

// notify appends a message and schedules its removal after the TTL.
func (uc *implUseCase) notify(level, message string) {
	n := inventory.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}

	uc.mu.Lock()
	uc.notifications = append(uc.notifications, n)
	uc.mu.Unlock()

	time.AfterFunc(uc.notifyTTL, func() {
		uc.dismiss(n.ID)
	})
}

func (uc *implUseCase) dismiss(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, n := range uc.notifications {
		if n.ID == id {
			uc.notifications = append(uc.notifications[:i], uc.notifications[i+1:]...)
			return
		}
	}
}
