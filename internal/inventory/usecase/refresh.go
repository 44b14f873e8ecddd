package usecase

import (
	"context"

	"pharmacy-inventory-console/internal/inventory"
)

func (uc *implUseCase) Refresh(ctx context.Context) error {
	uc.mu.Lock()
	uc.status = inventory.StatusLoading
	uc.mu.Unlock()

	medicines, err := uc.repo.ListMedicines(ctx)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err != nil {
		uc.l.Warnf(ctx, "inventory: refresh failed: %v", err)
		uc.status = inventory.StatusFailed
		uc.lastErr = err
		return err
	}

	// Whole-snapshot replacement. When several refreshes race, the last
	// response to land here wins outright.
	uc.snapshot = medicines
	uc.status = inventory.StatusReady
	uc.lastErr = nil
	return nil
}

// refreshAfterWrite re-lists following a successful mutation. The
// mutation itself already succeeded, so a failed refresh is reported
// through the status machine, not to the mutation's caller.
func (uc *implUseCase) refreshAfterWrite(ctx context.Context) {
	if err := uc.Refresh(ctx); err != nil {
		uc.l.Warnf(ctx, "inventory: post-mutation refresh failed: %v", err)
	}
}
