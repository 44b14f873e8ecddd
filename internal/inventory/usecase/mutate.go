package usecase

import (
	"context"
	"fmt"
	"strings"

	"pharmacy-inventory-console/internal/inventory"
	"pharmacy-inventory-console/internal/inventory/repository"
	"pharmacy-inventory-console/internal/model"
)

// createPendingID stands in for a create, which has no medicine ID
// until the backend assigns one. Backend IDs start at 1, so 0 is free.
const createPendingID = 0

// beginPending marks a mutation in flight for one medicine. A second
// mutation against the same ID fails fast; different IDs proceed
// independently.
func (uc *implUseCase) beginPending(id int) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, busy := uc.pending[id]; busy {
		return inventory.ErrOperationPending
	}
	uc.pending[id] = struct{}{}
	return nil
}

func (uc *implUseCase) endPending(id int) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.pending, id)
}

func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateInput) (model.Medicine, error) {
	if err := uc.beginPending(createPendingID); err != nil {
		return model.Medicine{}, err
	}

	created, err := uc.repo.CreateMedicine(ctx, repository.CreateMedicineOptions{
		Name:         input.Name,
		BatchNo:      input.BatchNo,
		UnitPrice:    input.UnitPrice,
		SafetyStock:  input.SafetyStock,
		LeadTimeDays: input.LeadTimeDays,
		ExpiryDate:   input.ExpiryDate,
		InitialStock: input.InitialStock,
		Category:     input.Category,
		Manufacturer: input.Manufacturer,
		Description:  input.Description,
	})
	uc.endPending(createPendingID)
	if err != nil {
		uc.notify(inventory.NotificationError, fmt.Sprintf("Failed to add %s: %v", input.Name, err))
		return model.Medicine{}, err
	}

	// Membership changed, so the old page and search no longer mean
	// anything: land the user on page 1 with the full list.
	uc.mu.Lock()
	uc.query = ""
	uc.page = 1
	uc.mu.Unlock()

	uc.notify(inventory.NotificationSuccess, fmt.Sprintf("Added %s", created.Name))
	uc.refreshAfterWrite(ctx)
	return created, nil
}

func (uc *implUseCase) Update(ctx context.Context, id int, input inventory.UpdateInput) (model.Medicine, error) {
	if err := uc.beginPending(id); err != nil {
		return model.Medicine{}, err
	}

	updated, err := uc.repo.UpdateMedicine(ctx, id, repository.UpdateMedicineOptions{
		Name:         input.Name,
		BatchNo:      input.BatchNo,
		UnitPrice:    input.UnitPrice,
		SafetyStock:  input.SafetyStock,
		LeadTimeDays: input.LeadTimeDays,
		ExpiryDate:   input.ExpiryDate,
		CurrentStock: input.CurrentStock,
		Category:     input.Category,
		Manufacturer: input.Manufacturer,
		Description:  input.Description,
	})
	uc.endPending(id)
	if err != nil {
		uc.notify(inventory.NotificationError, fmt.Sprintf("Failed to update medicine %d: %v", id, err))
		return model.Medicine{}, err
	}

	uc.notify(inventory.NotificationSuccess, fmt.Sprintf("Updated %s", updated.Name))
	uc.refreshAfterWrite(ctx)
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id int) error {
	if err := uc.beginPending(id); err != nil {
		return err
	}

	err := uc.repo.DeleteMedicine(ctx, id)
	uc.endPending(id)
	if err != nil {
		uc.notify(inventory.NotificationError, fmt.Sprintf("Failed to delete medicine %d: %v", id, err))
		return err
	}

	// If the deleted row was the only one visible on a page past the
	// first, step back a page so the refresh does not land on an empty
	// view. The snapshot still holds the row at this point.
	uc.mu.Lock()
	if uc.page > 1 {
		rows := uc.viewLocked().Rows
		if len(rows) == 1 && rows[0].ID == id {
			uc.page--
		}
	}
	uc.mu.Unlock()

	uc.notify(inventory.NotificationSuccess, fmt.Sprintf("Deleted medicine %d", id))
	uc.refreshAfterWrite(ctx)
	return nil
}

func (uc *implUseCase) AdjustStock(ctx context.Context, input inventory.AdjustStockInput) (model.Medicine, error) {
	if strings.TrimSpace(input.Reason) == "" {
		return model.Medicine{}, inventory.ErrMissingReason
	}

	// Pre-check against the snapshot: an adjustment that cannot succeed
	// is rejected here, before a single request goes out.
	uc.mu.Lock()
	current, found := -1, false
	for _, m := range uc.snapshot {
		if m.ID == input.MedicineID {
			current, found = m.CurrentStock, true
			break
		}
	}
	uc.mu.Unlock()

	if !found {
		return model.Medicine{}, inventory.ErrNotInSnapshot
	}
	if current+input.Delta < 0 {
		return model.Medicine{}, inventory.ErrInsufficientStock
	}

	if err := uc.beginPending(input.MedicineID); err != nil {
		return model.Medicine{}, err
	}

	adjusted, err := uc.repo.AdjustStock(ctx, repository.AdjustStockOptions{
		MedicineID: input.MedicineID,
		Delta:      input.Delta,
		Reason:     input.Reason,
	})
	uc.endPending(input.MedicineID)
	if err != nil {
		uc.notify(inventory.NotificationError, fmt.Sprintf("Failed to adjust stock for medicine %d: %v", input.MedicineID, err))
		return model.Medicine{}, err
	}

	uc.notify(inventory.NotificationSuccess,
		fmt.Sprintf("Stock for %s adjusted by %+d (%s)", adjusted.Name, input.Delta, strings.TrimSpace(input.Reason)))
	uc.refreshAfterWrite(ctx)
	return adjusted, nil
}
