package repository

import (
	"context"

	"pharmacy-inventory-console/internal/model"
)

// MedicineRepository is the interface for medicine data access against
// the backend.
type MedicineRepository interface {
	ListMedicines(ctx context.Context) ([]model.Medicine, error)
	GetMedicine(ctx context.Context, id int) (model.Medicine, error)
	CreateMedicine(ctx context.Context, opt CreateMedicineOptions) (model.Medicine, error)
	UpdateMedicine(ctx context.Context, id int, opt UpdateMedicineOptions) (model.Medicine, error)
	DeleteMedicine(ctx context.Context, id int) error
	AdjustStock(ctx context.Context, opt AdjustStockOptions) (model.Medicine, error)
}
