package pharmd

import (
	"context"

	"pharmacy-inventory-console/internal/inventory/repository"
	"pharmacy-inventory-console/internal/model"
	pkgLog "pharmacy-inventory-console/pkg/log"
	"pharmacy-inventory-console/pkg/pharmd"
)

type implRepository struct {
	client *pharmd.Client
	l      pkgLog.Logger
}

// New creates a medicine repository backed by the pharmacy backend.
func New(client *pharmd.Client, l pkgLog.Logger) repository.MedicineRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListMedicines(ctx context.Context) ([]model.Medicine, error) {
	wire, err := r.client.ListMedicines(ctx)
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: list medicines: %v", err)
		return nil, err
	}

	medicines := make([]model.Medicine, 0, len(wire))
	for _, m := range wire {
		medicines = append(medicines, toModel(m))
	}
	return medicines, nil
}

func (r *implRepository) GetMedicine(ctx context.Context, id int) (model.Medicine, error) {
	wire, err := r.client.GetMedicine(ctx, id)
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: get medicine %d: %v", id, err)
		return model.Medicine{}, err
	}
	return toModel(*wire), nil
}

func (r *implRepository) CreateMedicine(ctx context.Context, opt repository.CreateMedicineOptions) (model.Medicine, error) {
	wire, err := r.client.CreateMedicine(ctx, pharmd.CreateMedicineInput{
		MedicineName: opt.Name,
		BatchNo:      opt.BatchNo,
		UnitPrice:    opt.UnitPrice,
		SafetyStock:  opt.SafetyStock,
		LeadTimeDays: opt.LeadTimeDays,
		ExpiryDate:   opt.ExpiryDate,
		CurrentStock: opt.InitialStock,
		Category:     opt.Category,
		Manufacturer: opt.Manufacturer,
		Description:  opt.Description,
	})
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: create medicine: %v", err)
		return model.Medicine{}, err
	}
	return toModel(*wire), nil
}

func (r *implRepository) UpdateMedicine(ctx context.Context, id int, opt repository.UpdateMedicineOptions) (model.Medicine, error) {
	wire, err := r.client.UpdateMedicine(ctx, id, pharmd.UpdateMedicineInput{
		MedicineName: opt.Name,
		BatchNo:      opt.BatchNo,
		UnitPrice:    opt.UnitPrice,
		SafetyStock:  opt.SafetyStock,
		LeadTimeDays: opt.LeadTimeDays,
		ExpiryDate:   opt.ExpiryDate,
		CurrentStock: opt.CurrentStock,
		Category:     opt.Category,
		Manufacturer: opt.Manufacturer,
		Description:  opt.Description,
	})
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: update medicine %d: %v", id, err)
		return model.Medicine{}, err
	}
	return toModel(*wire), nil
}

func (r *implRepository) DeleteMedicine(ctx context.Context, id int) error {
	if err := r.client.DeleteMedicine(ctx, id); err != nil {
		r.l.Errorf(ctx, "pharmd repository: delete medicine %d: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) AdjustStock(ctx context.Context, opt repository.AdjustStockOptions) (model.Medicine, error) {
	wire, err := r.client.AdjustStock(ctx, opt.MedicineID, opt.Delta, opt.Reason)
	if err != nil {
		r.l.Errorf(ctx, "pharmd repository: adjust stock for %d: %v", opt.MedicineID, err)
		return model.Medicine{}, err
	}
	return toModel(*wire), nil
}

func toModel(m pharmd.Medicine) model.Medicine {
	return model.Medicine{
		ID:           m.MedicineID,
		Name:         m.MedicineName,
		BatchNo:      m.BatchNo,
		UnitPrice:    m.UnitPrice,
		SafetyStock:  m.SafetyStock,
		LeadTimeDays: m.LeadTimeDays,
		ExpiryDate:   m.ExpiryDate,
		CurrentStock: m.CurrentStock,

		Category:     m.Category,
		Manufacturer: m.Manufacturer,
		Description:  m.Description,

		LastActualQuantity: m.LastActualQuantity,
		CreatedAt:          m.CreatedAt,
		LastUpdated:        m.LastUpdated,
	}
}
