package usecase

import (
	"context"
	"io"

	"pharmacy-inventory-console/internal/model"
)

func (uc *implUseCase) GenerateAlerts(ctx context.Context) error {
	if err := uc.alerts.GenerateAlerts(ctx); err != nil {
		return err
	}
	return uc.Load(ctx)
}

func (uc *implUseCase) DeleteAlert(ctx context.Context, id int) error {
	if err := uc.alerts.DeleteAlert(ctx, id); err != nil {
		return err
	}
	return uc.Load(ctx)
}

func (uc *implUseCase) UploadSales(ctx context.Context, filename string, data io.Reader) (model.SalesUploadResult, error) {
	result, err := uc.sales.UploadSales(ctx, filename, data)
	if err != nil {
		return model.SalesUploadResult{}, err
	}

	// The upload rewrote stock, predictions and alerts server-side; a
	// reload failure does not undo the successful upload.
	if err := uc.Load(ctx); err != nil {
		uc.l.Warnf(ctx, "dashboard: reload after sales upload failed: %v", err)
	}
	return result, nil
}
