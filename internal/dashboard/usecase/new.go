package usecase

import (
	"sync"

	"pharmacy-inventory-console/internal/dashboard"
	"pharmacy-inventory-console/internal/dashboard/repository"
	pkgLog "pharmacy-inventory-console/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	alerts      repository.AlertRepository
	predictions repository.PredictionRepository
	sales       repository.SalesRepository

	mu       sync.Mutex
	overview dashboard.Overview
}

// New creates a new dashboard UseCase instance.
func New(
	l pkgLog.Logger,
	alerts repository.AlertRepository,
	predictions repository.PredictionRepository,
	sales repository.SalesRepository,
) *implUseCase {
	return &implUseCase{
		l:           l,
		alerts:      alerts,
		predictions: predictions,
		sales:       sales,
		overview:    dashboard.Overview{Status: dashboard.StatusIdle},
	}
}
