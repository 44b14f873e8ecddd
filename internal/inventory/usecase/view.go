package usecase

import (
	"context"
	"sort"
	"strings"

	"pharmacy-inventory-console/internal/inventory"
	"pharmacy-inventory-console/internal/model"
)

func (uc *implUseCase) View(ctx context.Context) inventory.ViewOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.viewLocked()
}

func (uc *implUseCase) SetQuery(ctx context.Context, query string) inventory.ViewOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.query = query
	uc.page = 1
	return uc.viewLocked()
}

func (uc *implUseCase) SetPage(ctx context.Context, page int) (inventory.ViewOutput, error) {
	if page < 1 {
		return inventory.ViewOutput{}, inventory.ErrInvalidPage
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.page = page
	return uc.viewLocked(), nil
}

func (uc *implUseCase) SetSort(ctx context.Context, key inventory.SortKey) inventory.ViewOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if key == uc.sortKey {
		uc.sortDesc = !uc.sortDesc
	} else {
		uc.sortKey = key
		uc.sortDesc = false
	}
	return uc.viewLocked()
}

// viewLocked derives the visible page from snapshot + view state. The
// caller must hold uc.mu. When filtering narrows the list below the
// current page, the page is clamped to the last one rather than reset.
func (uc *implUseCase) viewLocked() inventory.ViewOutput {
	filtered := filterMedicines(uc.snapshot, uc.query)
	sortMedicines(filtered, uc.sortKey, uc.sortDesc)

	totalPages := (len(filtered) + uc.pageSize - 1) / uc.pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if uc.page > totalPages {
		uc.page = totalPages
	}

	start := (uc.page - 1) * uc.pageSize
	end := start + uc.pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	out := inventory.ViewOutput{
		Rows:       filtered[start:end],
		Query:      uc.query,
		Page:       uc.page,
		PageSize:   uc.pageSize,
		TotalPages: totalPages,
		TotalItems: len(filtered),
		SortKey:    uc.sortKey,
		SortDesc:   uc.sortDesc,
		Status:     uc.status,
	}
	if uc.lastErr != nil {
		out.LastError = uc.lastErr.Error()
	}
	return out
}

// filterMedicines returns the medicines whose name, category,
// manufacturer or description contains the trimmed query,
// case-insensitively. An empty query matches everything. The result is
// always a fresh slice so sorting never reorders the snapshot.
func filterMedicines(medicines []model.Medicine, query string) []model.Medicine {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Medicine, 0, len(medicines))
	for _, m := range medicines {
		if q == "" || matchesQuery(m, q) {
			out = append(out, m)
		}
	}
	return out
}

func matchesQuery(m model.Medicine, q string) bool {
	for _, field := range []string{m.Name, m.Category, m.Manufacturer, m.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func sortMedicines(medicines []model.Medicine, key inventory.SortKey, desc bool) {
	sort.SliceStable(medicines, func(i, j int) bool {
		a, b := medicines[i], medicines[j]
		if desc {
			a, b = b, a
		}
		switch key {
		case inventory.SortByPrice:
			return a.UnitPrice < b.UnitPrice
		case inventory.SortByStock:
			return a.CurrentStock < b.CurrentStock
		case inventory.SortByExpiry:
			// ISO dates order lexicographically
			return a.ExpiryDate < b.ExpiryDate
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	})
}
