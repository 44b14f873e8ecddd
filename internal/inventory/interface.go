package inventory

import (
	"context"

	"pharmacy-inventory-console/internal/model"
)

// UseCase defines the business logic interface for the inventory domain.
// One instance owns the browser-facing list state for its lifetime.
type UseCase interface {
	// Refresh re-lists medicines from the backend and replaces the
	// snapshot wholesale. Safe to call from Failed for retry.
	Refresh(ctx context.Context) error

	// View derives the current page from the snapshot and view state.
	View(ctx context.Context) ViewOutput

	// SetQuery updates the search text and resets the page to 1.
	SetQuery(ctx context.Context, query string) ViewOutput

	// SetPage moves to a 1-based page.
	SetPage(ctx context.Context, page int) (ViewOutput, error)

	// SetSort toggles direction when key is the active sort key,
	// otherwise switches to key ascending.
	SetSort(ctx context.Context, key SortKey) ViewOutput

	// Create validates input locally, creates the medicine, then
	// refreshes and resets the view to page 1 with an empty search.
	Create(ctx context.Context, input CreateInput) (model.Medicine, error)

	// Update applies partial changes to one medicine, then refreshes.
	Update(ctx context.Context, id int, input UpdateInput) (model.Medicine, error)

	// Delete removes one medicine, then refreshes. When the deleted row
	// was the only one visible on a page past the first, the page is
	// decremented before the refresh.
	Delete(ctx context.Context, id int) error

	// AdjustStock applies a signed stock delta with a mandatory reason.
	// Validation runs against the snapshot before any request is made.
	AdjustStock(ctx context.Context, input AdjustStockInput) (model.Medicine, error)

	// Notifications returns the live per-mutation messages.
	Notifications(ctx context.Context) []Notification
}
