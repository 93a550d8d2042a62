package quotation

import (
	"context"

	"github.com/cotizador/backend/internal/domain/shared"
)

// Repository defines persistence operations for quotations
type Repository interface {
	// Create persists the quotation and its lines in one atomic
	// transaction: it resolves every line's current item price, snapshots
	// it on the line, accumulates the total, and writes the header total
	// last. Any failure rolls the whole quotation back. The passed
	// quotation is filled in with resolved names, prices and the total.
	Create(ctx context.Context, q *Quotation) error
	// FindByID returns the fully resolved quotation or ErrNotFound.
	FindByID(ctx context.Context, id string) (*Quotation, error)
	// Delete removes the quotation; its lines go with it via cascade.
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context, filter shared.Filter) ([]Summary, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	FindByClient(ctx context.Context, clientID int64, filter shared.Filter) ([]Summary, error)
	CountByClient(ctx context.Context, clientID int64) (int64, error)
}
