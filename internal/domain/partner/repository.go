package partner

import (
	"context"

	"github.com/cotizador/backend/internal/domain/shared"
)

// TopClient is a client ranked by total quoted amount.
type TopClient struct {
	Client
	Stats ClientStats
}

// ClientRepository defines persistence operations for clients
type ClientRepository interface {
	FindByID(ctx context.Context, id int64) (*Client, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Client, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	// StatsByID returns quotation aggregates for a client, or ErrNotFound.
	StatsByID(ctx context.Context, id int64) (*ClientStats, error)
	// SearchByNameOrEmail returns up to limit clients whose name or email
	// contains the term, ordered by name.
	SearchByNameOrEmail(ctx context.Context, term string, limit int) ([]Client, error)
	// TopByQuotedAmount ranks clients with at least one quotation by total
	// quoted amount, descending.
	TopByQuotedAmount(ctx context.Context, limit int) ([]TopClient, error)
	Save(ctx context.Context, client *Client) error
	// Delete removes a client. Returns ErrInUse while any quotation
	// references it and ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
