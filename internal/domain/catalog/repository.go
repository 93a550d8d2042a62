package catalog

import (
	"context"

	"github.com/cotizador/backend/internal/domain/shared"
)

// ItemRepository defines persistence operations for catalog items
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Item, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, item *Item) error
	// Delete removes an item. Returns ErrInUse while any quotation line
	// references it and ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// ItemTypeRepository defines persistence operations for item types
type ItemTypeRepository interface {
	FindByID(ctx context.Context, id int64) (*ItemType, error)
	FindAll(ctx context.Context) ([]ItemType, error)
	Save(ctx context.Context, itemType *ItemType) error
}
