package catalog

import (
	"time"

	"github.com/cotizador/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateItemRequest represents a request to create a new catalog item
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"omitempty,max=1000"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	TypeID      int64           `json:"typeId" binding:"required,min=1"`
}

// UpdateItemRequest represents a request to update a catalog item
type UpdateItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	Price       *decimal.Decimal `json:"price"`
	TypeID      *int64           `json:"typeId" binding:"omitempty,min=1"`
}

// ItemListFilter holds list query options for items
type ItemListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"limit"`
	Search   string `form:"search"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	TypeID      int64           `json:"typeId"`
	TypeName    string          `json:"typeName"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// CreateItemTypeRequest represents a request to create a new item type
type CreateItemTypeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ItemTypeResponse represents an item type in API responses
type ItemTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ToItemResponse converts a domain Item to a response DTO
func ToItemResponse(i *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		TypeID:      i.TypeID,
		TypeName:    i.TypeName,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ToItemTypeResponse converts a domain ItemType to a response DTO
func ToItemTypeResponse(t *catalog.ItemType) ItemTypeResponse {
	return ItemTypeResponse{ID: t.ID, Name: t.Name}
}
