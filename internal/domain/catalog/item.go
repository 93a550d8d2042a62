package catalog

import (
	"strings"
	"time"

	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ItemType is a closed catalog category classifying items.
type ItemType struct {
	ID   int64
	Name string
}

// NewItemType creates a new item type
func NewItemType(name string) (*ItemType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION", "Item type name cannot be empty")
	}
	return &ItemType{Name: name}, nil
}

// Item represents a priced catalog entry that quotation lines reference.
type Item struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	TypeID      int64
	TypeName    string
	shared.Timestamps
}

// NewItem creates a new item with a positive price and an existing type
func NewItem(name, description string, price decimal.Decimal, typeID int64) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("VALIDATION", "Item name cannot be empty")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION", "Item price must be positive")
	}
	if typeID <= 0 {
		return nil, shared.NewDomainError("VALIDATION", "Item type is required")
	}

	now := time.Now()
	item := &Item{
		Name:        name,
		Description: strings.TrimSpace(description),
		Price:       price.Round(2),
		TypeID:      typeID,
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	return item, nil
}

// Rename updates the item name
func (i *Item) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("VALIDATION", "Item name cannot be empty")
	}
	i.Name = name
	i.Touch()
	return nil
}

// SetPrice updates the item price
func (i *Item) SetPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewDomainError("VALIDATION", "Item price must be positive")
	}
	i.Price = price.Round(2)
	i.Touch()
	return nil
}

// SetDescription updates the optional description
func (i *Item) SetDescription(description string) {
	i.Description = strings.TrimSpace(description)
	i.Touch()
}

// SetType changes the item type reference
func (i *Item) SetType(typeID int64) error {
	if typeID <= 0 {
		return shared.NewDomainError("VALIDATION", "Item type is required")
	}
	i.TypeID = typeID
	i.Touch()
	return nil
}
