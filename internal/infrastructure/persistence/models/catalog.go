package models

import (
	"github.com/cotizador/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ItemTypeModel is the persistence model for the ItemType domain entity.
type ItemTypeModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (ItemTypeModel) TableName() string {
	return "item_types"
}

// ToDomain converts the persistence model to a domain ItemType entity.
func (m *ItemTypeModel) ToDomain() *catalog.ItemType {
	return &catalog.ItemType{ID: m.ID, Name: m.Name}
}

// ItemTypeModelFromDomain creates a new persistence model from a domain ItemType entity.
func ItemTypeModelFromDomain(t *catalog.ItemType) *ItemTypeModel {
	return &ItemTypeModel{ID: t.ID, Name: t.Name}
}

// ItemModel is the persistence model for the Item domain entity.
type ItemModel struct {
	BaseModel
	Name        string          `gorm:"type:varchar(200);not null;index"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	TypeID      int64           `gorm:"not null;index"`
	Type        *ItemTypeModel  `gorm:"foreignKey:TypeID;constraint:OnDelete:RESTRICT"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item entity. The type
// name is carried over when the association was preloaded.
func (m *ItemModel) ToDomain() *catalog.Item {
	item := &catalog.Item{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		TypeID:      m.TypeID,
		Timestamps:  m.ToTimestamps(),
	}
	if m.Type != nil {
		item.TypeName = m.Type.Name
	}
	return item
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(i *catalog.Item) {
	m.ID = i.ID
	m.Name = i.Name
	m.Description = i.Description
	m.Price = i.Price
	m.TypeID = i.TypeID
	m.Type = nil
	m.FromTimestamps(i.Timestamps)
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(i *catalog.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}
