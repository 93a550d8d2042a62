package models

import (
	"time"

	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/shopspring/decimal"
)

// QuotationModel is the persistence model for the Quotation header.
type QuotationModel struct {
	ID        string               `gorm:"type:varchar(30);primaryKey"`
	ClientID  int64                `gorm:"not null;index"`
	Client    *ClientModel         `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	Date      time.Time            `gorm:"type:date;not null"`
	Total     decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Lines     []QuotationLineModel `gorm:"foreignKey:QuotationID"`
	CreatedAt time.Time            `gorm:"not null"`
	UpdatedAt time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (QuotationModel) TableName() string {
	return "quotations"
}

// QuotationLineModel is the persistence model for one quotation line.
// UnitPrice snapshots the item price at creation time.
type QuotationLineModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	QuotationID string          `gorm:"type:varchar(30);not null;index"`
	Quotation   *QuotationModel `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	ItemID      int64           `gorm:"not null;index"`
	Item        *ItemModel      `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (QuotationLineModel) TableName() string {
	return "quotation_lines"
}

// ToDomain converts the persistence model to a fully resolved domain
// Quotation. Client and line item associations must be preloaded.
func (m *QuotationModel) ToDomain() *quotation.Quotation {
	q := &quotation.Quotation{
		ID:       m.ID,
		ClientID: m.ClientID,
		Date:     m.Date,
		Total:    m.Total,
		Lines:    make([]quotation.Line, 0, len(m.Lines)),
	}
	q.CreatedAt = m.CreatedAt
	q.UpdatedAt = m.UpdatedAt
	if m.Client != nil {
		q.ClientName = m.Client.Name
	}
	for _, lm := range m.Lines {
		line := quotation.Line{
			ID:        lm.ID,
			ItemID:    lm.ItemID,
			Quantity:  lm.Quantity,
			UnitPrice: lm.UnitPrice,
		}
		if lm.Item != nil {
			line.ItemName = lm.Item.Name
			if lm.Item.Type != nil {
				line.TypeName = lm.Item.Type.Name
			}
		}
		q.Lines = append(q.Lines, line)
	}
	return q
}

// QuotationModelFromDomain creates a header persistence model from a domain
// Quotation. Lines are persisted separately by the creation transaction.
func QuotationModelFromDomain(q *quotation.Quotation) *QuotationModel {
	return &QuotationModel{
		ID:        q.ID,
		ClientID:  q.ClientID,
		Date:      q.Date,
		Total:     q.Total,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}
