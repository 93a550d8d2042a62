package quotation

import (
	"time"

	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/shopspring/decimal"
)

// CreateQuotationRequest represents a request to create a new quotation
type CreateQuotationRequest struct {
	ClientID int64         `json:"clientId" binding:"required,min=1"`
	Items    []LineRequest `json:"items" binding:"required,min=1,dive"`
}

// LineRequest is one requested line: an item and a quantity
type LineRequest struct {
	ItemID   int64 `json:"itemId" binding:"required,min=1"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

// QuotationListFilter holds list query options for quotations
type QuotationListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"limit"`
	Search   string `form:"search"`
}

// LineResponse represents a resolved quotation line in API responses
type LineResponse struct {
	ItemID    int64           `json:"itemId"`
	ItemName  string          `json:"itemName"`
	TypeName  string          `json:"typeName"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// QuotationResponse represents a fully resolved quotation in API responses
type QuotationResponse struct {
	ID         string          `json:"id"`
	ClientID   int64           `json:"clientId"`
	ClientName string          `json:"clientName"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	Items      []LineResponse  `json:"items"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SummaryResponse represents a quotation header in listings
type SummaryResponse struct {
	ID         string          `json:"id"`
	ClientID   int64           `json:"clientId"`
	ClientName string          `json:"clientName"`
	Date       time.Time       `json:"date"`
	Total      decimal.Decimal `json:"total"`
	LineCount  int64           `json:"lineCount"`
}

// ToQuotationResponse converts a domain Quotation to a response DTO
func ToQuotationResponse(q *quotation.Quotation) QuotationResponse {
	items := make([]LineResponse, len(q.Lines))
	for i, l := range q.Lines {
		items[i] = LineResponse{
			ItemID:    l.ItemID,
			ItemName:  l.ItemName,
			TypeName:  l.TypeName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total(),
		}
	}
	return QuotationResponse{
		ID:         q.ID,
		ClientID:   q.ClientID,
		ClientName: q.ClientName,
		Date:       q.Date,
		Total:      q.Total,
		Items:      items,
		CreatedAt:  q.CreatedAt,
	}
}

// ToSummaryResponse converts a domain Summary to a response DTO
func ToSummaryResponse(s quotation.Summary) SummaryResponse {
	return SummaryResponse{
		ID:         s.ID,
		ClientID:   s.ClientID,
		ClientName: s.ClientName,
		Date:       s.Date,
		Total:      s.Total,
		LineCount:  s.LineCount,
	}
}
