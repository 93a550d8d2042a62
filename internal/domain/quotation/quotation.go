package quotation

import (
	"time"

	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Line is one (item, quantity) pairing within a quotation. UnitPrice is the
// item price snapshotted at creation time, so the stored total stays
// consistent even if the catalog price changes later.
type Line struct {
	ID        int64
	ItemID    int64
	ItemName  string
	TypeName  string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Total returns quantity times the snapshotted unit price
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Quotation is a priced proposal referencing a client and a set of catalog
// items with quantities. It is immutable once created except for deletion.
type Quotation struct {
	ID         string
	ClientID   int64
	ClientName string
	Date       time.Time
	Total      decimal.Decimal
	Lines      []Line
	shared.Timestamps
}

// LineRequest is the caller-supplied portion of a line.
type LineRequest struct {
	ItemID   int64
	Quantity int
}

// New creates a quotation pending price resolution. Every line starts with
// the requested item id and quantity; the unit price and display names are
// filled in by the creation transaction.
func New(id string, clientID int64, lines []LineRequest) (*Quotation, error) {
	if !ValidID(id) {
		return nil, shared.NewDomainError("VALIDATION", "Invalid quotation id format")
	}
	if clientID <= 0 {
		return nil, shared.NewDomainError("VALIDATION", "Client is required")
	}
	if len(lines) == 0 {
		return nil, shared.NewDomainError("VALIDATION", "Quotation must have at least one line")
	}

	q := &Quotation{
		ID:       id,
		ClientID: clientID,
		Date:     time.Now().Truncate(24 * time.Hour),
		Total:    decimal.Zero,
		Lines:    make([]Line, 0, len(lines)),
	}
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now

	for _, l := range lines {
		if l.ItemID <= 0 {
			return nil, shared.NewDomainError("VALIDATION", "Every line must reference an item")
		}
		if l.Quantity < 1 {
			return nil, shared.NewDomainError("VALIDATION", "Line quantity must be at least 1")
		}
		q.Lines = append(q.Lines, Line{ItemID: l.ItemID, Quantity: l.Quantity})
	}
	return q, nil
}

// ComputeTotal recalculates the total from the resolved lines
func (q *Quotation) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range q.Lines {
		total = total.Add(l.Total())
	}
	q.Total = total
	return total
}

// Summary is a quotation header joined with its client name, used by
// listings that do not need resolved lines.
type Summary struct {
	ID         string
	ClientID   int64
	ClientName string
	Date       time.Time
	Total      decimal.Decimal
	LineCount  int64
}
