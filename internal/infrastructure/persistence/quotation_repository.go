package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/cotizador/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormQuotationRepository implements quotation.Repository using GORM
type GormQuotationRepository struct {
	db *gorm.DB
}

// NewGormQuotationRepository creates a new GormQuotationRepository
func NewGormQuotationRepository(db *gorm.DB) *GormQuotationRepository {
	return &GormQuotationRepository{db: db}
}

// Create persists a quotation atomically. The header is written with a zero
// total, every line gets the item's current price snapshotted, and the
// accumulated total is written back before commit. Any failure rolls the
// whole quotation back.
func (r *GormQuotationRepository) Create(ctx context.Context, q *quotation.Quotation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var client models.ClientModel
		if err := tx.First(&client, "id = ?", q.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.ErrClientNotFound
			}
			return err
		}

		header := models.QuotationModelFromDomain(q)
		header.Total = decimal.Zero
		if err := tx.Create(header).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return shared.ErrAlreadyExists
			}
			return err
		}

		total := decimal.Zero
		for i := range q.Lines {
			var item models.ItemModel
			if err := tx.Preload("Type").First(&item, "id = ?", q.Lines[i].ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return shared.ErrItemNotFound
				}
				return err
			}

			line := models.QuotationLineModel{
				QuotationID: q.ID,
				ItemID:      item.ID,
				Quantity:    q.Lines[i].Quantity,
				UnitPrice:   item.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}

			q.Lines[i].ID = line.ID
			q.Lines[i].ItemName = item.Name
			q.Lines[i].UnitPrice = item.Price
			if item.Type != nil {
				q.Lines[i].TypeName = item.Type.Name
			}
			total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		if err := tx.Model(&models.QuotationModel{}).Where("id = ?", q.ID).Update("total", total).Error; err != nil {
			return err
		}

		q.ClientName = client.Name
		q.Total = total
		return nil
	})
}

// FindByID returns the fully resolved quotation
func (r *GormQuotationRepository) FindByID(ctx context.Context, id string) (*quotation.Quotation, error) {
	var model models.QuotationModel
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Lines").
		Preload("Lines.Item").
		Preload("Lines.Item.Type").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Delete removes a quotation; the database cascades its lines
func (r *GormQuotationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.QuotationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

type summaryRow struct {
	ID         string
	ClientID   int64
	ClientName string
	Date       time.Time
	Total      decimal.Decimal
	LineCount  int64
}

// FindAll lists quotation summaries matching the filter, newest first
func (r *GormQuotationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]quotation.Summary, error) {
	var rows []summaryRow
	query := r.summaryQuery(ctx)
	query = r.applySearch(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if err := query.Order("quotations.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toSummaries(rows), nil
}

// Count counts quotations matching the filter
func (r *GormQuotationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.QuotationModel{}).
		Joins("JOIN clients ON clients.id = quotations.client_id")
	query = r.applySearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByClient lists quotation summaries for one client, newest first
func (r *GormQuotationRepository) FindByClient(ctx context.Context, clientID int64, filter shared.Filter) ([]quotation.Summary, error) {
	var rows []summaryRow
	query := r.summaryQuery(ctx).Where("quotations.client_id = ?", clientID)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if err := query.Order("quotations.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toSummaries(rows), nil
}

// CountByClient counts quotations for one client
func (r *GormQuotationRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.QuotationModel{}).
		Where("client_id = ?", clientID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// summaryQuery builds the header-plus-client-name projection with line counts
func (r *GormQuotationRepository) summaryQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.QuotationModel{}).
		Select("quotations.id, quotations.client_id, clients.name AS client_name, quotations.date, quotations.total, COUNT(quotation_lines.id) AS line_count").
		Joins("JOIN clients ON clients.id = quotations.client_id").
		Joins("LEFT JOIN quotation_lines ON quotation_lines.quotation_id = quotations.id").
		Group("quotations.id, quotations.client_id, clients.name, quotations.date, quotations.total, quotations.created_at")
}

// applySearch matches the quotation id or client name
func (r *GormQuotationRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(quotations.id) LIKE ? OR LOWER(clients.name) LIKE ?", pattern, pattern)
	}
	return query
}

func toSummaries(rows []summaryRow) []quotation.Summary {
	summaries := make([]quotation.Summary, len(rows))
	for i, row := range rows {
		summaries[i] = quotation.Summary{
			ID:         row.ID,
			ClientID:   row.ClientID,
			ClientName: row.ClientName,
			Date:       row.Date,
			Total:      row.Total,
			LineCount:  row.LineCount,
		}
	}
	return summaries
}

// Ensure GormQuotationRepository implements quotation.Repository
var _ quotation.Repository = (*GormQuotationRepository)(nil)
