package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cotizador/backend/internal/domain/partner"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/cotizador/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormClientRepository implements ClientRepository using GORM
type GormClientRepository struct {
	db *gorm.DB
}

// NewGormClientRepository creates a new GormClientRepository
func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

// FindByID finds a client by its ID
func (r *GormClientRepository) FindByID(ctx context.Context, id int64) (*partner.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrClientNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all clients matching the filter
func (r *GormClientRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Client, error) {
	var clientModels []models.ClientModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]partner.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

// Count counts clients matching the filter
func (r *GormClientRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ClientModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type clientStatsRow struct {
	QuotationCount int64
	TotalAmount    decimal.Decimal
	FirstQuotation *time.Time
	LastQuotation  *time.Time
}

// StatsByID returns quotation aggregates for a client
func (r *GormClientRepository) StatsByID(ctx context.Context, id int64) (*partner.ClientStats, error) {
	var exists int64
	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("id = ?", id).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, shared.ErrClientNotFound
	}

	var row clientStatsRow
	err := r.db.WithContext(ctx).
		Model(&models.QuotationModel{}).
		Select("COUNT(id) AS quotation_count, COALESCE(SUM(total), 0) AS total_amount, MIN(date) AS first_quotation, MAX(date) AS last_quotation").
		Where("client_id = ?", id).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &partner.ClientStats{
		QuotationCount: row.QuotationCount,
		TotalAmount:    row.TotalAmount,
		FirstQuotation: row.FirstQuotation,
		LastQuotation:  row.LastQuotation,
	}, nil
}

// SearchByNameOrEmail returns up to limit clients whose name or email contains the term
func (r *GormClientRepository) SearchByNameOrEmail(ctx context.Context, term string, limit int) ([]partner.Client, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []partner.Client{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	pattern := "%" + strings.ToLower(term) + "%"
	var clientModels []models.ClientModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&clientModels).Error
	if err != nil {
		return nil, err
	}

	clients := make([]partner.Client, len(clientModels))
	for i, model := range clientModels {
		clients[i] = *model.ToDomain()
	}
	return clients, nil
}

type topClientRow struct {
	models.ClientModel
	QuotationCount int64
	TotalAmount    decimal.Decimal
	FirstQuotation *time.Time
	LastQuotation  *time.Time
}

// TopByQuotedAmount ranks clients with at least one quotation by total quoted amount
func (r *GormClientRepository) TopByQuotedAmount(ctx context.Context, limit int) ([]partner.TopClient, error) {
	if limit <= 0 {
		limit = 5
	}

	var rows []topClientRow
	err := r.db.WithContext(ctx).
		Model(&models.ClientModel{}).
		Select("clients.*, COUNT(quotations.id) AS quotation_count, COALESCE(SUM(quotations.total), 0) AS total_amount, MIN(quotations.date) AS first_quotation, MAX(quotations.date) AS last_quotation").
		Joins("JOIN quotations ON quotations.client_id = clients.id").
		Group("clients.id").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	top := make([]partner.TopClient, len(rows))
	for i, row := range rows {
		top[i] = partner.TopClient{
			Client: *row.ClientModel.ToDomain(),
			Stats: partner.ClientStats{
				QuotationCount: row.QuotationCount,
				TotalAmount:    row.TotalAmount,
				FirstQuotation: row.FirstQuotation,
				LastQuotation:  row.LastQuotation,
			},
		}
	}
	return top, nil
}

// Save creates or updates a client
func (r *GormClientRepository) Save(ctx context.Context, client *partner.Client) error {
	model := models.ClientModelFromDomain(client)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	client.ID = model.ID
	return nil
}

// Delete deletes a client. Clients referenced by quotations cannot be removed.
func (r *GormClientRepository) Delete(ctx context.Context, id int64) error {
	var referenced int64
	if err := r.db.WithContext(ctx).Model(&models.QuotationModel{}).Where("client_id = ?", id).Count(&referenced).Error; err != nil {
		return err
	}
	if referenced > 0 {
		return shared.ErrInUse
	}

	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return shared.ErrInUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrClientNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormClientRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query.Order("name ASC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormClientRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	return query
}

// Ensure GormClientRepository implements ClientRepository
var _ partner.ClientRepository = (*GormClientRepository)(nil)
