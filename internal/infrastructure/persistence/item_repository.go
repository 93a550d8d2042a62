package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/cotizador/backend/internal/domain/catalog"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/cotizador/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by its ID with the type resolved
func (r *GormItemRepository) FindByID(ctx context.Context, id int64) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).Preload("Type").First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrItemNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all items matching the filter
func (r *GormItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Item, error) {
	var itemModels []models.ItemModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ItemModel{}).Preload("Type"), filter)

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.Item, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Count counts items matching the filter
func (r *GormItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.ItemModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	model := models.ItemModelFromDomain(item)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return shared.NewDomainError("VALIDATION", "Item type does not exist")
		}
		return err
	}
	item.ID = model.ID
	return nil
}

// Delete deletes an item. Items referenced by quotation lines cannot be removed.
func (r *GormItemRepository) Delete(ctx context.Context, id int64) error {
	var referenced int64
	if err := r.db.WithContext(ctx).Model(&models.QuotationLineModel{}).Where("item_id = ?", id).Count(&referenced).Error; err != nil {
		return err
	}
	if referenced > 0 {
		return shared.ErrInUse
	}

	result := r.db.WithContext(ctx).Delete(&models.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return shared.ErrInUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrItemNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormItemRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query.Order("name ASC")
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormItemRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return query
}

// Ensure GormItemRepository implements ItemRepository
var _ catalog.ItemRepository = (*GormItemRepository)(nil)
