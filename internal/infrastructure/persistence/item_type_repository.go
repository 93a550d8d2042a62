package persistence

import (
	"context"
	"errors"

	"github.com/cotizador/backend/internal/domain/catalog"
	"github.com/cotizador/backend/internal/domain/shared"
	"github.com/cotizador/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemTypeRepository implements ItemTypeRepository using GORM
type GormItemTypeRepository struct {
	db *gorm.DB
}

// NewGormItemTypeRepository creates a new GormItemTypeRepository
func NewGormItemTypeRepository(db *gorm.DB) *GormItemTypeRepository {
	return &GormItemTypeRepository{db: db}
}

// FindByID finds an item type by its ID
func (r *GormItemTypeRepository) FindByID(ctx context.Context, id int64) (*catalog.ItemType, error) {
	var model models.ItemTypeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every item type ordered by name
func (r *GormItemTypeRepository) FindAll(ctx context.Context) ([]catalog.ItemType, error) {
	var typeModels []models.ItemTypeModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&typeModels).Error; err != nil {
		return nil, err
	}

	types := make([]catalog.ItemType, len(typeModels))
	for i, model := range typeModels {
		types[i] = *model.ToDomain()
	}
	return types, nil
}

// Save creates or updates an item type
func (r *GormItemTypeRepository) Save(ctx context.Context, itemType *catalog.ItemType) error {
	model := models.ItemTypeModelFromDomain(itemType)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	itemType.ID = model.ID
	return nil
}

// Ensure GormItemTypeRepository implements ItemTypeRepository
var _ catalog.ItemTypeRepository = (*GormItemTypeRepository)(nil)
