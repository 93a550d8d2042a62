package catalog

import (
	"context"

	"github.com/cotizador/backend/internal/domain/catalog"
)

// ItemTypeService handles item type business operations
type ItemTypeService struct {
	itemTypeRepo catalog.ItemTypeRepository
}

// NewItemTypeService creates a new ItemTypeService
func NewItemTypeService(itemTypeRepo catalog.ItemTypeRepository) *ItemTypeService {
	return &ItemTypeService{itemTypeRepo: itemTypeRepo}
}

// Create creates a new item type
func (s *ItemTypeService) Create(ctx context.Context, req CreateItemTypeRequest) (*ItemTypeResponse, error) {
	itemType, err := catalog.NewItemType(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.itemTypeRepo.Save(ctx, itemType); err != nil {
		return nil, err
	}

	response := ToItemTypeResponse(itemType)
	return &response, nil
}

// List returns every item type
func (s *ItemTypeService) List(ctx context.Context) ([]ItemTypeResponse, error) {
	types, err := s.itemTypeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemTypeResponse, len(types))
	for i, t := range types {
		responses[i] = ToItemTypeResponse(&t)
	}
	return responses, nil
}
