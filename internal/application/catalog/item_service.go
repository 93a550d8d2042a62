package catalog

import (
	"context"

	"github.com/cotizador/backend/internal/domain/catalog"
	"github.com/cotizador/backend/internal/domain/shared"
)

// ItemService handles catalog item business operations
type ItemService struct {
	itemRepo     catalog.ItemRepository
	itemTypeRepo catalog.ItemTypeRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, itemTypeRepo catalog.ItemTypeRepository) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		itemTypeRepo: itemTypeRepo,
	}
}

// Create creates a new catalog item
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	itemType, err := s.itemTypeRepo.FindByID(ctx, req.TypeID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("VALIDATION", "Item type does not exist")
		}
		return nil, err
	}

	item, err := catalog.NewItem(req.Name, req.Description, req.Price, req.TypeID)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	item.TypeName = itemType.Name
	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, id int64) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Update updates an existing catalog item
func (s *ItemService) Update(ctx context.Context, id int64, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := item.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		item.SetDescription(*req.Description)
	}
	if req.Price != nil {
		if err := item.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.TypeID != nil {
		itemType, err := s.itemTypeRepo.FindByID(ctx, *req.TypeID)
		if err != nil {
			if err == shared.ErrNotFound {
				return nil, shared.NewDomainError("VALIDATION", "Item type does not exist")
			}
			return nil, err
		}
		if err := item.SetType(itemType.ID); err != nil {
			return nil, err
		}
		item.TypeName = itemType.Name
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an item that is not referenced by any quotation
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}

// List retrieves a page of items with optional search
func (s *ItemService) List(ctx context.Context, filter ItemListFilter) ([]ItemResponse, shared.Pagination, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	}
	domainFilter.Normalize()

	items, err := s.itemRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(&item)
	}
	return responses, shared.NewPagination(domainFilter, total), nil
}
