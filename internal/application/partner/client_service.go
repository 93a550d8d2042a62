package partner

import (
	"context"

	"github.com/cotizador/backend/internal/domain/partner"
	"github.com/cotizador/backend/internal/domain/shared"
)

// ClientService handles client-related business operations
type ClientService struct {
	clientRepo partner.ClientRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo partner.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Create creates a new client
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*ClientResponse, error) {
	client, err := partner.NewClient(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetByID retrieves a client by ID
func (s *ClientService) GetByID(ctx context.Context, id int64) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// GetDetail retrieves a client together with its quotation aggregates
func (s *ClientService) GetDetail(ctx context.Context, id int64) (*ClientDetailResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.clientRepo.StatsByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ClientDetailResponse{
		ClientResponse: ToClientResponse(client),
		Stats:          ToClientStatsResponse(stats),
	}, nil
}

// Update updates an existing client
func (s *ClientService) Update(ctx context.Context, id int64, req UpdateClientRequest) (*ClientResponse, error) {
	client, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := client.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Email != nil || req.Phone != nil {
		email := client.Email
		phone := client.Phone
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := client.SetContact(email, phone); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		client.SetAddress(*req.Address)
	}

	if err := s.clientRepo.Save(ctx, client); err != nil {
		return nil, err
	}

	response := ToClientResponse(client)
	return &response, nil
}

// Delete removes a client that has no quotations
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.clientRepo.Delete(ctx, id)
}

// List retrieves a page of clients with optional search
func (s *ClientService) List(ctx context.Context, filter ClientListFilter) ([]ClientResponse, shared.Pagination, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	}
	domainFilter.Normalize()

	clients, err := s.clientRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	total, err := s.clientRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(&c)
	}
	return responses, shared.NewPagination(domainFilter, total), nil
}

// Search returns up to limit clients matching the term, for autocomplete
func (s *ClientService) Search(ctx context.Context, term string, limit int) ([]ClientResponse, error) {
	clients, err := s.clientRepo.SearchByNameOrEmail(ctx, term, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(&c)
	}
	return responses, nil
}

// Stats returns quotation aggregates for a client
func (s *ClientService) Stats(ctx context.Context, id int64) (*ClientStatsResponse, error) {
	stats, err := s.clientRepo.StatsByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToClientStatsResponse(stats)
	return &response, nil
}

// Top ranks clients by total quoted amount
func (s *ClientService) Top(ctx context.Context, limit int) ([]TopClientResponse, error) {
	top, err := s.clientRepo.TopByQuotedAmount(ctx, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]TopClientResponse, len(top))
	for i, tc := range top {
		responses[i] = TopClientResponse{
			ClientResponse: ToClientResponse(&tc.Client),
			Stats:          ToClientStatsResponse(&tc.Stats),
		}
	}
	return responses, nil
}
