package quotation

import (
	"context"
	"time"

	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/cotizador/backend/internal/domain/shared"
)

// QuotationService handles quotation business operations
type QuotationService struct {
	quotationRepo quotation.Repository
	now           func() time.Time
}

// NewQuotationService creates a new QuotationService
func NewQuotationService(quotationRepo quotation.Repository) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		now:           time.Now,
	}
}

// Create prices and persists a new quotation atomically. The id is derived
// from the creation instant; creating twice within the same second surfaces
// an already-exists conflict.
func (s *QuotationService) Create(ctx context.Context, req CreateQuotationRequest) (*QuotationResponse, error) {
	lines := make([]quotation.LineRequest, len(req.Items))
	for i, item := range req.Items {
		lines[i] = quotation.LineRequest{ItemID: item.ItemID, Quantity: item.Quantity}
	}

	q, err := quotation.New(quotation.NewID(s.now()), req.ClientID, lines)
	if err != nil {
		return nil, err
	}

	if err := s.quotationRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	response := ToQuotationResponse(q)
	return &response, nil
}

// GetByID retrieves a fully resolved quotation
func (s *QuotationService) GetByID(ctx context.Context, id string) (*QuotationResponse, error) {
	q, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToQuotationResponse(q)
	return &response, nil
}

// Delete removes a quotation and its lines
func (s *QuotationService) Delete(ctx context.Context, id string) error {
	return s.quotationRepo.Delete(ctx, id)
}

// List retrieves a page of quotation summaries with optional search by
// quotation id or client name
func (s *QuotationService) List(ctx context.Context, filter QuotationListFilter) ([]SummaryResponse, shared.Pagination, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Search:   filter.Search,
	}
	domainFilter.Normalize()

	summaries, err := s.quotationRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	total, err := s.quotationRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	responses := make([]SummaryResponse, len(summaries))
	for i, sum := range summaries {
		responses[i] = ToSummaryResponse(sum)
	}
	return responses, shared.NewPagination(domainFilter, total), nil
}

// ListByClient retrieves a page of quotation summaries for one client
func (s *QuotationService) ListByClient(ctx context.Context, clientID int64, filter QuotationListFilter) ([]SummaryResponse, shared.Pagination, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	domainFilter.Normalize()

	summaries, err := s.quotationRepo.FindByClient(ctx, clientID, domainFilter)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	total, err := s.quotationRepo.CountByClient(ctx, clientID)
	if err != nil {
		return nil, shared.Pagination{}, err
	}

	responses := make([]SummaryResponse, len(summaries))
	for i, sum := range summaries {
		responses[i] = ToSummaryResponse(sum)
	}
	return responses, shared.NewPagination(domainFilter, total), nil
}
