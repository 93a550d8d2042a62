package document

import (
	"context"

	"github.com/cotizador/backend/internal/domain/quotation"
)

// Service renders downloadable documents for persisted quotations
type Service struct {
	quotationRepo quotation.Repository
	renderer      *Renderer
}

// NewService creates a new document Service
func NewService(quotationRepo quotation.Repository, renderer *Renderer) *Service {
	return &Service{
		quotationRepo: quotationRepo,
		renderer:      renderer,
	}
}

// RenderQuotation loads a quotation and renders its PDF, returning the
// document bytes and the download filename
func (s *Service) RenderQuotation(ctx context.Context, id string) ([]byte, string, error) {
	q, err := s.quotationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	out, err := s.renderer.Render(q)
	if err != nil {
		return nil, "", err
	}
	return out, Filename(q.ID), nil
}
