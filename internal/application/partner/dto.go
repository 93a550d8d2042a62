package partner

import (
	"time"

	"github.com/cotizador/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CreateClientRequest represents a request to create a new client
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=200"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Phone   string `json:"phone" binding:"omitempty,max=50"`
	Address string `json:"address" binding:"omitempty,max=500"`
}

// UpdateClientRequest represents a request to update a client
type UpdateClientRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=200"`
	Email   *string `json:"email" binding:"omitempty,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}

// ClientListFilter holds list query options for clients
type ClientListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"limit"`
	Search   string `form:"search"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClientStatsResponse represents quotation aggregates for a client
type ClientStatsResponse struct {
	QuotationCount int64           `json:"quotationCount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	FirstQuotation *time.Time      `json:"firstQuotation"`
	LastQuotation  *time.Time      `json:"lastQuotation"`
}

// ClientDetailResponse represents a client together with its quotation aggregates
type ClientDetailResponse struct {
	ClientResponse
	Stats ClientStatsResponse `json:"stats"`
}

// TopClientResponse represents a client ranked by quoted amount
type TopClientResponse struct {
	ClientResponse
	Stats ClientStatsResponse `json:"stats"`
}

// ToClientResponse converts a domain Client to a response DTO
func ToClientResponse(c *partner.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientStatsResponse converts domain ClientStats to a response DTO
func ToClientStatsResponse(s *partner.ClientStats) ClientStatsResponse {
	return ClientStatsResponse{
		QuotationCount: s.QuotationCount,
		TotalAmount:    s.TotalAmount,
		FirstQuotation: s.FirstQuotation,
		LastQuotation:  s.LastQuotation,
	}
}
