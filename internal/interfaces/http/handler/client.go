package handler

import (
	"strconv"
	"strings"

	partnerapp "github.com/cotizador/backend/internal/application/partner"
	quotationapp "github.com/cotizador/backend/internal/application/quotation"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService    *partnerapp.ClientService
	quotationService *quotationapp.QuotationService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *partnerapp.ClientService, quotationService *quotationapp.QuotationService) *ClientHandler {
	return &ClientHandler{
		clientService:    clientService,
		quotationService: quotationService,
	}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/search/autocomplete", h.Search)
		clients.GET("/stats/top", h.Top)
		clients.GET("/:id", h.GetByID)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
		clients.GET("/:id/stats", h.Stats)
		clients.GET("/:id/quotations", h.Quotations)
	}
}

// parseID parses the numeric id path parameter
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// Create creates a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req partnerapp.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clientService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List retrieves a page of clients
func (h *ClientHandler) List(c *gin.Context) {
	var filter partnerapp.ClientListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	clients, pagination, err := h.clientService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithPagination(c, clients, pagination)
}

// Search returns clients matching a term, for autocomplete. Terms shorter
// than two characters yield an empty result instead of an error.
func (h *ClientHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if len(term) < 2 {
		h.Success(c, []partnerapp.ClientResponse{})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	clients, err := h.clientService.Search(c.Request.Context(), term, limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, clients)
}

// Top ranks clients by total quoted amount
func (h *ClientHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	clients, err := h.clientService.Top(c.Request.Context(), limit)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, clients)
}

// GetByID retrieves a client with its quotation aggregates
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	resp, err := h.clientService.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update updates an existing client
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req partnerapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.clientService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a client that has no quotations
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Stats returns quotation aggregates for a client
func (h *ClientHandler) Stats(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	stats, err := h.clientService.Stats(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stats)
}

// Quotations lists the quotations of a client
func (h *ClientHandler) Quotations(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var filter quotationapp.QuotationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	summaries, pagination, err := h.quotationService.ListByClient(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithPagination(c, summaries, pagination)
}
