package handler

import (
	"net/http"
	"strconv"

	documentapp "github.com/cotizador/backend/internal/application/document"
	quotationapp "github.com/cotizador/backend/internal/application/quotation"
	"github.com/cotizador/backend/internal/domain/quotation"
	"github.com/gin-gonic/gin"
)

// QuotationHandler handles quotation-related API endpoints
type QuotationHandler struct {
	BaseHandler
	quotationService *quotationapp.QuotationService
	documentService  *documentapp.Service
}

// NewQuotationHandler creates a new QuotationHandler
func NewQuotationHandler(quotationService *quotationapp.QuotationService, documentService *documentapp.Service) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		documentService:  documentService,
	}
}

// RegisterRoutes registers quotation routes
func (h *QuotationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	quotations := rg.Group("/quotations")
	{
		quotations.POST("", h.Create)
		quotations.GET("", h.List)
		quotations.GET("/:id", h.GetByID)
		quotations.DELETE("/:id", h.Delete)
		quotations.GET("/:id/pdf", h.Download)
	}
}

// parseQuotationID validates the quotation id path parameter
func parseQuotationID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !quotation.ValidID(id) {
		return "", false
	}
	return id, true
}

// Create prices and persists a new quotation atomically
func (h *QuotationHandler) Create(c *gin.Context) {
	var req quotationapp.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.quotationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List retrieves a page of quotation summaries
func (h *QuotationHandler) List(c *gin.Context) {
	var filter quotationapp.QuotationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	summaries, pagination, err := h.quotationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithPagination(c, summaries, pagination)
}

// GetByID retrieves a fully resolved quotation
func (h *QuotationHandler) GetByID(c *gin.Context) {
	id, ok := parseQuotationID(c)
	if !ok {
		h.BadRequest(c, "Invalid quotation ID")
		return
	}

	resp, err := h.quotationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a quotation and its lines
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, ok := parseQuotationID(c)
	if !ok {
		h.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Download renders the quotation PDF and streams it as an attachment
func (h *QuotationHandler) Download(c *gin.Context) {
	id, ok := parseQuotationID(c)
	if !ok {
		h.BadRequest(c, "Invalid quotation ID")
		return
	}

	out, filename, err := h.documentService.RenderQuotation(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=`+filename)
	c.Header("Content-Length", strconv.Itoa(len(out)))
	c.Data(http.StatusOK, "application/pdf", out)
}
