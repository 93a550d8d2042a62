package handler

import (
	catalogapp "github.com/cotizador/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// ItemHandler handles catalog item and item type API endpoints
type ItemHandler struct {
	BaseHandler
	itemService     *catalogapp.ItemService
	itemTypeService *catalogapp.ItemTypeService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *catalogapp.ItemService, itemTypeService *catalogapp.ItemTypeService) *ItemHandler {
	return &ItemHandler{
		itemService:     itemService,
		itemTypeService: itemTypeService,
	}
}

// RegisterRoutes registers item and item type routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	{
		items.GET("/types", h.ListTypes)
		items.POST("/types", h.CreateType)
		items.POST("", h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.GetByID)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}

// Create creates a new catalog item
func (h *ItemHandler) Create(c *gin.Context) {
	var req catalogapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// List retrieves a page of items
func (h *ItemHandler) List(c *gin.Context) {
	var filter catalogapp.ItemListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindingError(c, err)
		return
	}

	items, pagination, err := h.itemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithPagination(c, items, pagination)
}

// GetByID retrieves an item by ID
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	resp, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update updates an existing item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req catalogapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.itemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes an item that is not referenced by any quotation
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateType creates a new item type
func (h *ItemHandler) CreateType(c *gin.Context) {
	var req catalogapp.CreateItemTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	resp, err := h.itemTypeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListTypes returns every item type
func (h *ItemHandler) ListTypes(c *gin.Context) {
	types, err := h.itemTypeService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, types)
}
