package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/daffodil/backend/internal/application/catalog"
	"github.com/daffodil/backend/internal/interfaces/http/dto"
)

// ProductHandler handles catalog API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// CreateProductRequest is the wire form of a product creation. Price and
// stock tolerate numeric strings and coerce unparseable input to zero.
type CreateProductRequest struct {
	ID          string              `json:"id" binding:"max=120"`
	Title       string              `json:"title" binding:"required,min=1,max=200"`
	Description string              `json:"description" binding:"max=5000"`
	Price       dto.FlexibleDecimal `json:"price"`
	Category    string              `json:"category" binding:"required,oneof=floral seasonal gifts"`
	Stock       dto.FlexibleInt     `json:"stock"`
	Images      []string            `json:"images" binding:"omitempty,dive,max=2000"`
}

// ImportProductsRequest is the wire form of a bulk product import
type ImportProductsRequest struct {
	Items []CreateProductRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateProductRequest is the wire form of a partial product update
type UpdateProductRequest struct {
	Title       *string              `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string              `json:"description" binding:"omitempty,max=5000"`
	Price       *dto.FlexibleDecimal `json:"price"`
	Category    *string              `json:"category" binding:"omitempty,oneof=floral seasonal gifts"`
	Status      *string              `json:"status" binding:"omitempty,oneof=active inactive"`
	Stock       *dto.FlexibleInt     `json:"stock"`
	Images      *[]string            `json:"images"`
}

// ListPublic returns active products for the storefront
func (h *ProductHandler) ListPublic(c *gin.Context) {
	products, err := h.productService.ListActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, products)
}

// GetByID returns a single product
func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// List returns products for the back office
func (h *ProductHandler) List(c *gin.Context) {
	var filter catalogapp.ProductListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 20
	}

	products, total, err := h.productService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, products, total, filter.Page, filter.PageSize)
}

// Create creates a product
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := catalogapp.CreateProductRequest{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price.Decimal,
		Category:    req.Category,
		Stock:       req.Stock.Int(),
		Images:      req.Images,
	}

	product, err := h.productService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// Import bulk-creates products
func (h *ProductHandler) Import(c *gin.Context) {
	var req ImportProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := catalogapp.ImportProductsRequest{
		Items: make([]catalogapp.CreateProductRequest, len(req.Items)),
	}
	for i, item := range req.Items {
		appReq.Items[i] = catalogapp.CreateProductRequest{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Price:       item.Price.Decimal,
			Category:    item.Category,
			Stock:       item.Stock.Int(),
			Images:      item.Images,
		}
	}

	result, err := h.productService.Import(c.Request.Context(), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, result)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := catalogapp.UpdateProductRequest{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      req.Status,
		Images:      req.Images,
	}
	if req.Price != nil {
		appReq.Price = &req.Price.Decimal
	}
	if req.Stock != nil {
		stock := req.Stock.Int()
		appReq.Stock = &stock
	}

	product, err := h.productService.Update(c.Request.Context(), c.Param("id"), appReq)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete removes a product
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterPublicRoutes registers storefront catalog routes
func (h *ProductHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListPublic)
		products.GET("/:id", h.GetByID)
	}
}

// RegisterAdminRoutes registers back-office catalog routes
func (h *ProductHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.GetByID)
		products.POST("", h.Create)
		products.POST("/import", h.Import)
		products.PATCH("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
