package catalog

import (
	"time"

	"github.com/daffodil/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a product. The ID
// is optional; when absent it is derived from the title.
type CreateProductRequest struct {
	ID          string          `json:"id" binding:"max=120"`
	Title       string          `json:"title" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=5000"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" binding:"required,oneof=floral seasonal gifts"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images" binding:"omitempty,dive,max=2000"`
}

// UpdateProductRequest represents a partial update: only non-nil fields
// are applied.
type UpdateProductRequest struct {
	Title       *string          `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string          `json:"description" binding:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" binding:"omitempty,oneof=floral seasonal gifts"`
	Status      *string          `json:"status" binding:"omitempty,oneof=active inactive"`
	Stock       *int             `json:"stock"`
	Images      *[]string        `json:"images"`
}

// ImportProductsRequest represents a bulk product import
type ImportProductsRequest struct {
	Items []CreateProductRequest `json:"items" binding:"required,min=1,dive"`
}

// ImportResult summarizes a bulk import run
type ImportResult struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	Stock       int             `json:"stock"`
	Images      []string        `json:"images"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListFilter represents filter options for the admin product list
type ProductListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive"`
	Category string `form:"category" binding:"omitempty,oneof=floral seasonal gifts"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) *ProductResponse {
	images := []string(p.Images)
	if images == nil {
		images = []string{}
	}
	return &ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    string(p.Category),
		Status:      string(p.Status),
		Stock:       p.Stock,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
