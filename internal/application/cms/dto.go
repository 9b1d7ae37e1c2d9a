package cms

import (
	"time"

	"github.com/daffodil/backend/internal/domain/cms"
)

// CreatePageRequest creates a content page; the slug falls back to the title
type CreatePageRequest struct {
	Slug  string `json:"slug" binding:"omitempty,max=120"`
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body"`
}

// UpdatePageRequest replaces a page's content and visibility
type UpdatePageRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Body     *string `json:"body"`
	IsActive *bool   `json:"is_active"`
}

// PageResponse represents a content page in API responses
type PageResponse struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePromotionRequest creates a homepage promotion
type CreatePromotionRequest struct {
	Title     string    `json:"title" binding:"required,max=200"`
	Subtitle  string    `json:"subtitle" binding:"max=300"`
	ImageURL  string    `json:"image_url" binding:"omitempty,url"`
	LinkURL   string    `json:"link_url" binding:"omitempty,url"`
	StartsAt  time.Time `json:"starts_at" binding:"required"`
	EndsAt    time.Time `json:"ends_at" binding:"required"`
	SortOrder int       `json:"sort_order"`
}

// UpdatePromotionRequest applies a partial update to a promotion
type UpdatePromotionRequest struct {
	Title     *string    `json:"title" binding:"omitempty,max=200"`
	Subtitle  *string    `json:"subtitle" binding:"omitempty,max=300"`
	ImageURL  *string    `json:"image_url" binding:"omitempty,url"`
	LinkURL   *string    `json:"link_url" binding:"omitempty,url"`
	IsActive  *bool      `json:"is_active"`
	StartsAt  *time.Time `json:"starts_at"`
	EndsAt    *time.Time `json:"ends_at"`
	SortOrder *int       `json:"sort_order"`
}

// PromotionResponse represents a promotion in API responses
type PromotionResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	IsActive  bool      `json:"is_active"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToPageResponse converts a domain Page to PageResponse
func ToPageResponse(p *cms.Page) *PageResponse {
	return &PageResponse{
		Slug:      p.Slug,
		Title:     p.Title,
		Body:      p.Body,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// ToPromotionResponse converts a domain Promotion to PromotionResponse
func ToPromotionResponse(p *cms.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:        p.ID.String(),
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		ImageURL:  p.ImageURL,
		LinkURL:   p.LinkURL,
		IsActive:  p.IsActive,
		StartsAt:  p.StartsAt,
		EndsAt:    p.EndsAt,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
