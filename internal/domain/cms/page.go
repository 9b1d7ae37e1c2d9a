package cms

import (
	"context"
	"time"

	"github.com/daffodil/backend/internal/domain/catalog"
	"github.com/daffodil/backend/internal/domain/shared"
)

// Page is a static content page edited in the back office and read publicly
type Page struct {
	Slug      string `gorm:"type:varchar(120);primaryKey"`
	Title     string `gorm:"type:varchar(200);not null"`
	Body      string `gorm:"type:text"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Page) TableName() string {
	return "cms_pages"
}

// NewPage creates a content page. The slug is derived from the title
// when not supplied.
func NewPage(slug, title, body string) (*Page, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Page title cannot be empty")
	}
	if slug == "" {
		slug = catalog.Slugify(title)
	} else {
		slug = catalog.Slugify(slug)
	}
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Page slug cannot be derived from title")
	}

	now := time.Now()
	return &Page{
		Slug:      slug,
		Title:     title,
		Body:      body,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update replaces the page content
func (p *Page) Update(title, body string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Page title cannot be empty")
	}
	p.Title = title
	p.Body = body
	p.UpdatedAt = time.Now()
	return nil
}

// SetActive toggles public visibility
func (p *Page) SetActive(active bool) {
	p.IsActive = active
	p.UpdatedAt = time.Now()
}

// PageRepository defines persistence operations for pages
type PageRepository interface {
	FindBySlug(ctx context.Context, slug string) (*Page, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Page, error)
	Save(ctx context.Context, page *Page) error
	Delete(ctx context.Context, slug string) error
}
