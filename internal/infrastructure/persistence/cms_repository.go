package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/daffodil/backend/internal/domain/cms"
	"github.com/daffodil/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPageRepository implements cms.PageRepository using GORM
type GormPageRepository struct {
	db *gorm.DB
}

// NewGormPageRepository creates a new GormPageRepository
func NewGormPageRepository(db *gorm.DB) *GormPageRepository {
	return &GormPageRepository{db: db}
}

// FindBySlug finds a page by its slug
func (r *GormPageRepository) FindBySlug(ctx context.Context, slug string) (*cms.Page, error) {
	var page cms.Page
	if err := r.db.WithContext(ctx).First(&page, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &page, nil
}

// FindAll finds all pages matching the filter
func (r *GormPageRepository) FindAll(ctx context.Context, filter shared.Filter) ([]cms.Page, error) {
	var pages []cms.Page
	query := r.db.WithContext(ctx).Model(&cms.Page{}).Order("slug ASC")

	if v, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", v)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if err := query.Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Save creates or updates a page
func (r *GormPageRepository) Save(ctx context.Context, page *cms.Page) error {
	return r.db.WithContext(ctx).Save(page).Error
}

// Delete deletes a page
func (r *GormPageRepository) Delete(ctx context.Context, slug string) error {
	result := r.db.WithContext(ctx).Delete(&cms.Page{}, "slug = ?", slug)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPageRepository implements cms.PageRepository
var _ cms.PageRepository = (*GormPageRepository)(nil)

// GormPromotionRepository implements cms.PromotionRepository using GORM
type GormPromotionRepository struct {
	db *gorm.DB
}

// NewGormPromotionRepository creates a new GormPromotionRepository
func NewGormPromotionRepository(db *gorm.DB) *GormPromotionRepository {
	return &GormPromotionRepository{db: db}
}

// FindByID finds a promotion by ID
func (r *GormPromotionRepository) FindByID(ctx context.Context, id string) (*cms.Promotion, error) {
	var promotion cms.Promotion
	if err := r.db.WithContext(ctx).First(&promotion, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &promotion, nil
}

// FindVisible returns active promotions whose window contains the given
// instant, ordered by sort_order.
func (r *GormPromotionRepository) FindVisible(ctx context.Context, now time.Time) ([]cms.Promotion, error) {
	var promotions []cms.Promotion
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND starts_at <= ? AND ends_at >= ?", true, now, now).
		Order("sort_order ASC").
		Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// FindAll finds all promotions matching the filter
func (r *GormPromotionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]cms.Promotion, error) {
	var promotions []cms.Promotion
	query := r.db.WithContext(ctx).Model(&cms.Promotion{}).Order("sort_order ASC")

	if v, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", v)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	if err := query.Find(&promotions).Error; err != nil {
		return nil, err
	}
	return promotions, nil
}

// Save creates or updates a promotion
func (r *GormPromotionRepository) Save(ctx context.Context, promotion *cms.Promotion) error {
	return r.db.WithContext(ctx).Save(promotion).Error
}

// Delete deletes a promotion
func (r *GormPromotionRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&cms.Promotion{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPromotionRepository implements cms.PromotionRepository
var _ cms.PromotionRepository = (*GormPromotionRepository)(nil)
