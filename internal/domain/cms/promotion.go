package cms

import (
	"context"
	"time"

	"github.com/daffodil/backend/internal/domain/shared"
)

// Promotion is a homepage promotional section with an activity window
type Promotion struct {
	shared.BaseEntity
	Title     string    `gorm:"type:varchar(200);not null"`
	Subtitle  string    `gorm:"type:varchar(300)"`
	ImageURL  string    `gorm:"type:text"`
	LinkURL   string    `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	StartsAt  time.Time `gorm:"not null;index"`
	EndsAt    time.Time `gorm:"not null;index"`
	SortOrder int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Promotion) TableName() string {
	return "cms_promotions"
}

// NewPromotion creates a promotion
func NewPromotion(title, subtitle, imageURL, linkURL string, startsAt, endsAt time.Time, sortOrder int) (*Promotion, error) {
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Promotion title cannot be empty")
	}
	if endsAt.Before(startsAt) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Promotion end date cannot precede start date")
	}

	return &Promotion{
		BaseEntity: shared.NewBaseEntity(),
		Title:      title,
		Subtitle:   subtitle,
		ImageURL:   imageURL,
		LinkURL:    linkURL,
		IsActive:   true,
		StartsAt:   startsAt,
		EndsAt:     endsAt,
		SortOrder:  sortOrder,
	}, nil
}

// IsVisibleAt reports whether the promotion should be publicly visible
// at the given instant: active and start_date <= now <= end_date.
func (p *Promotion) IsVisibleAt(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartsAt) && !now.After(p.EndsAt)
}

// SetActive toggles the promotion on or off
func (p *Promotion) SetActive(active bool) {
	p.IsActive = active
	p.UpdatedAt = time.Now()
}

// SetWindow replaces the activity window
func (p *Promotion) SetWindow(startsAt, endsAt time.Time) error {
	if endsAt.Before(startsAt) {
		return shared.NewDomainError("INVALID_WINDOW", "Promotion end date cannot precede start date")
	}
	p.StartsAt = startsAt
	p.EndsAt = endsAt
	p.UpdatedAt = time.Now()
	return nil
}

// PromotionRepository defines persistence operations for promotions
type PromotionRepository interface {
	FindByID(ctx context.Context, id string) (*Promotion, error)
	// FindVisible returns promotions whose activity window contains the
	// given instant, ordered by sort_order.
	FindVisible(ctx context.Context, now time.Time) ([]Promotion, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Promotion, error)
	Save(ctx context.Context, promotion *Promotion) error
	Delete(ctx context.Context, id string) error
}
