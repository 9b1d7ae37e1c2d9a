package catalog

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/daffodil/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Category represents the merchandising category of a product
type Category string

const (
	CategoryFloral   Category = "floral"
	CategorySeasonal Category = "seasonal"
	CategoryGifts    Category = "gifts"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// ImageList is an ordered list of image URLs stored as a JSON column
type ImageList []string

// Value implements driver.Valuer
func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into ImageList", value)
	}
}

// Product represents a single catalog item. Its ID is a URL slug,
// derived from the title when not supplied by the caller.
type Product struct {
	ID          string          `gorm:"type:varchar(120);primaryKey"`
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Category    Category        `gorm:"type:varchar(20);not null;index"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;default:'active';index"`
	Stock       int             `gorm:"not null;default:0"`
	Images      ImageList       `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product. When id is empty it is derived from
// the title. Price and stock are normalized to non-negative values.
func NewProduct(id, title, description string, price decimal.Decimal, category Category, stock int, images []string) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if id == "" {
		id = Slugify(title)
	} else {
		id = Slugify(id)
	}
	if id == "" {
		return nil, shared.NewDomainError("INVALID_ID", "Product id cannot be derived from title")
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Product{
		ID:          id,
		Title:       title,
		Description: description,
		Category:    category,
		Status:      ProductStatusActive,
		Images:      ImageList(images),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.SetPrice(price)
	p.SetStock(stock)
	return p, nil
}

// SetPrice normalizes and sets the price. Negative values are clamped to zero.
func (p *Product) SetPrice(price decimal.Decimal) {
	if price.IsNegative() {
		price = decimal.Zero
	}
	p.Price = price
	p.UpdatedAt = time.Now()
}

// SetStock normalizes and sets the stock level. Negative values are clamped to zero.
func (p *Product) SetStock(stock int) {
	if stock < 0 {
		stock = 0
	}
	p.Stock = stock
	p.UpdatedAt = time.Now()
}

// UpdateDetails updates the product title and description
func (p *Product) UpdateDetails(title, description string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	p.Title = title
	p.Description = description
	p.UpdatedAt = time.Now()
	return nil
}

// SetCategory sets the product category
func (p *Product) SetCategory(category Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	p.Category = category
	p.UpdatedAt = time.Now()
	return nil
}

// SetStatus sets the product status
func (p *Product) SetStatus(status ProductStatus) error {
	if status != ProductStatusActive && status != ProductStatusInactive {
		return shared.NewDomainError("INVALID_STATUS", "Status must be active or inactive")
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	return nil
}

// SetImages replaces the ordered image URL list
func (p *Product) SetImages(images []string) {
	p.Images = ImageList(images)
	p.UpdatedAt = time.Now()
}

// IsActive returns true if the product is active
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// Slugify derives a URL slug from a title: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// validateTitle validates the product title
func validateTitle(title string) error {
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Product title cannot exceed 200 characters")
	}
	return nil
}

// validateCategory validates the category enum
func validateCategory(category Category) error {
	switch category {
	case CategoryFloral, CategorySeasonal, CategoryGifts:
		return nil
	default:
		return shared.NewDomainError("INVALID_CATEGORY", "Category must be one of floral, seasonal, gifts")
	}
}
