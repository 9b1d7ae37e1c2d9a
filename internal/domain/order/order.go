package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/daffodil/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item is a denormalized snapshot of a purchased product. Orders keep
// their own copy so deleting a catalog product does not cascade.
type Item struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Items is an ordered list of line items stored as a JSON column
type Items []Item

// Value implements driver.Valuer
func (i Items) Value() (driver.Value, error) {
	if i == nil {
		i = Items{}
	}
	return json.Marshal(i)
}

// Scan implements sql.Scanner
func (i *Items) Scan(value interface{}) error {
	if value == nil {
		*i = Items{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("cannot scan %T into Items", value)
	}
}

// Order represents a completed checkout. The total is caller-supplied
// and is never recomputed from the items.
type Order struct {
	shared.BaseEntity
	OrderNumber   string          `gorm:"type:varchar(50);not null;index"`
	CustomerEmail string          `gorm:"type:varchar(255);index"`
	CustomerName  string          `gorm:"type:varchar(200)"`
	Status        string          `gorm:"type:varchar(50);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Items         Items           `gorm:"type:jsonb"`
	TrackingURL   string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order from a completed checkout
func NewOrder(orderNumber, customerEmail, customerName, status string, total decimal.Decimal, items []Item) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Order must contain at least one item")
	}
	if status == "" {
		status = "pending"
	}

	return &Order{
		BaseEntity:    shared.NewBaseEntity(),
		OrderNumber:   orderNumber,
		CustomerEmail: customerEmail,
		CustomerName:  customerName,
		Status:        status,
		Total:         total,
		Items:         Items(items),
	}, nil
}

// UpdateStatus sets the fulfillment status and, when supplied, the tracking URL
func (o *Order) UpdateStatus(status, trackingURL string) error {
	if status == "" {
		return shared.NewDomainError("INVALID_STATUS", "Status cannot be empty")
	}
	o.Status = status
	if trackingURL != "" {
		o.TrackingURL = trackingURL
	}
	o.UpdatedAt = time.Now()
	return nil
}

// SetCustomerEmail backfills the customer email
func (o *Order) SetCustomerEmail(email string) {
	o.CustomerEmail = email
	o.UpdatedAt = time.Now()
}

// HasEmail returns true if the order carries the given customer email
func (o *Order) HasEmail(email string) bool {
	return o.CustomerEmail == email
}
