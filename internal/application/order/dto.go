package order

import (
	"time"

	"github.com/daffodil/backend/internal/domain/order"
	"github.com/shopspring/decimal"
)

// ItemRequest is a single order line as submitted at checkout
type ItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest records a completed checkout. The total is taken
// as submitted and never recomputed from the items.
type CreateOrderRequest struct {
	OrderNumber   string          `json:"order_number" binding:"required,max=50"`
	CustomerEmail string          `json:"customer_email" binding:"omitempty,email"`
	CustomerName  string          `json:"customer_name" binding:"max=200"`
	Status        string          `json:"status" binding:"max=50"`
	Total         decimal.Decimal `json:"total"`
	Items         []ItemRequest   `json:"items" binding:"required,min=1"`
}

// UpdateStatusRequest sets the fulfillment status and optional tracking URL
type UpdateStatusRequest struct {
	Status      string `json:"status" binding:"required,max=50"`
	TrackingURL string `json:"tracking_url" binding:"omitempty,url"`
}

// RepairEmailRequest backfills a customer email onto matching orders
type RepairEmailRequest struct {
	Email        string `json:"email" binding:"required,email"`
	OrderNumber  string `json:"order_number" binding:"required,max=50"`
	CustomerName string `json:"customer_name" binding:"max=200"`
}

// RepairEmailResponse reports how many orders were actually modified
type RepairEmailResponse struct {
	UpdatedCount int `json:"updatedCount"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            string          `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CustomerEmail string          `json:"customer_email"`
	CustomerName  string          `json:"customer_name"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	Items         []ItemRequest   `json:"items"`
	TrackingURL   string          `json:"tracking_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// OrderListFilter represents filter options for the admin order list
type OrderListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *order.Order) *OrderResponse {
	items := make([]ItemRequest, len(o.Items))
	for i, item := range o.Items {
		items[i] = ItemRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return &OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		Status:        o.Status,
		Total:         o.Total,
		Items:         items,
		TrackingURL:   o.TrackingURL,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}
