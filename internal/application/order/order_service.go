package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/daffodil/backend/internal/domain/audit"
	"github.com/daffodil/backend/internal/domain/order"
	"github.com/daffodil/backend/internal/domain/shared"
	"github.com/daffodil/backend/internal/infrastructure/mail"
)

// OrderService handles order recording, fulfillment, and email repair
type OrderService struct {
	orderRepo order.Repository
	recorder  audit.Recorder
	mailer    mail.Mailer
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo order.Repository, recorder audit.Recorder, mailer mail.Mailer, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		recorder:  recorder,
		mailer:    mailer,
		logger:    logger,
	}
}

// Create records a completed checkout
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	items := make([]order.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.Item{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}

	o, err := order.NewOrder(req.OrderNumber, req.CustomerEmail, req.CustomerName, req.Status, req.Total, items)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionCreate, "order", o.OrderNumber, req)

	if o.CustomerEmail != "" {
		subject := fmt.Sprintf("Order %s received", o.OrderNumber)
		body := fmt.Sprintf("Hello %s,\n\nThank you for your order %s. We will let you know once it ships.",
			o.CustomerName, o.OrderNumber)
		if err := s.mailer.Send(o.CustomerEmail, subject, body); err != nil {
			s.logger.Warn("Order confirmation mail not delivered",
				zap.String("order_number", o.OrderNumber),
				zap.Error(err))
		}
	}

	return ToOrderResponse(o), nil
}

// GetByID retrieves an order
func (s *OrderService) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

// List retrieves orders for the back office
func (s *OrderService) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, int64, error) {
	domainFilter := shared.Filter{
		Search:   filter.Search,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Filters:  make(map[string]interface{}),
	}
	if domainFilter.Page == 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize == 0 {
		domainFilter.PageSize = 20
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *ToOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// UpdateStatus sets the fulfillment status and tracking URL, then
// notifies the customer by mail when an address is on file. Mail
// delivery is best effort and never fails the update.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	o, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(req.Status, req.TrackingURL); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, o); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "order", o.OrderNumber, req)

	if o.CustomerEmail != "" {
		subject := fmt.Sprintf("Order %s update: %s", o.OrderNumber, o.Status)
		body := fmt.Sprintf("Hello %s,\n\nYour order %s is now %s.", o.CustomerName, o.OrderNumber, o.Status)
		if o.TrackingURL != "" {
			body += "\nTrack it here: " + o.TrackingURL
		}
		if err := s.mailer.Send(o.CustomerEmail, subject, body); err != nil {
			s.logger.Warn("Order status mail not delivered",
				zap.String("order_number", o.OrderNumber),
				zap.Error(err))
		}
	}

	return ToOrderResponse(o), nil
}

// RepairEmails backfills a customer email onto orders matched by order
// number, or by customer name when no order number matches. Orders
// already bearing the email are left untouched. The scan is unbounded;
// a known limit at larger volumes.
func (s *OrderService) RepairEmails(ctx context.Context, req RepairEmailRequest) (*RepairEmailResponse, error) {
	candidates, err := s.orderRepo.FindEmailCandidates(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	var matched []*order.Order
	for i := range candidates {
		if candidates[i].OrderNumber == req.OrderNumber {
			matched = append(matched, &candidates[i])
		}
	}
	if len(matched) == 0 && req.CustomerName != "" {
		for i := range candidates {
			if candidates[i].CustomerName == req.CustomerName {
				matched = append(matched, &candidates[i])
			}
		}
	}

	updated := 0
	for _, o := range matched {
		if o.HasEmail(req.Email) {
			continue
		}
		o.SetCustomerEmail(req.Email)
		if err := s.orderRepo.Save(ctx, o); err != nil {
			return nil, err
		}
		updated++
	}

	if updated > 0 {
		s.recorder.Record(ctx, audit.ActionUpdate, "order", req.OrderNumber, req)
	}

	return &RepairEmailResponse{UpdatedCount: updated}, nil
}
