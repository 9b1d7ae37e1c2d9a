package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutapp "github.com/daffodil/backend/internal/application/checkout"
	"github.com/daffodil/backend/internal/domain/payment"
	"github.com/daffodil/backend/internal/interfaces/http/dto"
)

// CheckoutHandler handles payment checkout endpoints
type CheckoutHandler struct {
	BaseHandler
	checkoutService *checkoutapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *checkoutapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// CreateStripeSession opens a hosted Stripe Checkout session
func (h *CheckoutHandler) CreateStripeSession(c *gin.Context) {
	var req checkoutapp.StripeCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	session, err := h.checkoutService.CreateStripeSession(c.Request.Context(), req)
	if err != nil {
		h.handleGatewayError(c, err)
		return
	}
	h.Created(c, session)
}

// CreatePayPalOrder opens a PayPal order for the submitted cart
func (h *CheckoutHandler) CreatePayPalOrder(c *gin.Context) {
	var req checkoutapp.PayPalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.checkoutService.CreatePayPalOrder(c.Request.Context(), req)
	if err != nil {
		h.handleGatewayError(c, err)
		return
	}
	h.Created(c, order)
}

// CapturePayPalOrder captures an approved PayPal order
func (h *CheckoutHandler) CapturePayPalOrder(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		h.BadRequest(c, "PayPal order ID is required")
		return
	}

	capture, err := h.checkoutService.CapturePayPalOrder(c.Request.Context(), orderID)
	if err != nil {
		h.handleGatewayError(c, err)
		return
	}
	h.Success(c, capture)
}

// handleGatewayError maps payment gateway errors to HTTP responses
func (h *CheckoutHandler) handleGatewayError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrEmptyCart):
		h.BadRequest(c, err.Error())
	case errors.Is(err, payment.ErrMissingCredentials):
		h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeUpstream, "Payment gateway is not configured")
	case errors.Is(err, payment.ErrGatewayRequestFailed), errors.Is(err, payment.ErrInvalidGatewayReply):
		h.Error(c, http.StatusBadGateway, dto.ErrCodeUpstream, err.Error())
	default:
		h.HandleDomainError(c, err)
	}
}

// RegisterPublicRoutes registers storefront checkout routes
func (h *CheckoutHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	checkout := rg.Group("/checkout")
	{
		checkout.POST("/stripe", h.CreateStripeSession)
		checkout.POST("/paypal", h.CreatePayPalOrder)
		checkout.POST("/paypal/:id/capture", h.CapturePayPalOrder)
	}
}
