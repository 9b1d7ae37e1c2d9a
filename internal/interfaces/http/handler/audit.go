package handler

import (
	"github.com/gin-gonic/gin"

	auditapp "github.com/daffodil/backend/internal/application/audit"
)

// AuditHandler handles the back-office audit log
type AuditHandler struct {
	BaseHandler
	auditService *auditapp.Service
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditService *auditapp.Service) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// List returns audit entries, newest first
func (h *AuditHandler) List(c *gin.Context) {
	var filter auditapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PageSize == 0 {
		filter.PageSize = 50
	}

	entries, total, err := h.auditService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, entries, total, filter.Page, filter.PageSize)
}

// RegisterAdminRoutes registers back-office audit routes
func (h *AuditHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/audit", h.List)
}
