package handler

import (
	"github.com/gin-gonic/gin"

	cmsapp "github.com/daffodil/backend/internal/application/cms"
)

// CMSHandler handles content page and promotion endpoints
type CMSHandler struct {
	BaseHandler
	contentService *cmsapp.ContentService
}

// NewCMSHandler creates a new CMSHandler
func NewCMSHandler(contentService *cmsapp.ContentService) *CMSHandler {
	return &CMSHandler{
		contentService: contentService,
	}
}

// GetPublicPage returns an active page for the storefront
func (h *CMSHandler) GetPublicPage(c *gin.Context) {
	page, err := h.contentService.GetActivePage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, page)
}

// ListVisiblePromotions returns promotions inside their activity window
func (h *CMSHandler) ListVisiblePromotions(c *gin.Context) {
	promos, err := h.contentService.ListVisiblePromotions(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, promos)
}

// ListPages returns all pages for the back office
func (h *CMSHandler) ListPages(c *gin.Context) {
	pages, err := h.contentService.ListPages(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, pages)
}

// GetPage returns a page regardless of visibility
func (h *CMSHandler) GetPage(c *gin.Context) {
	page, err := h.contentService.GetPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, page)
}

// CreatePage creates a content page
func (h *CMSHandler) CreatePage(c *gin.Context) {
	var req cmsapp.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.contentService.CreatePage(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, page)
}

// UpdatePage applies a partial update to a page
func (h *CMSHandler) UpdatePage(c *gin.Context) {
	var req cmsapp.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.contentService.UpdatePage(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, page)
}

// DeletePage removes a page
func (h *CMSHandler) DeletePage(c *gin.Context) {
	if err := h.contentService.DeletePage(c.Request.Context(), c.Param("slug")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListPromotions returns all promotions for the back office
func (h *CMSHandler) ListPromotions(c *gin.Context) {
	promos, err := h.contentService.ListPromotions(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, promos)
}

// GetPromotion returns a single promotion for the back office
func (h *CMSHandler) GetPromotion(c *gin.Context) {
	promo, err := h.contentService.GetPromotion(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, promo)
}

// CreatePromotion creates a promotion
func (h *CMSHandler) CreatePromotion(c *gin.Context) {
	var req cmsapp.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promo, err := h.contentService.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, promo)
}

// UpdatePromotion applies a partial update to a promotion
func (h *CMSHandler) UpdatePromotion(c *gin.Context) {
	var req cmsapp.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promo, err := h.contentService.UpdatePromotion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, promo)
}

// DeletePromotion removes a promotion
func (h *CMSHandler) DeletePromotion(c *gin.Context) {
	if err := h.contentService.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterPublicRoutes registers storefront content routes
func (h *CMSHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/pages/:slug", h.GetPublicPage)
	rg.GET("/promotions", h.ListVisiblePromotions)
}

// RegisterAdminRoutes registers back-office content routes
func (h *CMSHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	pages := rg.Group("/pages")
	{
		pages.GET("", h.ListPages)
		pages.GET("/:slug", h.GetPage)
		pages.POST("", h.CreatePage)
		pages.PATCH("/:slug", h.UpdatePage)
		pages.DELETE("/:slug", h.DeletePage)
	}

	promos := rg.Group("/promotions")
	{
		promos.GET("", h.ListPromotions)
		promos.GET("/:id", h.GetPromotion)
		promos.POST("", h.CreatePromotion)
		promos.PATCH("/:id", h.UpdatePromotion)
		promos.DELETE("/:id", h.DeletePromotion)
	}
}
