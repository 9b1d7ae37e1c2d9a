package cms

import (
	"context"
	"time"

	"github.com/daffodil/backend/internal/domain/audit"
	"github.com/daffodil/backend/internal/domain/cms"
	"github.com/daffodil/backend/internal/domain/shared"
)

// ContentService manages back-office pages and homepage promotions
type ContentService struct {
	pageRepo  cms.PageRepository
	promoRepo cms.PromotionRepository
	recorder  audit.Recorder
	now       func() time.Time
}

// NewContentService creates a new ContentService
func NewContentService(pageRepo cms.PageRepository, promoRepo cms.PromotionRepository, recorder audit.Recorder) *ContentService {
	return &ContentService{
		pageRepo:  pageRepo,
		promoRepo: promoRepo,
		recorder:  recorder,
		now:       time.Now,
	}
}

// CreatePage creates a content page
func (s *ContentService) CreatePage(ctx context.Context, req CreatePageRequest) (*PageResponse, error) {
	page, err := cms.NewPage(req.Slug, req.Title, req.Body)
	if err != nil {
		return nil, err
	}

	if _, err := s.pageRepo.FindBySlug(ctx, page.Slug); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A page with this slug already exists")
	}

	if err := s.pageRepo.Save(ctx, page); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionCreate, "page", page.Slug, req)

	return ToPageResponse(page), nil
}

// GetPage retrieves a page regardless of visibility, for the back office
func (s *ContentService) GetPage(ctx context.Context, slug string) (*PageResponse, error) {
	page, err := s.pageRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return ToPageResponse(page), nil
}

// GetActivePage retrieves a page for the public site. Inactive pages
// are reported as missing.
func (s *ContentService) GetActivePage(ctx context.Context, slug string) (*PageResponse, error) {
	page, err := s.pageRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.IsActive {
		return nil, shared.ErrNotFound
	}
	return ToPageResponse(page), nil
}

// ListPages retrieves all pages for the back office
func (s *ContentService) ListPages(ctx context.Context) ([]PageResponse, error) {
	pages, err := s.pageRepo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 200})
	if err != nil {
		return nil, err
	}

	responses := make([]PageResponse, len(pages))
	for i := range pages {
		responses[i] = *ToPageResponse(&pages[i])
	}
	return responses, nil
}

// UpdatePage applies a partial update to a page
func (s *ContentService) UpdatePage(ctx context.Context, slug string, req UpdatePageRequest) (*PageResponse, error) {
	page, err := s.pageRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	title := page.Title
	if req.Title != nil {
		title = *req.Title
	}
	body := page.Body
	if req.Body != nil {
		body = *req.Body
	}
	if err := page.Update(title, body); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		page.SetActive(*req.IsActive)
	}

	if err := s.pageRepo.Save(ctx, page); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "page", page.Slug, req)

	return ToPageResponse(page), nil
}

// DeletePage removes a page
func (s *ContentService) DeletePage(ctx context.Context, slug string) error {
	if err := s.pageRepo.Delete(ctx, slug); err != nil {
		return err
	}
	s.recorder.Record(ctx, audit.ActionDelete, "page", slug, nil)
	return nil
}

// CreatePromotion creates a homepage promotion
func (s *ContentService) CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*PromotionResponse, error) {
	promo, err := cms.NewPromotion(req.Title, req.Subtitle, req.ImageURL, req.LinkURL, req.StartsAt, req.EndsAt, req.SortOrder)
	if err != nil {
		return nil, err
	}

	if err := s.promoRepo.Save(ctx, promo); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionCreate, "promotion", promo.ID.String(), req)

	return ToPromotionResponse(promo), nil
}

// GetPromotion retrieves a promotion for the back office
func (s *ContentService) GetPromotion(ctx context.Context, id string) (*PromotionResponse, error) {
	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPromotionResponse(promo), nil
}

// ListVisiblePromotions returns the promotions currently inside their
// activity window, for the public homepage.
func (s *ContentService) ListVisiblePromotions(ctx context.Context) ([]PromotionResponse, error) {
	promos, err := s.promoRepo.FindVisible(ctx, s.now())
	if err != nil {
		return nil, err
	}

	responses := make([]PromotionResponse, len(promos))
	for i := range promos {
		responses[i] = *ToPromotionResponse(&promos[i])
	}
	return responses, nil
}

// ListPromotions retrieves all promotions for the back office
func (s *ContentService) ListPromotions(ctx context.Context) ([]PromotionResponse, error) {
	promos, err := s.promoRepo.FindAll(ctx, shared.Filter{Page: 1, PageSize: 200})
	if err != nil {
		return nil, err
	}

	responses := make([]PromotionResponse, len(promos))
	for i := range promos {
		responses[i] = *ToPromotionResponse(&promos[i])
	}
	return responses, nil
}

// UpdatePromotion applies a partial update to a promotion
func (s *ContentService) UpdatePromotion(ctx context.Context, id string, req UpdatePromotionRequest) (*PromotionResponse, error) {
	promo, err := s.promoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, shared.NewDomainError("INVALID_TITLE", "Promotion title cannot be empty")
		}
		promo.Title = *req.Title
	}
	if req.Subtitle != nil {
		promo.Subtitle = *req.Subtitle
	}
	if req.ImageURL != nil {
		promo.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		promo.LinkURL = *req.LinkURL
	}
	if req.SortOrder != nil {
		promo.SortOrder = *req.SortOrder
	}
	if req.StartsAt != nil || req.EndsAt != nil {
		startsAt := promo.StartsAt
		if req.StartsAt != nil {
			startsAt = *req.StartsAt
		}
		endsAt := promo.EndsAt
		if req.EndsAt != nil {
			endsAt = *req.EndsAt
		}
		if err := promo.SetWindow(startsAt, endsAt); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		promo.SetActive(*req.IsActive)
	}
	promo.UpdatedAt = s.now()

	if err := s.promoRepo.Save(ctx, promo); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "promotion", promo.ID.String(), req)

	return ToPromotionResponse(promo), nil
}

// DeletePromotion removes a promotion
func (s *ContentService) DeletePromotion(ctx context.Context, id string) error {
	if err := s.promoRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.recorder.Record(ctx, audit.ActionDelete, "promotion", id, nil)
	return nil
}
