package catalog

import (
	"context"
	"fmt"

	"github.com/daffodil/backend/internal/domain/audit"
	"github.com/daffodil/backend/internal/domain/catalog"
	"github.com/daffodil/backend/internal/domain/shared"
)

// ProductService handles catalog business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	recorder    audit.Recorder
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, recorder audit.Recorder) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		recorder:    recorder,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.ID, req.Title, req.Description, req.Price,
		catalog.Category(req.Category), req.Stock, req.Images)
	if err != nil {
		return nil, err
	}

	exists, err := s.productRepo.ExistsByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this id already exists")
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionCreate, "product", product.ID, req)

	return ToProductResponse(product), nil
}

// Import bulk-creates products. Items that collide with an existing id
// are skipped, invalid items are reported per-index; valid items are
// saved regardless of failures elsewhere in the batch.
func (s *ProductService) Import(ctx context.Context, req ImportProductsRequest) (*ImportResult, error) {
	result := &ImportResult{}

	for i, item := range req.Items {
		product, err := catalog.NewProduct(item.ID, item.Title, item.Description, item.Price,
			catalog.Category(item.Category), item.Stock, item.Images)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("item %d: %v", i, err))
			continue
		}

		exists, err := s.productRepo.ExistsByID(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Skipped++
			continue
		}

		if err := s.productRepo.Save(ctx, product); err != nil {
			return nil, err
		}
		result.Created++
	}

	s.recorder.Record(ctx, audit.ActionImport, "product", "bulk", result)

	return result, nil
}

// GetByID retrieves a product by its slug
func (s *ProductService) GetByID(ctx context.Context, id string) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// ListActive retrieves active products for the storefront, optionally
// filtered by category, newest first.
func (s *ProductService) ListActive(ctx context.Context, category string) ([]ProductResponse, error) {
	if category != "" {
		switch catalog.Category(category) {
		case catalog.CategoryFloral, catalog.CategorySeasonal, catalog.CategoryGifts:
		default:
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category must be one of floral, seasonal, gifts")
		}
	}

	products, err := s.productRepo.FindActive(ctx, catalog.Category(category))
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses, nil
}

// List retrieves all products for the back office
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
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
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}

	products, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = *ToProductResponse(&products[i])
	}
	return responses, total, nil
}

// Update applies a partial update: only fields present in the request
// are touched.
func (s *ProductService) Update(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil || req.Description != nil {
		title := product.Title
		description := product.Description
		if req.Title != nil {
			title = *req.Title
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.UpdateDetails(title, description); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		product.SetPrice(*req.Price)
	}
	if req.Category != nil {
		if err := product.SetCategory(catalog.Category(*req.Category)); err != nil {
			return nil, err
		}
	}
	if req.Status != nil {
		if err := product.SetStatus(catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		product.SetStock(*req.Stock)
	}
	if req.Images != nil {
		product.SetImages(*req.Images)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, audit.ActionUpdate, "product", product.ID, req)

	return ToProductResponse(product), nil
}

// Delete removes a product. Existing orders keep their denormalized
// item snapshots.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, audit.ActionDelete, "product", id, nil)
	return nil
}
