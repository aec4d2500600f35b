package services

import (
	"context"
	"log"

	"catalog/internal/cache"
	"catalog/internal/dto"
	"catalog/internal/errs"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ProductService handles business logic related to products: pagination,
// filtering, entity/DTO mapping and catalog event publication.
type ProductService struct {
	repo         repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
	brandRepo    repositories.BrandRepository
	productCache *cache.ProductCache // nil disables caching
	mqClient     *rabbitmq.Client    // nil disables event publication
}

// NewProductService creates a new ProductService. productCache and mqClient
// may be nil.
func NewProductService(
	repo repositories.ProductRepository,
	categoryRepo repositories.CategoryRepository,
	brandRepo repositories.BrandRepository,
	productCache *cache.ProductCache,
	mqClient *rabbitmq.Client,
) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productCache: productCache,
		mqClient:     mqClient,
	}
}

func (s *ProductService) toPageResponse(page *repositories.ProductPage, query repositories.PageQuery) *dto.PageResponse[dto.ProductDTO] {
	content := make([]dto.ProductDTO, 0, len(page.Items))
	for i := range page.Items {
		content = append(content, dto.ToProductDTO(&page.Items[i]))
	}
	return dto.NewPageResponse(content, query.PageNo, query.PageSize, page.TotalElements)
}

// GetAllProducts retrieves one page of products matching the filter.
func (s *ProductService) GetAllProducts(query repositories.PageQuery, filter repositories.ProductFilter) (*dto.PageResponse[dto.ProductDTO], error) {
	page, err := s.repo.FindPage(query, filter)
	if err != nil {
		return nil, err
	}
	return s.toPageResponse(page, query), nil
}

// GetProductsByCategoryID retrieves one page of products belonging to the
// category, failing with a not-found error when the category is unknown.
func (s *ProductService) GetProductsByCategoryID(categoryID uint, query repositories.PageQuery) (*dto.PageResponse[dto.ProductDTO], error) {
	exists, err := s.categoryRepo.ExistsByID(categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NotFound("Category", "id", categoryID)
	}

	page, err := s.repo.FindPageByCategoryID(categoryID, query)
	if err != nil {
		return nil, err
	}
	return s.toPageResponse(page, query), nil
}

// GetProductByID retrieves a single product, read-through cached.
func (s *ProductService) GetProductByID(id uint) (*dto.ProductDTO, error) {
	ctx := context.Background()
	if cached, ok := s.productCache.Get(ctx, id); ok {
		return cached, nil
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	result := dto.ToProductDTO(product)
	s.productCache.Set(ctx, &result)
	return &result, nil
}

// CreateProduct validates the category and brand references, persists the
// product and publishes a product.created event.
func (s *ProductService) CreateProduct(input *dto.ProductDTO) (*dto.ProductDTO, error) {
	if exists, err := s.categoryRepo.ExistsByID(input.CategoryID); err != nil {
		return nil, err
	} else if !exists {
		return nil, errs.NotFound("Category", "id", input.CategoryID)
	}
	if exists, err := s.brandRepo.ExistsByID(input.BrandID); err != nil {
		return nil, err
	} else if !exists {
		return nil, errs.NotFound("Brand", "id", input.BrandID)
	}

	product := dto.ToProductEntity(input)
	product.ID = 0
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}

	result := dto.ToProductDTO(&product)
	s.publishEvent(rabbitmq.ProductCreated, result.ID)
	return &result, nil
}

// UpdateProduct mutates only the title, description and price of an existing
// product, leaving every other field and association untouched.
func (s *ProductService) UpdateProduct(id uint, input *dto.ProductDTO) (*dto.ProductDTO, error) {
	product, err := s.repo.Update(id, func(p *models.Product) {
		p.Title = input.Title
		p.Description = input.Description
		p.Price = input.Price
	})
	if err != nil {
		return nil, err
	}

	s.productCache.Invalidate(context.Background(), id)
	result := dto.ToProductDTO(product)
	s.publishEvent(rabbitmq.ProductUpdated, id)
	return &result, nil
}

// DeleteProduct removes a product by id.
func (s *ProductService) DeleteProduct(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.productCache.Invalidate(context.Background(), id)
	s.publishEvent(rabbitmq.ProductDeleted, id)
	return nil
}

// publishEvent sends a product lifecycle event, logging failures instead of
// failing the request: the write already committed.
func (s *ProductService) publishEvent(event string, productID uint) {
	if s.mqClient == nil {
		return
	}
	payload := map[string]any{"product_id": productID}
	if err := s.mqClient.PublishProductEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s for product %d: %v", event, productID, err)
	}
}
