package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog/internal/dto"
	"catalog/internal/errs"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindPage(query repositories.PageQuery, filter repositories.ProductFilter) (*repositories.ProductPage, error) {
	args := m.Called(query, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.ProductPage), args.Error(1)
}

func (m *MockProductRepository) FindPageByCategoryID(categoryID uint, query repositories.PageQuery) (*repositories.ProductPage, error) {
	args := m.Called(categoryID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.ProductPage), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(id uint, mutate func(*models.Product)) (*models.Product, error) {
	args := m.Called(id, mutate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll() ([]models.Category, error) {
	args := m.Called()
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(id uint) (*models.Category, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ExistsByID(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

// MockBrandRepository is a mock implementation of repositories.BrandRepository
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) GetAll() ([]models.Brand, error) {
	args := m.Called()
	return args.Get(0).([]models.Brand), args.Error(1)
}

func (m *MockBrandRepository) GetByID(id uint) (*models.Brand, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Brand), args.Error(1)
}

func (m *MockBrandRepository) ExistsByID(id uint) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockBrandRepository) Create(brand *models.Brand) error {
	args := m.Called(brand)
	return args.Error(0)
}

func newProductService(productRepo *MockProductRepository, categoryRepo *MockCategoryRepository, brandRepo *MockBrandRepository) *services.ProductService {
	return services.NewProductService(productRepo, categoryRepo, brandRepo, nil, nil)
}

func TestProductService_GetAllProducts_PageMetadata(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	query := repositories.PageQuery{PageNo: 1, PageSize: 2, SortBy: "id", SortDir: "asc"}
	page := &repositories.ProductPage{
		Items: []models.Product{
			{ID: 3, Title: "Product C", Price: 30.0},
			{ID: 4, Title: "Product D", Price: 40.0},
		},
		TotalElements: 5,
	}
	mockRepo.On("FindPage", query, repositories.ProductFilter{}).Return(page, nil).Once()

	result, err := service.GetAllProducts(query, repositories.ProductFilter{})

	assert.NoError(t, err)
	assert.Len(t, result.Content, 2)
	assert.Equal(t, 1, result.PageNo)
	assert.Equal(t, 2, result.PageSize)
	assert.Equal(t, int64(5), result.TotalElements)
	assert.Equal(t, 3, result.TotalPages)
	assert.False(t, result.Last)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetAllProducts_LastPage(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	query := repositories.PageQuery{PageNo: 2, PageSize: 2, SortBy: "id", SortDir: "asc"}
	page := &repositories.ProductPage{
		Items:         []models.Product{{ID: 5, Title: "Product E", Price: 50.0}},
		TotalElements: 5,
	}
	mockRepo.On("FindPage", query, repositories.ProductFilter{}).Return(page, nil).Once()

	result, err := service.GetAllProducts(query, repositories.ProductFilter{})

	assert.NoError(t, err)
	assert.Len(t, result.Content, 1)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.Last)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductsByCategoryID_CategoryMissing(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	mockCategories.On("ExistsByID", uint(99)).Return(false, nil).Once()

	result, err := service.GetProductsByCategoryID(99, repositories.PageQuery{PageNo: 0, PageSize: 10})

	assert.Error(t, err)
	assert.Nil(t, result)
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Category", notFound.Resource)
	mockCategories.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "FindPageByCategoryID")
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	stored := &models.Product{
		ID:         1,
		Title:      "Product A",
		Price:      10.0,
		CategoryID: 2,
		Category:   models.Category{ID: 2, Name: "laptops"},
		BrandID:    3,
		Brand:      models.Brand{ID: 3, Name: "Acme"},
	}
	mockRepo.On("GetByID", uint(1)).Return(stored, nil).Once()

	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "Product A", product.Title)
	assert.Equal(t, "laptops", product.Category.Name)
	assert.Equal(t, "Acme", product.Brand.Name)

	mockRepo.On("GetByID", uint(99)).Return(nil, errs.NotFound("Product", "id", uint(99))).Once()
	product, err = service.GetProductByID(99)
	assert.Error(t, err)
	assert.Nil(t, product)
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	input := &dto.ProductDTO{Title: "New Product", Price: 50.0, Stock: 20, CategoryID: 1, BrandID: 2}

	mockCategories.On("ExistsByID", uint(1)).Return(true, nil).Once()
	mockBrands.On("ExistsByID", uint(2)).Return(true, nil).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 7
	}).Return(nil).Once()

	created, err := service.CreateProduct(input)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), created.ID)
	assert.Equal(t, "New Product", created.Title)
	mockRepo.AssertExpectations(t)
	mockCategories.AssertExpectations(t)
	mockBrands.AssertExpectations(t)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	input := &dto.ProductDTO{Title: "New Product", Price: 50.0, CategoryID: 42, BrandID: 2}
	mockCategories.On("ExistsByID", uint(42)).Return(false, nil).Once()

	created, err := service.CreateProduct(input)

	assert.Error(t, err)
	assert.Nil(t, created)
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Category", notFound.Resource)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestProductService_UpdateProduct_MutatesOnlyTitleDescriptionPrice(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	stored := models.Product{
		ID:          1,
		Title:       "Old Title",
		Description: "Old description",
		Price:       10.0,
		Stock:       8,
		Rating:      4.5,
		CategoryID:  2,
		BrandID:     3,
	}
	input := &dto.ProductDTO{
		Title:       "New Title",
		Description: "New description",
		Price:       12.5,
		Stock:       999, // must be ignored
		CategoryID:  7,   // must be ignored
		BrandID:     9,   // must be ignored
	}

	mockRepo.On("Update", uint(1), mock.AnythingOfType("func(*models.Product)")).Run(func(args mock.Arguments) {
		mutate := args.Get(1).(func(*models.Product))
		mutate(&stored)
	}).Return(&stored, nil).Once()

	updated, err := service.UpdateProduct(1, input)

	assert.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "New description", updated.Description)
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, 8, stored.Stock)
	assert.Equal(t, 4.5, stored.Rating)
	assert.Equal(t, uint(2), stored.CategoryID)
	assert.Equal(t, uint(3), stored.BrandID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	mockRepo.On("Update", uint(99), mock.AnythingOfType("func(*models.Product)")).
		Return(nil, errs.NotFound("Product", "id", uint(99))).Once()

	updated, err := service.UpdateProduct(99, &dto.ProductDTO{Title: "Does not matter", Price: 1.0})

	assert.Error(t, err)
	assert.Nil(t, updated)
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	mockBrands := new(MockBrandRepository)
	service := newProductService(mockRepo, mockCategories, mockBrands)

	mockRepo.On("Delete", uint(1)).Return(nil).Once()
	err := service.DeleteProduct(1)
	assert.NoError(t, err)

	mockRepo.On("Delete", uint(99)).Return(errs.NotFound("Product", "id", uint(99))).Once()
	err = service.DeleteProduct(99)
	assert.Error(t, err)
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
	mockRepo.AssertExpectations(t)
}
