package repositories

import (
	"sort"
	"strings"
	"sync"

	"catalog/internal/errs"
	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository, used in tests and local development without a database.
type MemoryProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

func matchesFilter(p *models.Product, filter ProductFilter) bool {
	if filter.Title != "" && !strings.Contains(p.Title, filter.Title) {
		return false
	}
	if filter.Description != "" && !strings.Contains(p.Description, filter.Description) {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	return true
}

func sortProducts(items []models.Product, query PageQuery) {
	asc := strings.EqualFold(query.SortDir, "asc")
	less := func(a, b *models.Product) bool {
		switch query.SortBy {
		case "title":
			return a.Title < b.Title
		case "price":
			return a.Price < b.Price
		case "rating":
			return a.Rating < b.Rating
		case "stock":
			return a.Stock < b.Stock
		default:
			return a.ID < b.ID
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if asc {
			return less(&items[i], &items[j])
		}
		return less(&items[j], &items[i])
	})
}

func paginate(items []models.Product, query PageQuery) *ProductPage {
	sortProducts(items, query)
	total := int64(len(items))
	start := query.PageNo * query.PageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + query.PageSize
	if end > len(items) {
		end = len(items)
	}
	return &ProductPage{Items: items[start:end], TotalElements: total}
}

// FindPage returns one page of products matching the filter.
func (r *MemoryProductRepository) FindPage(query PageQuery, filter ProductFilter) (*ProductPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesFilter(&p, filter) {
			matched = append(matched, p)
		}
	}
	return paginate(matched, query), nil
}

// FindPageByCategoryID returns one page of products for a category.
func (r *MemoryProductRepository) FindPageByCategoryID(categoryID uint, query PageQuery) (*ProductPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	return paginate(matched, query), nil
}

// GetByID returns a product by its id.
func (r *MemoryProductRepository) GetByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errs.NotFound("Product", "id", id)
	}
	return &product, nil
}

// Create adds a new product, assigning an id when missing.
func (r *MemoryProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
	}
	if product.ID >= r.nextID {
		r.nextID = product.ID + 1
	}
	r.products[product.ID] = *product
	return nil
}

// Update applies mutate to the stored product under the repository lock.
func (r *MemoryProductRepository) Update(id uint, mutate func(*models.Product)) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errs.NotFound("Product", "id", id)
	}
	mutate(&product)
	r.products[id] = product
	return &product, nil
}

// Delete removes a product by its id.
func (r *MemoryProductRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return errs.NotFound("Product", "id", id)
	}
	delete(r.products, id)
	return nil
}
