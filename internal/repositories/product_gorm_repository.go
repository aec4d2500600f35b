package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"catalog/internal/errs"
	"catalog/internal/models"
)

// productSortColumns whitelists the columns a client may sort by. Anything
// outside this map falls back to "id".
var productSortColumns = map[string]string{
	"id":         "id",
	"title":      "title",
	"price":      "price",
	"rating":     "rating",
	"stock":      "stock",
	"created_at": "created_at",
}

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// orderClause builds a safe ORDER BY fragment from a PageQuery.
func orderClause(query PageQuery) string {
	column, ok := productSortColumns[query.SortBy]
	if !ok {
		column = "id"
	}
	direction := "desc"
	if strings.EqualFold(query.SortDir, "asc") {
		direction = "asc"
	}
	return column + " " + direction
}

// FindPage retrieves one page of products matching the filter.
func (r *GORMProductRepository) FindPage(query PageQuery, filter ProductFilter) (*ProductPage, error) {
	tx := r.db.Model(&models.Product{})
	if filter.Title != "" {
		tx = tx.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Description != "" {
		tx = tx.Where("description LIKE ?", "%"+filter.Description+"%")
	}
	if filter.MinPrice != nil {
		tx = tx.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		tx = tx.Where("price <= ?", *filter.MaxPrice)
	}
	return r.findPage(tx, query)
}

// FindPageByCategoryID retrieves one page of products belonging to a category.
func (r *GORMProductRepository) FindPageByCategoryID(categoryID uint, query PageQuery) (*ProductPage, error) {
	tx := r.db.Model(&models.Product{}).Where("category_id = ?", categoryID)
	return r.findPage(tx, query)
}

func (r *GORMProductRepository) findPage(tx *gorm.DB, query PageQuery) (*ProductPage, error) {
	var total int64
	// Count on a cloned session so the pagination query below starts clean.
	if err := tx.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := tx.
		Preload("Category").
		Preload("Brand").
		Order(orderClause(query)).
		Offset(query.PageNo * query.PageSize).
		Limit(query.PageSize).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return &ProductPage{Items: products, TotalElements: total}, nil
}

// GetByID retrieves a single product with its category and brand preloaded.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").Preload("Brand").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Product", "id", id)
		}
		return nil, fmt.Errorf("failed to get product by id %d: %w", id, err)
	}
	return &product, nil
}

// Create persists a new product and reloads its associations.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	if err := r.db.Preload("Category").Preload("Brand").First(product, product.ID).Error; err != nil {
		return fmt.Errorf("failed to reload created product: %w", err)
	}
	return nil
}

// Update applies mutate to the stored product inside a single transaction.
func (r *GORMProductRepository) Update(id uint, mutate func(*models.Product)) (*models.Product, error) {
	var product models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Category").Preload("Brand").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NotFound("Product", "id", id)
			}
			return fmt.Errorf("failed to load product %d for update: %w", id, err)
		}
		mutate(&product)
		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to save product %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes a product by id.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("Product", "id", id)
	}
	return nil
}
