package repositories

import (
	"catalog/internal/models"
)

// PageQuery carries pagination and sorting parameters. PageNo is zero-based.
// SortDir matches "ASC" case-insensitively; anything else sorts descending.
type PageQuery struct {
	PageNo   int
	PageSize int
	SortBy   string
	SortDir  string
}

// ProductFilter narrows a product listing. Title and Description are
// substring matches; nil price bounds are ignored, set bounds are inclusive.
type ProductFilter struct {
	Title       string
	Description string
	MinPrice    *float64
	MaxPrice    *float64
}

// ProductPage is one page of products plus the unpaginated total.
type ProductPage struct {
	Items         []models.Product
	TotalElements int64
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	FindPage(query PageQuery, filter ProductFilter) (*ProductPage, error)
	FindPageByCategoryID(categoryID uint, query PageQuery) (*ProductPage, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	// Update loads the product, applies mutate to it and persists the result
	// atomically. It returns the updated product.
	Update(id uint, mutate func(*models.Product)) (*models.Product, error)
	Delete(id uint) error
}
