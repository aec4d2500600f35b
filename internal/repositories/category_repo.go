package repositories

import "catalog/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	ExistsByID(id uint) (bool, error)
	Create(category *models.Category) error
}

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	GetAll() ([]models.Brand, error)
	GetByID(id uint) (*models.Brand, error)
	ExistsByID(id uint) (bool, error)
	Create(brand *models.Brand) error
}
