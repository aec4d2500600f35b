package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"catalog/internal/errs"
	"catalog/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

// GetAll retrieves all categories ordered by id.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its id.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Category", "id", id)
		}
		return nil, fmt.Errorf("failed to get category by id %d: %w", id, err)
	}
	return &category, nil
}

// ExistsByID reports whether a category with the given id exists.
func (r *GORMCategoryRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category %d: %w", id, err)
	}
	return count > 0, nil
}

// Create persists a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

// NewGORMBrandRepository creates a new instance of GORMBrandRepository.
func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{
		db: db,
	}
}

// GetAll retrieves all brands ordered by id.
func (r *GORMBrandRepository) GetAll() ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.Order("id").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get all brands: %w", err)
	}
	return brands, nil
}

// GetByID retrieves a single brand by its id.
func (r *GORMBrandRepository) GetByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("Brand", "id", id)
		}
		return nil, fmt.Errorf("failed to get brand by id %d: %w", id, err)
	}
	return &brand, nil
}

// ExistsByID reports whether a brand with the given id exists.
func (r *GORMBrandRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Brand{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check brand %d: %w", id, err)
	}
	return count > 0, nil
}

// Create persists a new brand.
func (r *GORMBrandRepository) Create(brand *models.Brand) error {
	if err := r.db.Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}
