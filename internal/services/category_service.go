package services

import (
	"catalog/internal/dto"
	"catalog/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]dto.CategoryDTO, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryDTO, 0, len(categories))
	for i := range categories {
		result = append(result, dto.ToCategoryDTO(&categories[i]))
	}
	return result, nil
}

// GetCategoryByID retrieves a single category by its id.
func (s *CategoryService) GetCategoryByID(id uint) (*dto.CategoryDTO, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	result := dto.ToCategoryDTO(category)
	return &result, nil
}

// CreateCategory persists a new category.
func (s *CategoryService) CreateCategory(input *dto.CategoryDTO) (*dto.CategoryDTO, error) {
	category := dto.ToCategoryEntity(input)
	category.ID = 0
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	result := dto.ToCategoryDTO(&category)
	return &result, nil
}
