package services

import (
	"catalog/internal/dto"
	"catalog/internal/repositories"
)

// BrandService handles business logic related to brands.
type BrandService struct {
	repo repositories.BrandRepository
}

// NewBrandService creates a new BrandService.
func NewBrandService(repo repositories.BrandRepository) *BrandService {
	return &BrandService{
		repo: repo,
	}
}

// GetAllBrands retrieves all brands.
func (s *BrandService) GetAllBrands() ([]dto.BrandDTO, error) {
	brands, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	result := make([]dto.BrandDTO, 0, len(brands))
	for i := range brands {
		result = append(result, dto.ToBrandDTO(&brands[i]))
	}
	return result, nil
}

// GetBrandByID retrieves a single brand by its id.
func (s *BrandService) GetBrandByID(id uint) (*dto.BrandDTO, error) {
	brand, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	result := dto.ToBrandDTO(brand)
	return &result, nil
}

// CreateBrand persists a new brand.
func (s *BrandService) CreateBrand(input *dto.BrandDTO) (*dto.BrandDTO, error) {
	brand := dto.ToBrandEntity(input)
	brand.ID = 0
	if err := s.repo.Create(&brand); err != nil {
		return nil, err
	}
	result := dto.ToBrandDTO(&brand)
	return &result, nil
}
