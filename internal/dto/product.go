package dto

import "catalog/internal/models"

// ProductDTO is the product representation exposed at the API boundary.
// CategoryID/BrandID are what clients send; the nested Category/Brand are
// filled in from the associations when reading.
type ProductDTO struct {
	ID                 uint         `json:"id"`
	Title              string       `json:"title" validate:"required,min=3,max=100"`
	Description        string       `json:"description" validate:"omitempty,max=500"`
	Price              float64      `json:"price" validate:"required,gt=0"`
	DiscountPercentage float64      `json:"discount_percentage" validate:"gte=0,lte=100"`
	Rating             float64      `json:"rating" validate:"gte=0,lte=5"`
	Stock              int          `json:"stock" validate:"gte=0"`
	Thumbnail          string       `json:"thumbnail"`
	Images             []string     `json:"images"`
	CategoryID         uint         `json:"category_id" validate:"required"`
	Category           *CategoryDTO `json:"category,omitempty"`
	BrandID            uint         `json:"brand_id" validate:"required"`
	Brand              *BrandDTO    `json:"brand,omitempty"`
}

// ToProductDTO maps a persisted product to its transfer representation.
func ToProductDTO(p *models.Product) ProductDTO {
	dto := ProductDTO{
		ID:                 p.ID,
		Title:              p.Title,
		Description:        p.Description,
		Price:              p.Price,
		DiscountPercentage: p.DiscountPercentage,
		Rating:             p.Rating,
		Stock:              p.Stock,
		Thumbnail:          p.Thumbnail,
		Images:             p.Images,
		CategoryID:         p.CategoryID,
		BrandID:            p.BrandID,
	}
	if p.Category.ID != 0 {
		category := ToCategoryDTO(&p.Category)
		dto.Category = &category
	}
	if p.Brand.ID != 0 {
		brand := ToBrandDTO(&p.Brand)
		dto.Brand = &brand
	}
	return dto
}

// ToProductEntity maps a transfer object onto a fresh entity. Associations
// are referenced by id only; callers validate they exist.
func ToProductEntity(d *ProductDTO) models.Product {
	return models.Product{
		ID:                 d.ID,
		Title:              d.Title,
		Description:        d.Description,
		Price:              d.Price,
		DiscountPercentage: d.DiscountPercentage,
		Rating:             d.Rating,
		Stock:              d.Stock,
		Thumbnail:          d.Thumbnail,
		Images:             d.Images,
		CategoryID:         d.CategoryID,
		BrandID:            d.BrandID,
	}
}
