package dto

import "catalog/internal/models"

// BrandDTO is the brand representation exposed at the API boundary.
type BrandDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// ToBrandDTO maps a persisted brand to its transfer representation.
func ToBrandDTO(b *models.Brand) BrandDTO {
	return BrandDTO{ID: b.ID, Name: b.Name}
}

// ToBrandEntity maps a transfer object onto a brand entity.
func ToBrandEntity(d *BrandDTO) models.Brand {
	return models.Brand{ID: d.ID, Name: d.Name}
}
