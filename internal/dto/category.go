package dto

import "catalog/internal/models"

// CategoryDTO is the category representation exposed at the API boundary.
type CategoryDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// ToCategoryDTO maps a persisted category to its transfer representation.
func ToCategoryDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name}
}

// ToCategoryEntity maps a transfer object onto a category entity.
func ToCategoryEntity(d *CategoryDTO) models.Category {
	return models.Category{ID: d.ID, Name: d.Name}
}
