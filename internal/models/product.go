package models

import "time"

// Product represents a catalog product. Category and Brand are mandatory
// associations; Images is persisted as a JSON text column.
type Product struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Title              string    `json:"title" gorm:"type:varchar(100);not null"`
	Description        string    `json:"description" gorm:"type:text"`
	Price              float64   `json:"price" gorm:"not null"`
	DiscountPercentage float64   `json:"discount_percentage"`
	Rating             float64   `json:"rating"`
	Stock              int       `json:"stock"`
	Thumbnail          string    `json:"thumbnail"`
	Images             []string  `json:"images" gorm:"type:text;serializer:json"`
	CategoryID         uint      `json:"category_id" gorm:"not null;index"`
	Category           Category  `json:"category"`
	BrandID            uint      `json:"brand_id" gorm:"not null;index"`
	Brand              Brand     `json:"brand"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
