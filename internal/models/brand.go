package models

// Brand is a product manufacturer; referenced by Product via BrandID.
type Brand struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
}
