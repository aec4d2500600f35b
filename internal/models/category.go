package models

// Category groups products; referenced by Product via CategoryID.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);uniqueIndex;not null"`
}
