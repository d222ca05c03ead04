package models

import "time"

// Ingredient stores nutrient facts per 100 grams. Titles are unique per
// owner, not globally.
type Ingredient struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:320;not null;uniqueIndex:idx_ingredients_owner_title" json:"title"`
	Proteins      int       `gorm:"default:0" json:"proteins"`
	Carbohydrates int       `gorm:"default:0" json:"carbohydrates"`
	Fats          int       `gorm:"default:0" json:"fats"`
	Calories      int       `gorm:"default:0" json:"calories"`
	OwnerID       uint      `gorm:"not null;uniqueIndex:idx_ingredients_owner_title" json:"-"`
	Owner         User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
