package models

import "time"

// Product is a named composition of the owner's ingredients.
type Product struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Title       string              `gorm:"size:320;not null;uniqueIndex:idx_products_owner_title" json:"title"`
	OwnerID     uint                `gorm:"not null;uniqueIndex:idx_products_owner_title" json:"-"`
	Owner       User                `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Ingredients []ProductIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`
	CreatedAt   time.Time           `json:"-"`
	UpdatedAt   time.Time           `json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// ProductIngredient links a product to one ingredient with a gram amount.
// The composite unique index keeps at most one row per (product, ingredient)
// pair and is what the update reconciliation upserts against.
type ProductIngredient struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	ProductID    uint       `gorm:"not null;uniqueIndex:idx_product_ingredient_pair" json:"-"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_product_ingredient_pair" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Grams        int        `gorm:"not null" json:"grams"`
}

func (ProductIngredient) TableName() string {
	return "product_ingredient"
}
