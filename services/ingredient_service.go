package services

import (
	"errors"

	"github.com/lastiz/calorizator/config"
	"github.com/lastiz/calorizator/models"

	"gorm.io/gorm"
)

type IngredientService struct{}

func NewIngredientService() *IngredientService {
	return &IngredientService{}
}

// UpdateIngredientInput carries the id plus only the fields being changed;
// nil fields are left untouched.
type UpdateIngredientInput struct {
	ID            uint
	Title         *string
	Proteins      *int
	Carbohydrates *int
	Fats          *int
	Calories      *int
}

// List returns the user's ingredients, optionally filtered by a
// case-insensitive title substring, ordered by title.
func (s *IngredientService) List(user *models.User, title string) ([]models.Ingredient, error) {
	ingredients := []models.Ingredient{}
	q := config.DB.Where("owner_id = ?", user.ID)
	if title != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%")
	}
	err := q.Order("title").Find(&ingredients).Error
	return ingredients, err
}

func (s *IngredientService) Create(user *models.User, title string, proteins, carbohydrates, fats, calories int) (*models.Ingredient, error) {
	taken, err := s.titleExists(user, title)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errIngredientExists(title)
	}

	ingredient := models.Ingredient{
		Title:         title,
		Proteins:      proteins,
		Carbohydrates: carbohydrates,
		Fats:          fats,
		Calories:      calories,
		OwnerID:       user.ID,
	}
	if err := config.DB.Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Delete removes the ingredient and any product associations pointing at it.
// Not-found is reported before not-owned.
func (s *IngredientService) Delete(user *models.User, id uint) (uint, error) {
	var ingredient models.Ingredient
	if err := config.DB.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errIngredientNotFound()
		}
		return 0, err
	}
	if ingredient.OwnerID != user.ID {
		return 0, errIngredientNotOwned()
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", ingredient.ID).
			Delete(&models.ProductIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ingredient).Error
	})
	if err != nil {
		return 0, err
	}
	return ingredient.ID, nil
}

// Update applies only the supplied fields. A title change that collides with
// another owned ingredient is rejected.
func (s *IngredientService) Update(user *models.User, input UpdateIngredientInput) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := config.DB.First(&ingredient, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errIngredientNotFound()
		}
		return nil, err
	}
	if ingredient.OwnerID != user.ID {
		return nil, errIngredientNotOwned()
	}

	if input.Title != nil && *input.Title != ingredient.Title {
		taken, err := s.titleExists(user, *input.Title)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errIngredientExists(*input.Title)
		}
	}

	if input.Title != nil {
		ingredient.Title = *input.Title
	}
	if input.Proteins != nil {
		ingredient.Proteins = *input.Proteins
	}
	if input.Carbohydrates != nil {
		ingredient.Carbohydrates = *input.Carbohydrates
	}
	if input.Fats != nil {
		ingredient.Fats = *input.Fats
	}
	if input.Calories != nil {
		ingredient.Calories = *input.Calories
	}

	if err := config.DB.Save(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) titleExists(user *models.User, title string) (bool, error) {
	var count int64
	err := config.DB.Model(&models.Ingredient{}).
		Where("owner_id = ? AND title = ?", user.ID, title).
		Count(&count).Error
	return count > 0, err
}
