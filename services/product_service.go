package services

import (
	"errors"

	"github.com/lastiz/calorizator/config"
	"github.com/lastiz/calorizator/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductService struct{}

func NewProductService() *ProductService {
	return &ProductService{}
}

// ProductIngredientInput is one requested (ingredient, grams) pair.
type ProductIngredientInput struct {
	IngredientID uint `json:"ingredient_id" binding:"required,min=1"`
	Grams        int  `json:"grams" binding:"gte=0"`
}

// UpdateProductInput carries the id plus only the fields being changed. A nil
// Ingredients slice leaves the stored association set alone.
type UpdateProductInput struct {
	ID          uint
	Title       *string
	Ingredients []ProductIngredientInput
}

// List returns the user's products with their association lists, optionally
// filtered by a case-insensitive title substring, ordered by title.
func (s *ProductService) List(user *models.User, title string) ([]models.Product, error) {
	products := []models.Product{}
	q := config.DB.Preload("Ingredients").Where("owner_id = ?", user.ID)
	if title != "" {
		q = q.Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%")
	}
	err := q.Order("title").Find(&products).Error
	return products, err
}

// Create stores the product and its association rows in one transaction, so
// a failed ingredient check never leaves a half-built product behind.
func (s *ProductService) Create(user *models.User, title string, ingredients []ProductIngredientInput) (*models.Product, error) {
	var product models.Product
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		taken, err := s.titleExists(tx, user, title)
		if err != nil {
			return err
		}
		if taken {
			return errProductExists(title)
		}

		ok, err := s.ownsAllIngredients(tx, user, ingredients)
		if err != nil {
			return err
		}
		if !ok {
			return errIngredientsNotFound()
		}

		product = models.Product{Title: title, OwnerID: user.ID}
		if err := tx.Create(&product).Error; err != nil {
			return err
		}

		rows := make([]models.ProductIngredient, 0, len(ingredients))
		for _, in := range ingredients {
			rows = append(rows, models.ProductIngredient{
				ProductID:    product.ID,
				IngredientID: in.IngredientID,
				Grams:        in.Grams,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		return tx.Preload("Ingredients").First(&product, product.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product and its association rows. Not-found is reported
// before not-owned.
func (s *ProductService) Delete(user *models.User, id uint) (uint, error) {
	var product models.Product
	if err := config.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, errProductNotFound()
		}
		return 0, err
	}
	if product.OwnerID != user.ID {
		return 0, errProductNotOwned()
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).
			Delete(&models.ProductIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		return 0, err
	}
	return product.ID, nil
}

// Update renames and/or reconciles the association set in one transaction.
// Pairs present in the new set are upserted in place (grams refreshed through
// the (product_id, ingredient_id) constraint); rows for ingredients absent
// from the new set are pruned afterwards. Any failure rolls back everything,
// including a title rename that already ran.
func (s *ProductService) Update(user *models.User, input UpdateProductInput) (*models.Product, error) {
	var product models.Product
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, input.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errProductNotFound()
			}
			return err
		}
		if product.OwnerID != user.ID {
			return errProductNotOwned()
		}

		if input.Title != nil && *input.Title != product.Title {
			taken, err := s.titleExists(tx, user, *input.Title)
			if err != nil {
				return err
			}
			if taken {
				return errProductExists(*input.Title)
			}
			product.Title = *input.Title
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}

		if input.Ingredients != nil {
			ok, err := s.ownsAllIngredients(tx, user, input.Ingredients)
			if err != nil {
				return err
			}
			if !ok {
				return errIngredientsNotFound()
			}

			rows := make([]models.ProductIngredient, 0, len(input.Ingredients))
			keep := make([]uint, 0, len(input.Ingredients))
			for _, in := range input.Ingredients {
				rows = append(rows, models.ProductIngredient{
					ProductID:    product.ID,
					IngredientID: in.IngredientID,
					Grams:        in.Grams,
				})
				keep = append(keep, in.IngredientID)
			}

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "product_id"}, {Name: "ingredient_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"grams"}),
			}).Create(&rows).Error; err != nil {
				return err
			}

			if err := tx.Where("product_id = ? AND ingredient_id NOT IN ?", product.ID, keep).
				Delete(&models.ProductIngredient{}).Error; err != nil {
				return err
			}
		}

		product.Ingredients = nil
		return tx.Preload("Ingredients").First(&product, product.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) titleExists(tx *gorm.DB, user *models.User, title string) (bool, error) {
	var count int64
	err := tx.Model(&models.Product{}).
		Where("owner_id = ? AND title = ?", user.ID, title).
		Count(&count).Error
	return count > 0, err
}

// ownsAllIngredients compares the count of the caller's ingredients matching
// the requested id set against the set size, which catches nonexistent ids
// and ids owned by someone else in a single query.
func (s *ProductService) ownsAllIngredients(tx *gorm.DB, user *models.User, ingredients []ProductIngredientInput) (bool, error) {
	ids := make([]uint, 0, len(ingredients))
	for _, in := range ingredients {
		ids = append(ids, in.IngredientID)
	}
	var count int64
	err := tx.Model(&models.Ingredient{}).
		Where("owner_id = ? AND id IN ?", user.ID, ids).
		Count(&count).Error
	return count == int64(len(ids)), err
}
