package controllers

import (
	"net/http"

	"github.com/lastiz/calorizator/services"

	"github.com/gin-gonic/gin"
)

type AddIngredientInput struct {
	Title         string `json:"title" binding:"required,min=3,max=320"`
	Proteins      int    `json:"proteins" binding:"gte=0"`
	Carbohydrates int    `json:"carbohydrates" binding:"gte=0"`
	Fats          int    `json:"fats" binding:"gte=0"`
	Calories      int    `json:"calories" binding:"gte=0"`
}

type DeleteIngredientInput struct {
	ID uint `json:"id" binding:"required,min=1"`
}

type UpdateIngredientInput struct {
	ID            uint    `json:"id" binding:"required,min=1"`
	Title         *string `json:"title" binding:"omitempty,min=3,max=320"`
	Proteins      *int    `json:"proteins" binding:"omitempty,gte=0"`
	Carbohydrates *int    `json:"carbohydrates" binding:"omitempty,gte=0"`
	Fats          *int    `json:"fats" binding:"omitempty,gte=0"`
	Calories      *int    `json:"calories" binding:"omitempty,gte=0"`
}

func GetIngredients(c *gin.Context) {
	user := CurrentUser(c)
	title := c.Query("ingredient_title")

	ingredients, err := services.NewIngredientService().List(user, title)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

func CreateIngredient(c *gin.Context) {
	var input AddIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	user := CurrentUser(c)
	ingredient, err := services.NewIngredientService().Create(
		user, input.Title, input.Proteins, input.Carbohydrates, input.Fats, input.Calories,
	)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ingredient)
}

func DeleteIngredient(c *gin.Context) {
	var input DeleteIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	user := CurrentUser(c)
	id, err := services.NewIngredientService().Delete(user, input.ID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func UpdateIngredient(c *gin.Context) {
	var input UpdateIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	user := CurrentUser(c)
	ingredient, err := services.NewIngredientService().Update(user, services.UpdateIngredientInput{
		ID:            input.ID,
		Title:         input.Title,
		Proteins:      input.Proteins,
		Carbohydrates: input.Carbohydrates,
		Fats:          input.Fats,
		Calories:      input.Calories,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredient)
}
