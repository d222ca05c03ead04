package controllers

import (
	"net/http"

	"github.com/lastiz/calorizator/services"

	"github.com/gin-gonic/gin"
)

type AddProductInput struct {
	Title       string                            `json:"title" binding:"required,min=3,max=320"`
	Ingredients []services.ProductIngredientInput `json:"ingredients" binding:"required,min=1,dive"`
}

type DeleteProductInput struct {
	ProductID uint `json:"product_id" binding:"required,min=1"`
}

type UpdateProductInput struct {
	ID          uint                              `json:"id" binding:"required,min=1"`
	Title       *string                           `json:"title" binding:"omitempty,min=3,max=320"`
	Ingredients []services.ProductIngredientInput `json:"ingredients" binding:"omitempty,min=1,dive"`
}

func GetProducts(c *gin.Context) {
	user := CurrentUser(c)
	title := c.Query("product_title")

	products, err := services.NewProductService().List(user, title)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func CreateProduct(c *gin.Context) {
	var input AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	user := CurrentUser(c)
	product, err := services.NewProductService().Create(user, input.Title, input.Ingredients)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func DeleteProduct(c *gin.Context) {
	var input DeleteProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	user := CurrentUser(c)
	id, err := services.NewProductService().Delete(user, input.ProductID)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func UpdateProduct(c *gin.Context) {
	var input UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, err)
		return
	}

	user := CurrentUser(c)
	product, err := services.NewProductService().Update(user, services.UpdateProductInput{
		ID:          input.ID,
		Title:       input.Title,
		Ingredients: input.Ingredients,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
