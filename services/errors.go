package services

import (
	"fmt"
	"net/http"

	"github.com/lastiz/calorizator/utils"
)

// Error constructors for the whole API taxonomy: 401 for any credential
// failure (never distinguishing missing user from wrong password), 400 for
// conflicts and unknown ids, 403 for foreign ownership.

func errNotAuthenticated() *utils.AppError {
	return utils.NewAppError(http.StatusUnauthorized, "Invalid username or password", "username", "password")
}

func errUsernameExists() *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest, "Username is already exists", "username")
}

func errEmailExists() *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest, "Email is already exists", "email")
}

func errIngredientNotFound() *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest, "Ingredient not found", "id")
}

func errIngredientNotOwned() *utils.AppError {
	return utils.NewAppError(http.StatusForbidden, "User is not the owner of ingredient", "id")
}

func errIngredientExists(title string) *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest,
		fmt.Sprintf("User already has ingredient with title [%s]", title), "title")
}

func errProductNotFound() *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest, "Product not found", "id")
}

func errProductNotOwned() *utils.AppError {
	return utils.NewAppError(http.StatusForbidden, "User is not the owner of product", "id")
}

func errProductExists(title string) *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest,
		fmt.Sprintf("User already has product with title [%s]", title), "title")
}

func errIngredientsNotFound() *utils.AppError {
	return utils.NewAppError(http.StatusBadRequest, "Invalid ingredient ids", "ingredients")
}
