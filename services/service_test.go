package services

import (
	"errors"
	"testing"

	"github.com/lastiz/calorizator/config"
	"github.com/lastiz/calorizator/models"
	"github.com/lastiz/calorizator/utils"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	// a single connection keeps every statement on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.User{}, &models.Ingredient{}, &models.Product{}, &models.ProductIngredient{})
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	config.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", HashedPassword: "irrelevant"}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %q: %v", username, err)
	}
	return &user
}

func createTestIngredient(t *testing.T, user *models.User, title string) *models.Ingredient {
	t.Helper()
	ingredient, err := NewIngredientService().Create(user, title, 10, 10, 10, 100)
	if err != nil {
		t.Fatalf("failed to create ingredient %q: %v", title, err)
	}
	return ingredient
}

func assertAppError(t *testing.T, err error, statusCode int, field string) *utils.AppError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with status %d, got nil", statusCode)
	}
	var appErr *utils.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.StatusCode != statusCode {
		t.Fatalf("expected status %d, got %d (%s)", statusCode, appErr.StatusCode, appErr.Msg)
	}
	if field != "" {
		found := false
		for _, f := range appErr.Fields {
			if f == field {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected field %q in %v", field, appErr.Fields)
		}
	}
	return appErr
}
