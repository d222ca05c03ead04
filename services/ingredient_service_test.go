package services

import (
	"net/http"
	"testing"

	"github.com/lastiz/calorizator/config"
	"github.com/lastiz/calorizator/models"
)

func TestIngredientTitleUniquePerOwner(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	svc := NewIngredientService()

	if _, err := svc.Create(alice, "Egg", 13, 1, 11, 155); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(alice, "Egg", 13, 1, 11, 155)
	assertAppError(t, err, http.StatusBadRequest, "title")

	// same title under another owner is fine
	if _, err := svc.Create(bob, "Egg", 13, 1, 11, 155); err != nil {
		t.Fatalf("cross-owner create failed: %v", err)
	}
}

func TestIngredientDeleteChecksOrder(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	svc := NewIngredientService()

	_, err := svc.Delete(alice, 9999)
	assertAppError(t, err, http.StatusBadRequest, "id")

	theirs := createTestIngredient(t, bob, "Milk")
	_, err = svc.Delete(alice, theirs.ID)
	assertAppError(t, err, http.StatusForbidden, "id")

	id, err := svc.Delete(bob, theirs.ID)
	if err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if id != theirs.ID {
		t.Fatalf("expected deleted id %d, got %d", theirs.ID, id)
	}

	var count int64
	config.DB.Model(&models.Ingredient{}).Where("id = ?", theirs.ID).Count(&count)
	if count != 0 {
		t.Fatalf("ingredient row still present after delete")
	}
}

func TestIngredientUpdateAppliesOnlySuppliedFields(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	svc := NewIngredientService()

	egg, err := svc.Create(alice, "Egg", 13, 1, 11, 155)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	calories := 160
	updated, err := svc.Update(alice, UpdateIngredientInput{ID: egg.ID, Calories: &calories})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Calories != 160 {
		t.Fatalf("expected calories 160, got %d", updated.Calories)
	}
	if updated.Title != "Egg" || updated.Proteins != 13 || updated.Carbohydrates != 1 || updated.Fats != 11 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestIngredientUpdateTitleConflict(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	svc := NewIngredientService()

	createTestIngredient(t, alice, "Egg")
	milk := createTestIngredient(t, alice, "Milk")

	egg := "Egg"
	_, err := svc.Update(alice, UpdateIngredientInput{ID: milk.ID, Title: &egg})
	assertAppError(t, err, http.StatusBadRequest, "title")

	// resubmitting the current title is not a conflict
	same := "Milk"
	if _, err := svc.Update(alice, UpdateIngredientInput{ID: milk.ID, Title: &same}); err != nil {
		t.Fatalf("same-title update failed: %v", err)
	}
}

func TestIngredientListFilterAndOrder(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")
	svc := NewIngredientService()

	createTestIngredient(t, alice, "Milk")
	createTestIngredient(t, alice, "Eggplant")
	createTestIngredient(t, alice, "Egg")
	createTestIngredient(t, bob, "Eggnog")

	all, err := svc.List(alice, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 ingredients, got %d", len(all))
	}
	if all[0].Title != "Egg" || all[1].Title != "Eggplant" || all[2].Title != "Milk" {
		t.Fatalf("wrong order: %s, %s, %s", all[0].Title, all[1].Title, all[2].Title)
	}

	filtered, err := svc.List(alice, "EGG")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 matches for EGG, got %d", len(filtered))
	}
}

func TestIngredientDeletePrunesProductAssociations(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice")
	egg := createTestIngredient(t, alice, "Egg")
	milk := createTestIngredient(t, alice, "Milk")

	product, err := NewProductService().Create(alice, "Omelette", []ProductIngredientInput{
		{IngredientID: egg.ID, Grams: 100},
		{IngredientID: milk.ID, Grams: 50},
	})
	if err != nil {
		t.Fatalf("product create failed: %v", err)
	}

	if _, err := NewIngredientService().Delete(alice, egg.ID); err != nil {
		t.Fatalf("ingredient delete failed: %v", err)
	}

	var remaining []models.ProductIngredient
	config.DB.Where("product_id = ?", product.ID).Find(&remaining)
	if len(remaining) != 1 || remaining[0].IngredientID != milk.ID {
		t.Fatalf("expected only the milk association to survive, got %+v", remaining)
	}
}
