package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/controllers"
	"github.com/yeremiapane/pos-backend/models"
)

func setupTestDBForMenus(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.Ingredient{},
		&models.IngredientMapping{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	menuCtrl := controllers.NewMenuController(db)
	router.GET("/menu", menuCtrl.GetMenu)
	router.GET("/menu/active", menuCtrl.GetActiveMenu)
	router.GET("/menu/item-id", menuCtrl.GetItemIDByName)
	router.GET("/menu/:id/ingredients", menuCtrl.GetItemIngredients)
	router.POST("/menu", menuCtrl.CreateMenuItem)
	router.POST("/menu/:id/ingredients", menuCtrl.AddIngredientToItem)
	router.POST("/menu/:id/retire", menuCtrl.RetireMenuItem)
	router.PATCH("/menu/:id/price", menuCtrl.UpdateMenuPrice)
	router.DELETE("/menu/:id", menuCtrl.DeleteMenuItem)
	router.DELETE("/menu/:id/ingredients/:ingredientId", menuCtrl.RemoveIngredientFromItem)
	return router
}

func TestMenuCRUD(t *testing.T) {
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	// Create
	w := postJSON(t, router, "/menu", map[string]interface{}{
		"name":       "Latte",
		"popularity": 5,
		"price":      4.5,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	itemID := int(created["id"].(float64))
	assert.Greater(t, itemID, 0)
	assert.Equal(t, true, created["stat"])

	// Lookup id by name
	w = getJSON(t, router, "/menu/item-id?name=Latte")
	assert.Equal(t, http.StatusOK, w.Code)
	var lookup map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lookup))
	assert.Equal(t, float64(itemID), lookup["id"])

	// Update price
	w = patchJSON(t, router, fmt.Sprintf("/menu/%d/price", itemID), map[string]interface{}{
		"price": 5.0,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var updated map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 5.0, updated["price"])

	// Retire drops it from the active menu but not the full menu
	w = postJSON(t, router, fmt.Sprintf("/menu/%d/retire", itemID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = getJSON(t, router, "/menu/active")
	assert.Equal(t, http.StatusOK, w.Code)
	var active []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &active))
	assert.Empty(t, active)

	w = getJSON(t, router, "/menu")
	assert.Equal(t, http.StatusOK, w.Code)
	var all []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 1)

	// Delete
	w = deleteReq(t, router, fmt.Sprintf("/menu/%d", itemID))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = deleteReq(t, router, fmt.Sprintf("/menu/%d", itemID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuIngredientLinks(t *testing.T) {
	db := setupTestDBForMenus(t)
	router := setupMenuRouter(db)

	db.Create(&models.MenuItem{Name: "Latte", Price: 4.5, IsActive: true})
	db.Create(&models.Ingredient{Name: "Milk", Quantity: 100, Category: "dairy"})
	db.Create(&models.Ingredient{Name: "Peppermint", Quantity: 20, Category: "syrup"})

	// Link one year-round and one seasonal ingredient
	w := postJSON(t, router, "/menu/1/ingredients", map[string]interface{}{
		"ingredientId": 1,
		"isSeasonal":   false,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	w = postJSON(t, router, "/menu/1/ingredients", map[string]interface{}{
		"ingredientId": 2,
		"isSeasonal":   true,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Menu listing carries the linked ingredient ids
	w = getJSON(t, router, "/menu")
	assert.Equal(t, http.StatusOK, w.Code)
	var all []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Len(t, all, 1)
	assert.ElementsMatch(t, []interface{}{float64(1), float64(2)}, all[0]["ingredients"])

	// Full ingredient rows, optionally filtered on the seasonal flag
	w = getJSON(t, router, "/menu/1/ingredients")
	assert.Equal(t, http.StatusOK, w.Code)
	var ingredients []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredients))
	assert.Len(t, ingredients, 2)

	w = getJSON(t, router, "/menu/1/ingredients?seasonal=true")
	assert.Equal(t, http.StatusOK, w.Code)
	ingredients = nil
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredients))
	assert.Len(t, ingredients, 1)
	assert.Equal(t, "Peppermint", ingredients[0]["name"])

	// Unlink
	w = deleteReq(t, router, "/menu/1/ingredients/2")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = deleteReq(t, router, "/menu/1/ingredients/2")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
