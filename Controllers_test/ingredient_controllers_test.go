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

func setupTestDBForIngredients(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.Ingredient{},
		&models.IngredientMapping{},
		&models.Transaction{},
		&models.TransactionDetail{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func setupIngredientRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	ingredientCtrl := controllers.NewIngredientController(db)
	router.GET("/ingredients", ingredientCtrl.GetIngredients)
	router.GET("/ingredients/id", ingredientCtrl.GetIngredientIDByName)
	router.GET("/ingredients/usage", ingredientCtrl.GetIngredientUsage)
	router.GET("/ingredients/sales-report", ingredientCtrl.GetSalesReport)
	router.POST("/ingredients", ingredientCtrl.CreateIngredient)
	router.POST("/ingredients/refill", ingredientCtrl.RefillInventory)
	router.POST("/ingredients/:id/decrease", ingredientCtrl.DecreaseInventory)
	router.PATCH("/ingredients/:id", ingredientCtrl.UpdateIngredient)
	router.DELETE("/ingredients/:id", ingredientCtrl.DeleteIngredient)
	return router
}

// Seeds two menu items with their ingredient links and three sales:
//
//	time 1000: Latte
//	time 1100: Latte + Muffin
//	time 2000: Muffin
func seedReportData(db *gorm.DB) {
	db.Create(&models.MenuItem{Name: "Latte", Price: 4.5, IsActive: true})  // id 1
	db.Create(&models.MenuItem{Name: "Muffin", Price: 3.0, IsActive: true}) // id 2

	db.Create(&models.Ingredient{Name: "Milk", Quantity: 100, Category: "dairy"})    // id 1
	db.Create(&models.Ingredient{Name: "Espresso", Quantity: 100, Category: "base"}) // id 2
	db.Create(&models.Ingredient{Name: "Flour", Quantity: 100, Category: "dry"})     // id 3
	db.Create(&models.Ingredient{Name: "Sugar", Quantity: 100, Category: "dry"})     // id 4

	db.Create(&models.IngredientMapping{IngredientID: 1, ItemID: 1})
	db.Create(&models.IngredientMapping{IngredientID: 2, ItemID: 1})
	db.Create(&models.IngredientMapping{IngredientID: 3, ItemID: 2})
	db.Create(&models.IngredientMapping{IngredientID: 4, ItemID: 2})

	seedSale := func(time int64, itemIDs ...uint) {
		trx := models.Transaction{CustomerName: "walk-in", TransactionTime: time, EmployeeID: 1, TotalPrice: 1}
		db.Create(&trx)
		for _, itemID := range itemIDs {
			db.Create(&models.TransactionDetail{TransactionID: trx.ID, ItemID: itemID})
		}
	}
	seedSale(1000, 1)
	seedSale(1100, 1, 2)
	seedSale(2000, 2)
}

func TestIngredientUsageReport(t *testing.T) {
	db := setupTestDBForIngredients(t)
	seedReportData(db)
	router := setupIngredientRouter(db)

	// Closed window: both the start-boundary and end-boundary sales count
	w := getJSON(t, router, "/ingredients/usage?start=1000&end=1100")
	assert.Equal(t, http.StatusOK, w.Code)

	var usage []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &usage))
	assert.Len(t, usage, 4)

	// Descending by timesUsed, ties ascending by name
	expected := []struct {
		name      string
		timesUsed float64
	}{
		{"Espresso", 2},
		{"Milk", 2},
		{"Flour", 1},
		{"Sugar", 1},
	}
	for i, exp := range expected {
		assert.Equal(t, exp.name, usage[i]["name"])
		assert.Equal(t, exp.timesUsed, usage[i]["timesUsed"])
	}
	for i := 1; i < len(usage); i++ {
		prev, cur := usage[i-1], usage[i]
		if prev["timesUsed"] == cur["timesUsed"] {
			assert.LessOrEqual(t, prev["name"].(string), cur["name"].(string))
		} else {
			assert.Greater(t, prev["timesUsed"].(float64), cur["timesUsed"].(float64))
		}
	}
}

func TestSalesReport(t *testing.T) {
	db := setupTestDBForIngredients(t)
	seedReportData(db)
	router := setupIngredientRouter(db)

	w := getJSON(t, router, "/ingredients/sales-report?start=1000&end=1100")
	assert.Equal(t, http.StatusOK, w.Code)

	var report []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Len(t, report, 3)

	// Descending by time, ties ascending by item name
	assert.Equal(t, float64(1100), report[0]["time"])
	assert.Equal(t, "Latte", report[0]["itemName"])
	assert.Equal(t, float64(1100), report[1]["time"])
	assert.Equal(t, "Muffin", report[1]["itemName"])
	assert.Equal(t, float64(1000), report[2]["time"])
	assert.Equal(t, "Latte", report[2]["itemName"])
}

func TestReportWindowValidation(t *testing.T) {
	db := setupTestDBForIngredients(t)
	seedReportData(db)
	router := setupIngredientRouter(db)

	// Inverted window: usage quietly returns nothing
	w := getJSON(t, router, "/ingredients/usage?start=1100&end=1000")
	assert.Equal(t, http.StatusOK, w.Code)
	var usage []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &usage))
	assert.Empty(t, usage)

	// The sales report rejects the same window
	w = getJSON(t, router, "/ingredients/sales-report?start=1100&end=1000")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	for _, url := range []string{
		"/ingredients/usage?start=1000",
		"/ingredients/usage?end=1000",
		"/ingredients/sales-report?start=1000",
		"/ingredients/sales-report",
		"/ingredients/usage?start=abc&end=1000",
		"/ingredients/sales-report?start=1000&end=xyz",
	} {
		w = getJSON(t, router, url)
		assert.Equal(t, http.StatusBadRequest, w.Code, "url %s", url)
	}
}

func TestIngredientCRUD(t *testing.T) {
	db := setupTestDBForIngredients(t)
	router := setupIngredientRouter(db)

	w := postJSON(t, router, "/ingredients", map[string]interface{}{
		"name":     "Milk",
		"quantity": 40,
		"category": "dairy",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := int(created["id"].(float64))
	assert.Greater(t, id, 0)

	// Missing fields are rejected
	w = postJSON(t, router, "/ingredients", map[string]interface{}{"name": "Cocoa"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Lookup id by name
	w = getJSON(t, router, "/ingredients/id?name=Milk")
	assert.Equal(t, http.StatusOK, w.Code)
	var lookup map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &lookup))
	assert.Equal(t, float64(id), lookup["id"])

	w = getJSON(t, router, "/ingredients/id?name=Nothing")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Refill adds stock
	w = postJSON(t, router, "/ingredients/refill", map[string]interface{}{
		"name":     "Milk",
		"quantity": 10,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var refilled map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &refilled))
	assert.Equal(t, float64(50), refilled["quantity"])

	// Decrease subtracts stock
	w = postJSON(t, router, fmt.Sprintf("/ingredients/%d/decrease", id), map[string]interface{}{
		"quantity": 15,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var decreased map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &decreased))
	assert.Equal(t, float64(35), decreased["quantity"])

	// Full update
	req := map[string]interface{}{"name": "Whole Milk", "quantity": 60, "category": "dairy"}
	w = patchJSON(t, router, fmt.Sprintf("/ingredients/%d", id), req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete, then the row is gone
	w = deleteReq(t, router, fmt.Sprintf("/ingredients/%d", id))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = deleteReq(t, router, fmt.Sprintf("/ingredients/%d", id))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
