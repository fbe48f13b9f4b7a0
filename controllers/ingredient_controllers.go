package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/services"
	"github.com/yeremiapane/pos-backend/utils"
)

// IngredientController serves the inventory CRUD plus the two time-windowed
// reports that live under /api/ingredients.
type IngredientController struct {
	service *services.IngredientService
	reports *services.ReportService
}

func NewIngredientController(db *gorm.DB) *IngredientController {
	return &IngredientController{
		service: services.NewIngredientService(db),
		reports: services.NewReportService(db),
	}
}

// GetIngredients -> GET /api/ingredients
func (ic *IngredientController) GetIngredients(c *gin.Context) {
	ingredients, err := ic.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

// GetIngredientIDByName -> GET /api/ingredients/id?name=
func (ic *IngredientController) GetIngredientIDByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'name' is required")
		return
	}

	id, err := ic.service.IDByName(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if id == nil {
		utils.RespondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": *id})
}

// CreateIngredient -> POST /api/ingredients
func (ic *IngredientController) CreateIngredient(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Quantity *int   `json:"quantity"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" || body.Quantity == nil || body.Category == "" {
		utils.RespondError(c, http.StatusBadRequest, "name, quantity, and category are required")
		return
	}

	ingredient, err := ic.service.Create(c.Request.Context(), body.Name, *body.Quantity, body.Category)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient -> PATCH /api/ingredients/:id
func (ic *IngredientController) UpdateIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return
	}

	var body struct {
		Name     string `json:"name"`
		Quantity *int   `json:"quantity"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" || body.Quantity == nil || body.Category == "" {
		utils.RespondError(c, http.StatusBadRequest, "name, quantity, and category are required")
		return
	}

	updated, err := ic.service.Update(c.Request.Context(), uint(id), body.Name, *body.Quantity, body.Category)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		utils.RespondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteIngredient -> DELETE /api/ingredients/:id
func (ic *IngredientController) DeleteIngredient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return
	}

	deleted, err := ic.service.Delete(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// RefillInventory -> POST /api/ingredients/refill
func (ic *IngredientController) RefillInventory(c *gin.Context) {
	var body struct {
		Name     string `json:"name"`
		Quantity *int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" || body.Quantity == nil {
		utils.RespondError(c, http.StatusBadRequest, "name and quantity are required")
		return
	}

	updated, err := ic.service.RefillByName(c.Request.Context(), body.Name, *body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		utils.RespondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DecreaseInventory -> POST /api/ingredients/:id/decrease
func (ic *IngredientController) DecreaseInventory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Quantity == nil {
		utils.RespondError(c, http.StatusBadRequest, "quantity is required")
		return
	}

	updated, err := ic.service.DecreaseByID(c.Request.Context(), uint(id), *body.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		utils.RespondError(c, http.StatusNotFound, "Ingredient not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetIngredientUsage -> GET /api/ingredients/usage?start=&end=
func (ic *IngredientController) GetIngredientUsage(c *gin.Context) {
	start, end, ok := ic.parseWindow(c)
	if !ok {
		return
	}

	usage, err := ic.reports.IngredientUsage(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, usage)
}

// GetSalesReport -> GET /api/ingredients/sales-report?start=&end=
func (ic *IngredientController) GetSalesReport(c *gin.Context) {
	start, end, ok := ic.parseWindow(c)
	if !ok {
		return
	}

	report, err := ic.reports.SalesReport(c.Request.Context(), start, end)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (ic *IngredientController) parseWindow(c *gin.Context) (start, end int64, ok bool) {
	rawStart := c.Query("start")
	rawEnd := c.Query("end")
	if rawStart == "" || rawEnd == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameters 'start' and 'end' are required")
		return 0, 0, false
	}

	var err error
	if start, err = strconv.ParseInt(rawStart, 10, 64); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query parameters 'start' and 'end' must be numbers")
		return 0, 0, false
	}
	if end, err = strconv.ParseInt(rawEnd, 10, 64); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query parameters 'start' and 'end' must be numbers")
		return 0, 0, false
	}
	return start, end, true
}
