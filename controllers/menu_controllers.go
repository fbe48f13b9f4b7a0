package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/services"
	"github.com/yeremiapane/pos-backend/utils"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{service: services.NewMenuService(db)}
}

// GetMenu -> GET /api/menu
func (mc *MenuController) GetMenu(c *gin.Context) {
	menu, err := mc.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// GetActiveMenu -> GET /api/menu/active
func (mc *MenuController) GetActiveMenu(c *gin.Context) {
	menu, err := mc.service.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// GetItemIDByName -> GET /api/menu/item-id?name=
func (mc *MenuController) GetItemIDByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'name' is required")
		return
	}

	id, err := mc.service.IDByName(c.Request.Context(), name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if id == nil {
		utils.RespondError(c, http.StatusNotFound, "Menu item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": *id})
}

// GetItemIngredients -> GET /api/menu/:id/ingredients?seasonal=true|false
func (mc *MenuController) GetItemIngredients(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var seasonal *bool
	if raw := c.Query("seasonal"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Query parameter 'seasonal' must be a boolean")
			return
		}
		seasonal = &parsed
	}

	ingredients, err := mc.service.ItemIngredients(c.Request.Context(), uint(id), seasonal)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ingredients)
}

// CreateMenuItem -> POST /api/menu
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var body struct {
		Name       string   `json:"name"`
		Popularity *int     `json:"popularity"`
		Price      *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" || body.Popularity == nil || body.Price == nil {
		utils.RespondError(c, http.StatusBadRequest, "name, popularity, and price are required")
		return
	}

	item, err := mc.service.Create(c.Request.Context(), body.Name, *body.Popularity, *body.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// AddIngredientToItem -> POST /api/menu/:id/ingredients
func (mc *MenuController) AddIngredientToItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var body struct {
		IngredientID *uint `json:"ingredientId"`
		IsSeasonal   bool  `json:"isSeasonal"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.IngredientID == nil {
		utils.RespondError(c, http.StatusBadRequest, "ingredientId is required")
		return
	}

	mapping, err := mc.service.AddIngredient(c.Request.Context(), uint(id), *body.IngredientID, body.IsSeasonal)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, mapping)
}

// RemoveIngredientFromItem -> DELETE /api/menu/:id/ingredients/:ingredientId
func (mc *MenuController) RemoveIngredientFromItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}
	ingredientID, err := strconv.ParseUint(c.Param("ingredientId"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid ingredient id")
		return
	}

	removed, err := mc.service.RemoveIngredient(c.Request.Context(), uint(id), uint(ingredientID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !removed {
		utils.RespondError(c, http.StatusNotFound, "Ingredient mapping not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateMenuPrice -> PATCH /api/menu/:id/price
func (mc *MenuController) UpdateMenuPrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var body struct {
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Price == nil {
		utils.RespondError(c, http.StatusBadRequest, "price is required")
		return
	}

	item, err := mc.service.UpdatePrice(c.Request.Context(), uint(id), *body.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, "Menu item not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteMenuItem -> DELETE /api/menu/:id
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	deleted, err := mc.service.Delete(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, "Menu item not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// RetireMenuItem -> POST /api/menu/:id/retire
func (mc *MenuController) RetireMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	retired, err := mc.service.Retire(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !retired {
		utils.RespondError(c, http.StatusNotFound, "Menu item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": uint(id)})
}
