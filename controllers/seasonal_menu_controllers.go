package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/services"
	"github.com/yeremiapane/pos-backend/utils"
)

type SeasonalMenuController struct {
	service *services.SeasonalMenuService
}

func NewSeasonalMenuController(db *gorm.DB) *SeasonalMenuController {
	return &SeasonalMenuController{service: services.NewSeasonalMenuService(db)}
}

// GetSeasonalMenu -> GET /api/seasonal-menu
func (sc *SeasonalMenuController) GetSeasonalMenu(c *gin.Context) {
	menu, err := sc.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, menu)
}

// CreateSeasonalMenuItem -> POST /api/seasonal-menu
func (sc *SeasonalMenuController) CreateSeasonalMenuItem(c *gin.Context) {
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

	item, err := sc.service.Add(c.Request.Context(), body.Name, *body.Popularity, *body.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateSeasonalMenuPrice -> PATCH /api/seasonal-menu/:id/price
func (sc *SeasonalMenuController) UpdateSeasonalMenuPrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid seasonal item id")
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

	item, err := sc.service.UpdatePrice(c.Request.Context(), uint(id), *body.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if item == nil {
		utils.RespondError(c, http.StatusNotFound, "Seasonal item not found")
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteSeasonalMenuItem -> DELETE /api/seasonal-menu/:id
func (sc *SeasonalMenuController) DeleteSeasonalMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid seasonal item id")
		return
	}

	deleted, err := sc.service.Delete(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, "Seasonal item not found")
		return
	}

	c.Status(http.StatusNoContent)
}
