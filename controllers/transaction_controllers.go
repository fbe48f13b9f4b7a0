package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/services"
	"github.com/yeremiapane/pos-backend/utils"
)

type TransactionController struct {
	service *services.TransactionService
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{service: services.NewTransactionService(db)}
}

// CreateTransactionWithItems -> POST /api/transactions
// Records a sale: header plus line items, all-or-nothing.
func (tc *TransactionController) CreateTransactionWithItems(c *gin.Context) {
	var in services.CreateTransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := tc.service.CreateWithItems(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListTransactions -> GET /api/transactions?page=&pageSize=
func (tc *TransactionController) ListTransactions(c *gin.Context) {
	page := services.DefaultPage
	pageSize := services.DefaultPageSize

	var err error
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "page and pageSize must be valid numbers")
			return
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "page and pageSize must be valid numbers")
			return
		}
	}

	transactions, err := tc.service.List(c.Request.Context(), page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// CountTransactions -> GET /api/transactions/count
func (tc *TransactionController) CountTransactions(c *gin.Context) {
	count, err := tc.service.Count(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetTransactionByID -> GET /api/transactions/:id
func (tc *TransactionController) GetTransactionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid transaction id")
		return
	}

	trx, err := tc.service.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if trx == nil {
		utils.RespondError(c, http.StatusNotFound, "Transaction not found")
		return
	}

	c.JSON(http.StatusOK, trx)
}

// GetTransactionsByTime -> GET /api/transactions/by-time?time=
func (tc *TransactionController) GetTransactionsByTime(c *gin.Context) {
	raw := c.Query("time")
	if raw == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'time' is required")
		return
	}

	t, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'time' must be a number")
		return
	}

	transactions, err := tc.service.ListByTime(c.Request.Context(), t)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, transactions)
}
