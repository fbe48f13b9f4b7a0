package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/services"
	"github.com/yeremiapane/pos-backend/utils"
)

type EmployeeController struct {
	service *services.EmployeeService
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{service: services.NewEmployeeService(db)}
}

// GetAllEmployees -> GET /api/employees
func (ec *EmployeeController) GetAllEmployees(c *gin.Context) {
	employees, err := ec.service.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

// GetManagers -> GET /api/employees/managers
func (ec *EmployeeController) GetManagers(c *gin.Context) {
	managers, err := ec.service.Managers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, managers)
}

// CountActiveEmployees -> GET /api/employees/count
func (ec *EmployeeController) CountActiveEmployees(c *gin.Context) {
	count, err := ec.service.CountActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// CreateEmployee -> POST /api/employees
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var body struct {
		Name string   `json:"name"`
		Role string   `json:"role"`
		Pay  *float64 `json:"pay"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Name == "" || body.Role == "" || body.Pay == nil {
		utils.RespondError(c, http.StatusBadRequest, "name, role, and pay are required")
		return
	}

	employee, err := ec.service.Add(c.Request.Context(), body.Name, body.Role, *body.Pay)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee -> PUT /api/employees/:id
// Omitted fields keep their stored value.
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid employee id")
		return
	}

	var body struct {
		Name     *string  `json:"name"`
		Role     *string  `json:"role"`
		Pay      *float64 `json:"pay"`
		IsActive *bool    `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	employee, err := ec.service.Update(c.Request.Context(), uint(id), body.Name, body.Role, body.Pay, body.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if employee == nil {
		utils.RespondError(c, http.StatusNotFound, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee -> DELETE /api/employees/:id
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid employee id")
		return
	}

	deleted, err := ec.service.Delete(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee_id": uint(id)})
}
