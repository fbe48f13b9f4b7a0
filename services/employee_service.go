package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/models"
)

type EmployeeService struct {
	db *gorm.DB
}

func NewEmployeeService(db *gorm.DB) *EmployeeService {
	return &EmployeeService{db: db}
}

// ListActive returns every active employee.
func (s *EmployeeService) ListActive(ctx context.Context) ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&employees).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list employees", Err: err}
	}
	return employees, nil
}

// Managers returns every active employee with the manager role.
func (s *EmployeeService) Managers(ctx context.Context) ([]models.Employee, error) {
	managers := make([]models.Employee, 0)
	err := s.db.WithContext(ctx).
		Where("role = ? AND is_active = ?", "manager", true).
		Find(&managers).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list managers", Err: err}
	}
	return managers, nil
}

func (s *EmployeeService) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, &PersistenceError{Op: "count employees", Err: err}
	}
	return count, nil
}

func (s *EmployeeService) Add(ctx context.Context, name, role string, pay float64) (*models.Employee, error) {
	if name == "" {
		return nil, NewValidationError("employee name is required")
	}
	if role == "" {
		return nil, NewValidationError("employee role is required")
	}

	employee := models.Employee{
		Name:     name,
		Role:     role,
		Pay:      pay,
		IsActive: true,
	}
	if err := s.db.WithContext(ctx).Create(&employee).Error; err != nil {
		return nil, &PersistenceError{Op: "create employee", Err: err}
	}
	return &employee, nil
}

// Update patches the provided fields; nil fields keep their stored value.
// Returns (nil, nil) when the id does not exist.
func (s *EmployeeService) Update(ctx context.Context, id uint, name, role *string, pay *float64, active *bool) (*models.Employee, error) {
	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if role != nil {
		updates["role"] = *role
	}
	if pay != nil {
		updates["pay"] = *pay
	}
	if active != nil {
		updates["is_active"] = *active
	}
	if len(updates) == 0 {
		return nil, NewValidationError("at least one field is required to update an employee")
	}

	res := s.db.WithContext(ctx).Model(&models.Employee{}).
		Where("employee_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, &PersistenceError{Op: "update employee", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var employee models.Employee
	if err := s.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, &PersistenceError{Op: "update employee", Err: err}
	}
	return &employee, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Employee{}, id)
	if res.Error != nil {
		return false, &PersistenceError{Op: "delete employee", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}
