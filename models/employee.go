package models

type Employee struct {
	ID       uint    `gorm:"column:employee_id;primaryKey" json:"employee_id"`
	Name     string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Role     string  `gorm:"column:role;type:varchar(50);not null" json:"role"`
	Pay      float64 `gorm:"column:pay;type:decimal(10,2);not null" json:"pay"`
	IsActive bool    `gorm:"column:is_active;not null;default:true" json:"is_active"`
}

func (Employee) TableName() string {
	return "personnel"
}
