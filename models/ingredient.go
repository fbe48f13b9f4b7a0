package models

type Ingredient struct {
	ID       uint   `gorm:"column:ingredient_id;primaryKey" json:"id"`
	Name     string `gorm:"column:ingredient_name;type:varchar(255);not null" json:"name"`
	Quantity int    `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Category string `gorm:"column:category;type:varchar(100)" json:"category"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
