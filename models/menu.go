package models

type MenuItem struct {
	ID         uint    `gorm:"column:item_id;primaryKey" json:"id"`
	Name       string  `gorm:"column:item_name;type:varchar(255);not null" json:"name"`
	Price      float64 `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	IsActive   bool    `gorm:"column:is_active;not null;default:true" json:"stat"`
	Popularity int     `gorm:"column:item_popularity;not null;default:0" json:"popularity"`
}

func (MenuItem) TableName() string {
	return "menu"
}
