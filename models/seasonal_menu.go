package models

import "time"

// SeasonalMenuItem is a limited-run menu entry. StartTime/EndTime bound the
// run; new items get a 90 day window from creation.
type SeasonalMenuItem struct {
	ID         uint      `gorm:"column:item_id;primaryKey" json:"id"`
	Name       string    `gorm:"column:item_name;type:varchar(255);not null" json:"name"`
	Popularity int       `gorm:"column:item_popularity;not null;default:0" json:"popularity"`
	Price      float64   `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	StartTime  time.Time `gorm:"column:start_time;not null" json:"-"`
	EndTime    time.Time `gorm:"column:end_time;not null" json:"-"`
}

func (SeasonalMenuItem) TableName() string {
	return "seasonal_menu"
}
