package models

// IngredientMapping links an ingredient to the menu item that consumes it.
// Read by the usage report; mutated only through the menu link endpoints.
type IngredientMapping struct {
	IngredientID uint       `gorm:"column:ingredient_id;primaryKey;autoIncrement:false" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID       uint       `gorm:"column:item_id;primaryKey;autoIncrement:false" json:"item_id"`
	IsSeasonal   bool       `gorm:"column:is_seasonal;not null;default:false" json:"is_seasonal"`
}

func (IngredientMapping) TableName() string {
	return "ingredients_map"
}
