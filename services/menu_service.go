package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/models"
	"github.com/yeremiapane/pos-backend/utils"
)

// MenuItemDetail is a menu item plus the ids of the ingredients it consumes.
type MenuItemDetail struct {
	models.MenuItem
	Ingredients []uint `json:"ingredients"`
}

type MenuService struct {
	db *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{db: db}
}

func (s *MenuService) List(ctx context.Context) ([]MenuItemDetail, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, &PersistenceError{Op: "list menu", Err: err}
	}
	return s.withIngredients(ctx, items)
}

func (s *MenuService) ListActive(ctx context.Context) ([]MenuItemDetail, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Find(&items).Error; err != nil {
		return nil, &PersistenceError{Op: "list active menu", Err: err}
	}
	return s.withIngredients(ctx, items)
}

// IDByName resolves a menu item id from its display name. Returns (nil, nil)
// when no item matches, and also when the name is ambiguous.
func (s *MenuService) IDByName(ctx context.Context, name string) (*uint, error) {
	if name == "" {
		return nil, NewValidationError("item name is required")
	}

	var items []models.MenuItem
	err := s.db.WithContext(ctx).Where("item_name = ?", name).Find(&items).Error
	if err != nil {
		return nil, &PersistenceError{Op: "get item id", Err: err}
	}
	if len(items) == 0 {
		return nil, nil
	}
	if len(items) > 1 {
		utils.ErrorLogger.Printf("Found %d menu items with name %q", len(items), name)
		return nil, nil
	}
	return &items[0].ID, nil
}

// ItemIngredients lists the full ingredient rows linked to a menu item.
// When seasonal is non-nil the mapping is filtered on its is_seasonal flag.
func (s *MenuService) ItemIngredients(ctx context.Context, itemID uint, seasonal *bool) ([]models.Ingredient, error) {
	query := s.db.WithContext(ctx).
		Table("ingredients").
		Select("ingredients.ingredient_id, ingredients.ingredient_name, ingredients.quantity, ingredients.category").
		Joins("JOIN ingredients_map ON ingredients_map.ingredient_id = ingredients.ingredient_id").
		Where("ingredients_map.item_id = ?", itemID)
	if seasonal != nil {
		query = query.Where("ingredients_map.is_seasonal = ?", *seasonal)
	}

	ingredients := make([]models.Ingredient, 0)
	if err := query.Scan(&ingredients).Error; err != nil {
		return nil, &PersistenceError{Op: "get item ingredients", Err: err}
	}
	return ingredients, nil
}

func (s *MenuService) Create(ctx context.Context, name string, popularity int, price float64) (*models.MenuItem, error) {
	if name == "" {
		return nil, NewValidationError("item name is required to create a menu item")
	}

	item := models.MenuItem{
		Name:       name,
		Popularity: popularity,
		Price:      price,
		IsActive:   true,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, &PersistenceError{Op: "create menu item", Err: err}
	}
	return &item, nil
}

// UpdatePrice changes a menu item's price. Returns (nil, nil) when the id
// does not exist.
func (s *MenuService) UpdatePrice(ctx context.Context, id uint, price float64) (*models.MenuItem, error) {
	res := s.db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("item_id = ?", id).
		Update("price", price)
	if res.Error != nil {
		return nil, &PersistenceError{Op: "update menu price", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var item models.MenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, &PersistenceError{Op: "update menu price", Err: err}
	}
	return &item, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return false, &PersistenceError{Op: "delete menu item", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}

// Retire soft deletes a menu item by flipping is_active off. Retired items
// stay referencable from historical transaction details.
func (s *MenuService) Retire(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Model(&models.MenuItem{}).
		Where("item_id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return false, &PersistenceError{Op: "retire menu item", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}

func (s *MenuService) AddIngredient(ctx context.Context, itemID, ingredientID uint, isSeasonal bool) (*models.IngredientMapping, error) {
	mapping := models.IngredientMapping{
		IngredientID: ingredientID,
		ItemID:       itemID,
		IsSeasonal:   isSeasonal,
	}
	if err := s.db.WithContext(ctx).Create(&mapping).Error; err != nil {
		return nil, &PersistenceError{Op: "add ingredient to item", Err: err}
	}
	return &mapping, nil
}

func (s *MenuService) RemoveIngredient(ctx context.Context, itemID, ingredientID uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Where("item_id = ? AND ingredient_id = ?", itemID, ingredientID).
		Delete(&models.IngredientMapping{})
	if res.Error != nil {
		return false, &PersistenceError{Op: "remove ingredient from item", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}

func (s *MenuService) withIngredients(ctx context.Context, items []models.MenuItem) ([]MenuItemDetail, error) {
	details := make([]MenuItemDetail, 0, len(items))
	for _, item := range items {
		ids, err := s.ingredientIDsForItem(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		details = append(details, MenuItemDetail{MenuItem: item, Ingredients: ids})
	}
	return details, nil
}

func (s *MenuService) ingredientIDsForItem(ctx context.Context, itemID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := s.db.WithContext(ctx).Model(&models.IngredientMapping{}).
		Where("item_id = ?", itemID).
		Pluck("ingredient_id", &ids).Error
	if err != nil {
		return nil, &PersistenceError{Op: "get ingredients for item", Err: err}
	}
	return ids, nil
}
