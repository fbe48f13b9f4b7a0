package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/models"
)

// seasonalRunLength is how long a newly created seasonal item stays on offer.
const seasonalRunLength = 90 * 24 * time.Hour

type SeasonalMenuItemDetail struct {
	models.SeasonalMenuItem
	Ingredients []uint `json:"ingredients"`
}

type SeasonalMenuService struct {
	db *gorm.DB
}

func NewSeasonalMenuService(db *gorm.DB) *SeasonalMenuService {
	return &SeasonalMenuService{db: db}
}

func (s *SeasonalMenuService) List(ctx context.Context) ([]SeasonalMenuItemDetail, error) {
	var items []models.SeasonalMenuItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, &PersistenceError{Op: "list seasonal menu", Err: err}
	}

	details := make([]SeasonalMenuItemDetail, 0, len(items))
	for _, item := range items {
		ids := make([]uint, 0)
		err := s.db.WithContext(ctx).Model(&models.IngredientMapping{}).
			Where("item_id = ?", item.ID).
			Pluck("ingredient_id", &ids).Error
		if err != nil {
			return nil, &PersistenceError{Op: "get ingredients for seasonal item", Err: err}
		}
		details = append(details, SeasonalMenuItemDetail{SeasonalMenuItem: item, Ingredients: ids})
	}
	return details, nil
}

func (s *SeasonalMenuService) Add(ctx context.Context, name string, popularity int, price float64) (*models.SeasonalMenuItem, error) {
	if name == "" {
		return nil, NewValidationError("item name is required to create a seasonal menu item")
	}

	now := time.Now()
	item := models.SeasonalMenuItem{
		Name:       name,
		Popularity: popularity,
		Price:      price,
		StartTime:  now,
		EndTime:    now.Add(seasonalRunLength),
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, &PersistenceError{Op: "create seasonal menu item", Err: err}
	}
	return &item, nil
}

// UpdatePrice changes a seasonal item's price. Returns (nil, nil) when the id
// does not exist.
func (s *SeasonalMenuService) UpdatePrice(ctx context.Context, id uint, price float64) (*models.SeasonalMenuItem, error) {
	res := s.db.WithContext(ctx).Model(&models.SeasonalMenuItem{}).
		Where("item_id = ?", id).
		Update("price", price)
	if res.Error != nil {
		return nil, &PersistenceError{Op: "update seasonal price", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var item models.SeasonalMenuItem
	if err := s.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, &PersistenceError{Op: "update seasonal price", Err: err}
	}
	return &item, nil
}

func (s *SeasonalMenuService) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.SeasonalMenuItem{}, id)
	if res.Error != nil {
		return false, &PersistenceError{Op: "delete seasonal menu item", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}
