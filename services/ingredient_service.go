package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/models"
	"github.com/yeremiapane/pos-backend/utils"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) List(ctx context.Context) ([]models.Ingredient, error) {
	ingredients := make([]models.Ingredient, 0)
	if err := s.db.WithContext(ctx).Find(&ingredients).Error; err != nil {
		return nil, &PersistenceError{Op: "list ingredients", Err: err}
	}
	return ingredients, nil
}

// IDByName resolves an ingredient id from its name, or (nil, nil) when no
// ingredient matches. Names are not unique; on duplicates the first match
// wins and a warning is logged.
func (s *IngredientService) IDByName(ctx context.Context, name string) (*uint, error) {
	if name == "" {
		return nil, NewValidationError("ingredient name is required")
	}

	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).Where("ingredient_name = ?", name).Find(&ingredients).Error
	if err != nil {
		return nil, &PersistenceError{Op: "get ingredient id", Err: err}
	}
	if len(ingredients) == 0 {
		return nil, nil
	}
	if len(ingredients) > 1 {
		utils.ErrorLogger.Printf("Multiple ingredients found with name %q. Returning first.", name)
	}
	return &ingredients[0].ID, nil
}

func (s *IngredientService) Create(ctx context.Context, name string, quantity int, category string) (*models.Ingredient, error) {
	if name == "" {
		return nil, NewValidationError("ingredient name is required")
	}
	if category == "" {
		return nil, NewValidationError("category is required to create an ingredient")
	}

	ingredient := models.Ingredient{
		Name:     name,
		Quantity: quantity,
		Category: category,
	}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, &PersistenceError{Op: "create ingredient", Err: err}
	}
	return &ingredient, nil
}

// Update replaces name, quantity and category of an ingredient. Returns
// (nil, nil) when the id does not exist.
func (s *IngredientService) Update(ctx context.Context, id uint, name string, quantity int, category string) (*models.Ingredient, error) {
	if name == "" {
		return nil, NewValidationError("ingredient name is required to update an ingredient")
	}
	if category == "" {
		return nil, NewValidationError("category is required to update an ingredient")
	}

	res := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("ingredient_id = ?", id).
		Updates(map[string]interface{}{
			"ingredient_name": name,
			"quantity":        quantity,
			"category":        category,
		})
	if res.Error != nil {
		return nil, &PersistenceError{Op: "update ingredient", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.getByID(ctx, id)
}

// Delete removes an ingredient. Returns false when nothing was deleted.
func (s *IngredientService) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Ingredient{}, id)
	if res.Error != nil {
		return false, &PersistenceError{Op: "delete ingredient", Err: res.Error}
	}
	return res.RowsAffected > 0, nil
}

// RefillByName adds quantity to the ingredient's stock. Returns (nil, nil)
// when no ingredient has that name.
func (s *IngredientService) RefillByName(ctx context.Context, name string, quantity int) (*models.Ingredient, error) {
	if name == "" {
		return nil, NewValidationError("ingredient name is required to refill inventory")
	}
	if quantity < 0 {
		return nil, NewValidationError("quantity cannot be negative")
	}

	res := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("ingredient_name = ?", name).
		Update("quantity", gorm.Expr("quantity + ?", quantity))
	if res.Error != nil {
		return nil, &PersistenceError{Op: "refill inventory", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Where("ingredient_name = ?", name).First(&ingredient).Error
	if err != nil {
		return nil, &PersistenceError{Op: "refill inventory", Err: err}
	}
	return &ingredient, nil
}

// DecreaseByID subtracts quantity from the ingredient's stock. Returns
// (nil, nil) when the id does not exist.
func (s *IngredientService) DecreaseByID(ctx context.Context, id uint, quantity int) (*models.Ingredient, error) {
	if quantity < 0 {
		return nil, NewValidationError("quantity cannot be negative")
	}

	res := s.db.WithContext(ctx).Model(&models.Ingredient{}).
		Where("ingredient_id = ?", id).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return nil, &PersistenceError{Op: "decrease inventory", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.getByID(ctx, id)
}

func (s *IngredientService) getByID(ctx context.Context, id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).First(&ingredient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get ingredient", Err: err}
	}
	return &ingredient, nil
}
