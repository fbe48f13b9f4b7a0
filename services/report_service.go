package services

import (
	"context"

	"gorm.io/gorm"
)

type IngredientUsageRow struct {
	Name      string `gorm:"column:ingredient_name" json:"name"`
	TimesUsed int64  `gorm:"column:times_used" json:"timesUsed"`
}

type SaleRow struct {
	Time     int64  `gorm:"column:transaction_time" json:"time"`
	ItemName string `gorm:"column:item_name" json:"itemName"`
}

// ReportService answers the time-windowed reporting reads. Both reads are
// stateless queries over committed data; the window [start, end] is closed on
// both ends.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// IngredientUsage counts, per ingredient, how many sold line items consumed
// it inside the window. Ingredients unused in the window are omitted. An
// inverted window is not an error here: the join simply matches nothing and
// the result is empty.
func (s *ReportService) IngredientUsage(ctx context.Context, start, end int64) ([]IngredientUsageRow, error) {
	rows := make([]IngredientUsageRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT i.ingredient_name, COUNT(*) AS times_used
		FROM transactions t
		JOIN transaction_details td ON td.transaction_id = t.transaction_id
		JOIN ingredients_map im ON im.item_id = td.item_id
		JOIN ingredients i ON i.ingredient_id = im.ingredient_id
		WHERE t.transaction_time >= ? AND t.transaction_time <= ?
		GROUP BY i.ingredient_name
		ORDER BY times_used DESC, i.ingredient_name ASC`, start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, &PersistenceError{Op: "ingredient usage report", Err: err}
	}
	return rows, nil
}

// SalesReport returns one row per sold line item in the window: the item's
// display name and the sale time. Unlike IngredientUsage, an inverted window
// is rejected here.
func (s *ReportService) SalesReport(ctx context.Context, start, end int64) ([]SaleRow, error) {
	if start > end {
		return nil, NewValidationError("query parameter 'start' must be less than 'end'")
	}

	rows := make([]SaleRow, 0)
	err := s.db.WithContext(ctx).Raw(`
		SELECT m.item_name, t.transaction_time
		FROM transactions t
		JOIN transaction_details td ON td.transaction_id = t.transaction_id
		JOIN menu m ON td.item_id = m.item_id
		WHERE t.transaction_time >= ? AND t.transaction_time <= ?
		ORDER BY t.transaction_time DESC, m.item_name ASC`, start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, &PersistenceError{Op: "sales report", Err: err}
	}
	return rows, nil
}
