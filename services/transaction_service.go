package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yeremiapane/pos-backend/models"
)

const (
	DefaultPage     = 0
	DefaultPageSize = 50
)

// TransactionItemRef references one menu item of a sale by id. The id is a
// pointer so that a missing "id" field in the request body is distinguishable
// from id 0.
type TransactionItemRef struct {
	ID *uint `json:"id"`
}

type CreateTransactionInput struct {
	CustomerName    string               `json:"customerName"`
	TransactionTime *int64               `json:"transactionTime"`
	EmployeeID      *uint                `json:"employeeId"`
	TotalPrice      *float64             `json:"totalPrice"`
	Items           []TransactionItemRef `json:"items"`
}

// TransactionService owns the write path for transactions and their line
// items. No other service writes to either table.
type TransactionService struct {
	db *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{db: db}
}

// CreateWithItems records a sale: one transaction header plus one detail row
// per item, all inside a single database transaction. Either everything
// commits or nothing does; a failed call leaves no partial state behind and
// is safe to retry. An empty items slice is legal and commits a header with
// zero line items.
func (s *TransactionService) CreateWithItems(ctx context.Context, in CreateTransactionInput) (*models.Transaction, error) {
	if in.CustomerName == "" {
		return nil, NewValidationError("customerName is required to create a transaction")
	}
	if in.TransactionTime == nil {
		return nil, NewValidationError("transactionTime is required to create a transaction")
	}
	if in.EmployeeID == nil {
		return nil, NewValidationError("employeeId is required to create a transaction")
	}
	if in.TotalPrice == nil {
		return nil, NewValidationError("totalPrice is required to create a transaction")
	}
	if in.Items == nil {
		return nil, NewValidationError("items must be an array when creating a transaction")
	}
	for _, item := range in.Items {
		if item.ID == nil {
			return nil, NewValidationError("each item must have an id when adding transaction details")
		}
	}

	trx := models.Transaction{
		CustomerName:    in.CustomerName,
		TransactionTime: *in.TransactionTime,
		EmployeeID:      *in.EmployeeID,
		TotalPrice:      *in.TotalPrice,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}

		// Details go in one at a time, in caller order, on the open
		// transaction session. Never parallelize these inserts.
		for _, item := range in.Items {
			detail := models.TransactionDetail{
				TransactionID: trx.ID,
				ItemID:        *item.ID,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, &PersistenceError{Op: "create transaction", Err: err}
	}

	return &trx, nil
}

// GetByID returns the transaction or (nil, nil) when no row matches.
func (s *TransactionService) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var trx models.Transaction
	err := s.db.WithContext(ctx).First(&trx, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get transaction", Err: err}
	}
	return &trx, nil
}

// List returns one page of transactions, newest first.
func (s *TransactionService) List(ctx context.Context, page, pageSize int) ([]models.Transaction, error) {
	if page < 0 || pageSize <= 0 {
		return nil, NewValidationError("page must be >= 0 and pageSize must be > 0")
	}

	trxs := make([]models.Transaction, 0)
	err := s.db.WithContext(ctx).
		Order("transaction_time DESC").
		Limit(pageSize).
		Offset(page * pageSize).
		Find(&trxs).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list transactions", Err: err}
	}
	return trxs, nil
}

// ListByTime returns every transaction recorded at exactly the given time,
// ordered by transaction_time DESC then transaction_id ASC.
func (s *TransactionService) ListByTime(ctx context.Context, t int64) ([]models.Transaction, error) {
	trxs := make([]models.Transaction, 0)
	err := s.db.WithContext(ctx).
		Where("transaction_time = ?", t).
		Order("transaction_time DESC, transaction_id ASC").
		Find(&trxs).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list transactions by time", Err: err}
	}
	return trxs, nil
}

func (s *TransactionService) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, &PersistenceError{Op: "count transactions", Err: err}
	}
	return count, nil
}
