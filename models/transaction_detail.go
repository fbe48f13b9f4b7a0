package models

// TransactionDetail is one line item of a sale. Rows are only ever written
// together with their parent Transaction, inside the same database transaction.
type TransactionDetail struct {
	ID            uint        `gorm:"column:detail_id;primaryKey" json:"-"`
	TransactionID uint        `gorm:"column:transaction_id;not null;index" json:"transactionId"`
	Transaction   Transaction `gorm:"foreignKey:TransactionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ItemID        uint        `gorm:"column:item_id;not null" json:"itemId"`
	Item          MenuItem    `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (TransactionDetail) TableName() string {
	return "transaction_details"
}
