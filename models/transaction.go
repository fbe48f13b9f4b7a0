package models

type Transaction struct {
	ID              uint    `gorm:"column:transaction_id;primaryKey" json:"id"`
	CustomerName    string  `gorm:"column:customer_name;type:varchar(255);not null" json:"customerName"`
	TransactionTime int64   `gorm:"column:transaction_time;not null;index" json:"transactionTime"`
	EmployeeID      uint    `gorm:"column:employee_id;not null" json:"employeeId"`
	TotalPrice      float64 `gorm:"column:total_price;type:decimal(10,2);not null" json:"totalPrice"`

	// Omitted from JSON; callers refetch details when they need them
	Details []TransactionDetail `gorm:"foreignKey:TransactionID" json:"-"`
}

func (Transaction) TableName() string {
	return "transactions"
}
