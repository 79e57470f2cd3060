package models

import "time"

// OrderItem is one product line within an order. IsPrepared toggles when the
// line has been physically prepared on the prep board.
type OrderItem struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID    int64     `gorm:"column:order_id;not null;index"`
	ProductID  int64     `gorm:"column:product_id;not null;index"`
	Product    *Product  `gorm:"foreignKey:ProductID"`
	Quantity   int       `gorm:"column:quantity;not null"`
	IsPrepared bool      `gorm:"column:is_prepared;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
