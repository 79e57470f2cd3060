package models

import (
	"time"

	"github.com/pearstand/pear-backend/pkg/enums"
	"github.com/pearstand/pear-backend/pkg/types"
)

// Order is a storefront pickup order. A nil PickupDate means the order is
// not yet scheduled and lives in the calendar's unscheduled lane.
type Order struct {
	ID           int64             `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerName string            `gorm:"column:customer_name;not null"`
	PickupDate   *types.Date       `gorm:"column:pickup_date;type:date"`
	PickupTime   *string           `gorm:"column:pickup_time"`
	Status       enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	Notes        *string           `gorm:"column:notes"`
	UserID       *int64            `gorm:"column:user_id"`
	Items        []OrderItem       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
