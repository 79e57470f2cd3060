package models

import "time"

// Product is a sellable storefront listing belonging to one variety.
type Product struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SKU        string    `gorm:"column:sku;not null;uniqueIndex"`
	Name       string    `gorm:"column:name;not null"`
	Price      *int      `gorm:"column:price"`
	VarietyID  int64     `gorm:"column:variety_id;not null"`
	Variety    *Variety  `gorm:"foreignKey:VarietyID"`
	// No gorm defaults on the flags: a default tag makes gorm skip
	// zero-valued fields on insert, which would silently flip an
	// inactive product back to active. DDL defaults live in the
	// migrations.
	IsShipping bool      `gorm:"column:is_shipping;not null"`
	IsActive   bool      `gorm:"column:is_active;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
