package models

import "time"

// Variety groups sellable products into display columns (e.g. a cultivar).
type Variety struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null"`
	Products  []Product `gorm:"foreignKey:VarietyID"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
