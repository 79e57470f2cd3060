package prepboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a prep-board repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) SetPrepared(ctx context.Context, orderID, productID int64, prepared bool) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Where("order_id = ? AND product_id = ?", orderID, productID).
		Update("is_prepared", prepared)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
