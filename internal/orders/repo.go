package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/types"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	if err := r.db.WithContext(ctx).Omit("Items").Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

func (r *repository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *repository) DeleteOrderItems(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&models.OrderItem{}).Error
}

func (r *repository) FindOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Preload("Items.Product.Variety").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListWindow returns orders whose pickup date falls inside [from, to] plus
// every unscheduled order, dated ones first in ascending date order.
func (r *repository) ListWindow(ctx context.Context, from, to types.Date, customerName string) ([]models.Order, error) {
	var orders []models.Order
	q := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Preload("Items.Product.Variety").
		Where("(pickup_date BETWEEN ? AND ? OR pickup_date IS NULL)", from, to)
	if customerName != "" {
		q = q.Where("customer_name LIKE ?", "%"+customerName+"%")
	}
	err := q.
		Order("pickup_date IS NULL ASC").
		Order("pickup_date ASC").
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// PrepBoardWindow returns only dated orders inside [from, to]; the prep board
// has no unscheduled lane.
func (r *repository) PrepBoardWindow(ctx context.Context, from, to types.Date) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Preload("Items.Product.Variety").
		Where("pickup_date BETWEEN ? AND ?", from, to).
		Order("pickup_date ASC").
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) UpdateOrder(ctx context.Context, orderID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", orderID).
		Updates(updates).Error
}
