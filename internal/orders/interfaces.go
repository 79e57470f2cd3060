package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/types"
)

// Repository defines persistence operations for orders and their items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	DeleteOrderItems(ctx context.Context, orderID int64) error
	FindOrder(ctx context.Context, id int64) (*models.Order, error)
	ListWindow(ctx context.Context, from, to types.Date, customerName string) ([]models.Order, error)
	PrepBoardWindow(ctx context.Context, from, to types.Date) ([]models.Order, error)
	UpdateOrder(ctx context.Context, orderID int64, updates map[string]any) error
}
