package prepboard

import (
	"context"

	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/types"
)

// Repository owns the prepared-flag write on order items.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	SetPrepared(ctx context.Context, orderID, productID int64, prepared bool) (int64, error)
}

// OrderSource loads the orders of a pickup-date window, items included.
type OrderSource interface {
	PrepBoardWindow(ctx context.Context, from, to types.Date) ([]models.Order, error)
}

// CatalogSource loads varieties with the products matching the given ids.
type CatalogSource interface {
	VarietiesForProducts(ctx context.Context, productIDs []int64) ([]models.Variety, error)
}
