package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
)

// Repository defines read access to the variety/product catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListVarieties(ctx context.Context) ([]models.Variety, error)
	ListActiveProducts(ctx context.Context) ([]models.Product, error)
	VarietiesForProducts(ctx context.Context, productIDs []int64) ([]models.Variety, error)
}
