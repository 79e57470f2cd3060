package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListVarieties(ctx context.Context) ([]models.Variety, error) {
	var varieties []models.Variety
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&varieties).Error
	if err != nil {
		return nil, err
	}
	return varieties, nil
}

func (r *repository) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Variety").
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// VarietiesForProducts loads every variety carrying at least one of the given
// products, each with only its matching active products attached.
func (r *repository) VarietiesForProducts(ctx context.Context, productIDs []int64) ([]models.Variety, error) {
	if len(productIDs) == 0 {
		return []models.Variety{}, nil
	}
	var varieties []models.Variety
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("id IN ? AND is_active = ?", productIDs, true).Order("products.id ASC")
		}).
		Where("id IN (?)", r.db.Model(&models.Product{}).Select("variety_id").Where("id IN ?", productIDs)).
		Order("id ASC").
		Find(&varieties).Error
	if err != nil {
		return nil, err
	}
	return varieties, nil
}
