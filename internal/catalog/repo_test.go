package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	varieties := `
CREATE TABLE IF NOT EXISTS varieties (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	products := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  sku TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  price INTEGER,
  variety_id INTEGER NOT NULL,
  is_shipping INTEGER NOT NULL DEFAULT 0,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	for _, stmt := range []string{varieties, products} {
		require.NoError(t, db.Exec(stmt).Error)
	}
	for _, table := range []string{"products", "varieties"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}
	return db
}

func seedVariety(t *testing.T, db *gorm.DB, name string) models.Variety {
	t.Helper()
	variety := models.Variety{Name: name}
	require.NoError(t, db.Create(&variety).Error)
	return variety
}

func seedProduct(t *testing.T, db *gorm.DB, sku, name string, varietyID int64, active bool) models.Product {
	t.Helper()
	product := models.Product{SKU: sku, Name: name, VarietyID: varietyID, IsActive: active}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestSeededInactiveProductStaysInactive(t *testing.T) {
	db := setupCatalogTestDB(t)

	variety := seedVariety(t, db, "Bartlett")
	retired := seedProduct(t, db, "BAR-X", "Bartlett Retired", variety.ID, false)

	var reloaded models.Product
	require.NoError(t, db.First(&reloaded, "id = ?", retired.ID).Error)
	assert.False(t, reloaded.IsActive)
	assert.False(t, reloaded.IsShipping)
}

func TestRepositoryListVarieties(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	anjou := seedVariety(t, db, "Anjou")
	bartlett := seedVariety(t, db, "Bartlett")

	got, err := repo.ListVarieties(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, anjou.ID, got[0].ID)
	assert.Equal(t, bartlett.ID, got[1].ID)
}

func TestRepositoryListActiveProducts(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	variety := seedVariety(t, db, "Bartlett")
	small := seedProduct(t, db, "BAR-S", "Bartlett Small", variety.ID, true)
	seedProduct(t, db, "BAR-X", "Bartlett Retired", variety.ID, false)

	got, err := repo.ListActiveProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, small.ID, got[0].ID)
	require.NotNil(t, got[0].Variety)
	assert.Equal(t, "Bartlett", got[0].Variety.Name)
}

func TestRepositoryVarietiesForProducts(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	anjou := seedVariety(t, db, "Anjou")
	bartlett := seedVariety(t, db, "Bartlett")
	seedVariety(t, db, "Comice")

	anjouSmall := seedProduct(t, db, "ANJ-S", "Anjou Small", anjou.ID, true)
	barSmall := seedProduct(t, db, "BAR-S", "Bartlett Small", bartlett.ID, true)
	barLarge := seedProduct(t, db, "BAR-L", "Bartlett Large", bartlett.ID, true)
	retired := seedProduct(t, db, "BAR-X", "Bartlett Retired", bartlett.ID, false)

	got, err := repo.VarietiesForProducts(context.Background(), []int64{barLarge.ID, barSmall.ID, retired.ID, anjouSmall.ID})
	require.NoError(t, err)

	require.Len(t, got, 2, "variety with no requested products stays out")
	assert.Equal(t, anjou.ID, got[0].ID)
	assert.Equal(t, bartlett.ID, got[1].ID)

	require.Len(t, got[1].Products, 2, "inactive products are excluded")
	assert.Equal(t, barSmall.ID, got[1].Products[0].ID)
	assert.Equal(t, barLarge.ID, got[1].Products[1].ID)
}

func TestRepositoryVarietiesForProductsEmptyInput(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewRepository(db)

	got, err := repo.VarietiesForProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
