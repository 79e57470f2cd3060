package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
)

type fakeCatalogRepo struct {
	varieties []models.Variety
	products  []models.Product
	err       error
}

func (f *fakeCatalogRepo) WithTx(_ *gorm.DB) Repository { return f }

func (f *fakeCatalogRepo) ListVarieties(_ context.Context) ([]models.Variety, error) {
	return f.varieties, f.err
}

func (f *fakeCatalogRepo) ListActiveProducts(_ context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogRepo) VarietiesForProducts(_ context.Context, _ []int64) ([]models.Variety, error) {
	return f.varieties, f.err
}

func TestServiceVarietyOptions(t *testing.T) {
	repo := &fakeCatalogRepo{varieties: []models.Variety{
		{ID: 1, Name: "Anjou"},
		{ID: 2, Name: "Bartlett"},
	}}
	svc, err := NewService(repo)
	require.NoError(t, err)

	options, err := svc.VarietyOptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []VarietyOption{
		{ID: 1, Name: "Anjou"},
		{ID: 2, Name: "Bartlett"},
	}, options)
}

func TestServiceProductOptionsGroupsByVariety(t *testing.T) {
	price := 450
	anjou := &models.Variety{ID: 1, Name: "Anjou"}
	bartlett := &models.Variety{ID: 2, Name: "Bartlett"}
	repo := &fakeCatalogRepo{products: []models.Product{
		{ID: 3, SKU: "ANJ-S", Name: "Anjou Small", VarietyID: 1, Variety: anjou, Price: &price},
		{ID: 5, SKU: "BAR-S", Name: "Bartlett Small", VarietyID: 2, Variety: bartlett},
		{ID: 7, SKU: "BAR-L", Name: "Bartlett Large", VarietyID: 2, Variety: bartlett},
	}}
	svc, err := NewService(repo)
	require.NoError(t, err)

	groups, err := svc.ProductOptions(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "Anjou", groups[0].VarietyName)
	require.Len(t, groups[0].Products, 1)
	assert.Equal(t, &price, groups[0].Products[0].Price)

	require.Len(t, groups[1].Products, 2)
	assert.Equal(t, int64(5), groups[1].Products[0].ID)
	assert.Equal(t, int64(7), groups[1].Products[1].ID)
}

func TestServiceWrapsRepositoryFailure(t *testing.T) {
	repo := &fakeCatalogRepo{err: errors.New("db down")}
	svc, err := NewService(repo)
	require.NoError(t, err)

	_, err = svc.VarietyOptions(context.Background())
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeDependency, appErr.Code())

	_, err = svc.ProductOptions(context.Background())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeDependency, appErr.Code())
}
