package prepboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/enums"
)

func catalogFixture() []models.Variety {
	return []models.Variety{
		{
			ID:   2,
			Name: "Bartlett",
			Products: []models.Product{
				{ID: 7, SKU: "BAR-L", Name: "Bartlett Large", VarietyID: 2, IsActive: true},
				{ID: 5, SKU: "BAR-S", Name: "Bartlett Small", VarietyID: 2, IsActive: true},
				{ID: 9, SKU: "BAR-X", Name: "Bartlett Retired", VarietyID: 2, IsActive: false},
			},
		},
		{
			ID:   1,
			Name: "Anjou",
			Products: []models.Product{
				{ID: 3, SKU: "ANJ-S", Name: "Anjou Small", VarietyID: 1, IsActive: true},
			},
		},
		{
			ID:   3,
			Name: "Comice",
			Products: []models.Product{
				{ID: 11, SKU: "COM-S", Name: "Comice Small", VarietyID: 3, IsActive: true},
			},
		},
	}
}

func TestBuildRowHeadersFiltersAndOrders(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{
			{ProductID: 7, Quantity: 1},
			{ProductID: 5, Quantity: 2},
		}},
		{ID: 2, Items: []models.OrderItem{
			{ProductID: 3, Quantity: 1},
			{ProductID: 9, Quantity: 4}, // inactive product
		}},
	}

	headers := BuildRowHeaders(catalogFixture(), orders)

	require.Len(t, headers, 2, "variety with no ordered products must be omitted")
	assert.Equal(t, int64(1), headers[0].VarietyID)
	assert.Equal(t, int64(2), headers[1].VarietyID)

	require.Len(t, headers[1].Products, 2)
	assert.Equal(t, int64(5), headers[1].Products[0].ID, "products ascend by id")
	assert.Equal(t, int64(7), headers[1].Products[1].ID)
}

func TestBuildRowHeadersSkipsInactiveProducts(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{{ProductID: 9, Quantity: 1}}},
	}

	headers := BuildRowHeaders(catalogFixture(), orders)
	assert.Empty(t, headers)
}

func TestBuildRowHeadersEmptyOrders(t *testing.T) {
	assert.Empty(t, BuildRowHeaders(catalogFixture(), nil))
}

func TestComputeSubtotalsSplitsPreparedQuantities(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{{ProductID: 5, Quantity: 3, IsPrepared: false}}},
		{ID: 2, Items: []models.OrderItem{{ProductID: 5, Quantity: 2, IsPrepared: true}}},
	}
	headers := BuildRowHeaders(catalogFixture(), orders)

	sub := ComputeSubtotals(headers, orders)

	assert.Equal(t, 3, sub.Pending[5])
	assert.Equal(t, 2, sub.Ready[5])
	assert.Equal(t, 5, sub.Total[5])
}

func TestComputeSubtotalsTotalIsAlwaysPendingPlusReady(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{
			{ProductID: 3, Quantity: 4, IsPrepared: true},
			{ProductID: 5, Quantity: 1},
		}},
		{ID: 2, Items: []models.OrderItem{
			{ProductID: 3, Quantity: 2},
			{ProductID: 7, Quantity: 6, IsPrepared: true},
		}},
	}
	headers := BuildRowHeaders(catalogFixture(), orders)
	sub := ComputeSubtotals(headers, orders)

	for id := range sub.Total {
		assert.Equal(t, sub.Pending[id]+sub.Ready[id], sub.Total[id], "product %d", id)
	}
}

func TestComputeSubtotalsIncludesCanceledOrders(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Status: enums.OrderStatusPending, Items: []models.OrderItem{{ProductID: 5, Quantity: 1}}},
		{ID: 2, Status: enums.OrderStatusCanceled, Items: []models.OrderItem{{ProductID: 5, Quantity: 4}}},
	}
	headers := BuildRowHeaders(catalogFixture(), orders)
	sub := ComputeSubtotals(headers, orders)

	assert.Equal(t, 5, sub.Total[5])
}

func TestComputeSubtotalsZeroFillsEveryColumn(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{{ProductID: 5, Quantity: 1}, {ProductID: 3, Quantity: 2}}},
	}
	headers := BuildRowHeaders(catalogFixture(), orders)

	// subtotal over a subset of the orders still carries a zero entry for
	// every header column
	sub := ComputeSubtotals(headers, nil)
	for _, header := range headers {
		for _, product := range header.Products {
			pending, ok := sub.Pending[product.ID]
			require.True(t, ok)
			assert.Zero(t, pending)
			assert.Zero(t, sub.Ready[product.ID])
			assert.Zero(t, sub.Total[product.ID])
		}
	}
}

func TestPreparedToggleNeverChangesRowHeaders(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Items: []models.OrderItem{{ProductID: 5, Quantity: 3, IsPrepared: false}}},
	}
	before := BuildRowHeaders(catalogFixture(), orders)

	orders[0].Items[0].IsPrepared = true
	after := BuildRowHeaders(catalogFixture(), orders)

	assert.Equal(t, before, after)
}
