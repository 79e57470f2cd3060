package prepboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/pkg/db/models"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
	"github.com/pearstand/pear-backend/pkg/types"
)

type fakePrepRepo struct {
	rows     int64
	err      error
	lastArgs []any
}

func (f *fakePrepRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakePrepRepo) SetPrepared(_ context.Context, orderID, productID int64, prepared bool) (int64, error) {
	f.lastArgs = []any{orderID, productID, prepared}
	return f.rows, f.err
}

type fakeOrderSource struct {
	orders   []models.Order
	err      error
	from, to types.Date
}

func (f *fakeOrderSource) PrepBoardWindow(_ context.Context, from, to types.Date) ([]models.Order, error) {
	f.from, f.to = from, to
	return f.orders, f.err
}

type fakeCatalogSource struct {
	varieties []models.Variety
	err       error
	askedIDs  []int64
}

func (f *fakeCatalogSource) VarietiesForProducts(_ context.Context, ids []int64) ([]models.Variety, error) {
	f.askedIDs = ids
	return f.varieties, f.err
}

func prepDate(day int) *types.Date {
	d := types.NewDate(2025, time.June, day)
	return &d
}

func TestServiceGetBuildsTwoDayBoard(t *testing.T) {
	orders := &fakeOrderSource{orders: []models.Order{
		{ID: 1, CustomerName: "Iris Wong", PickupDate: prepDate(10), Items: []models.OrderItem{
			{ProductID: 5, Quantity: 3, IsPrepared: false},
		}},
		{ID: 2, CustomerName: "Theo Park", PickupDate: prepDate(11), Items: []models.OrderItem{
			{ProductID: 5, Quantity: 2, IsPrepared: true},
		}},
	}}
	catalog := &fakeCatalogSource{varieties: []models.Variety{
		{ID: 2, Name: "Bartlett", Products: []models.Product{
			{ID: 5, SKU: "BAR-S", Name: "Bartlett Small", VarietyID: 2, IsActive: true},
		}},
	}}
	svc, err := NewService(&fakePrepRepo{}, orders, catalog)
	require.NoError(t, err)

	board, err := svc.Get(context.Background(), types.NewDate(2025, time.June, 10))
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", orders.from.String())
	assert.Equal(t, "2025-06-11", orders.to.String())
	assert.Equal(t, []int64{5}, catalog.askedIDs)

	require.Len(t, board.RowHeaders, 1)
	assert.Equal(t, "Bartlett", board.RowHeaders[0].VarietyName)

	require.Len(t, board.Orders, 2)
	require.Len(t, board.Orders["2025-06-10"], 1)
	require.Len(t, board.Orders["2025-06-11"], 1)

	first := board.Orders["2025-06-10"][0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, BoardItem{Quantity: 3, IsPrepared: false}, first.Items[5])

	assert.Equal(t, 3, board.Subtotals.Pending[5])
	assert.Equal(t, 2, board.Subtotals.Ready[5])
	assert.Equal(t, 5, board.Subtotals.Total[5])
}

func TestServiceGetEmptyWindow(t *testing.T) {
	svc, err := NewService(&fakePrepRepo{}, &fakeOrderSource{}, &fakeCatalogSource{})
	require.NoError(t, err)

	board, err := svc.Get(context.Background(), types.NewDate(2025, time.June, 10))
	require.NoError(t, err)

	assert.Empty(t, board.RowHeaders)
	require.Len(t, board.Orders, 2)
	assert.Empty(t, board.Orders["2025-06-10"])
	assert.Empty(t, board.Orders["2025-06-11"])
}

func TestServiceGetRequiresTargetDate(t *testing.T) {
	svc, err := NewService(&fakePrepRepo{}, &fakeOrderSource{}, &fakeCatalogSource{})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), types.Date{})
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestServiceGetWrapsSourceFailure(t *testing.T) {
	orders := &fakeOrderSource{err: errors.New("db down")}
	svc, err := NewService(&fakePrepRepo{}, orders, &fakeCatalogSource{})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), types.NewDate(2025, time.June, 10))
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeDependency, appErr.Code())
}

func TestServiceSetPrepared(t *testing.T) {
	repo := &fakePrepRepo{rows: 1}
	svc, err := NewService(repo, &fakeOrderSource{}, &fakeCatalogSource{})
	require.NoError(t, err)

	require.NoError(t, svc.SetPrepared(context.Background(), 7, 5, true))
	assert.Equal(t, []any{int64(7), int64(5), true}, repo.lastArgs)
}

func TestServiceSetPreparedNotFound(t *testing.T) {
	svc, err := NewService(&fakePrepRepo{rows: 0}, &fakeOrderSource{}, &fakeCatalogSource{})
	require.NoError(t, err)

	err = svc.SetPrepared(context.Background(), 7, 5, true)
	var appErr *pkgerrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestServiceSetPreparedValidatesIDs(t *testing.T) {
	svc, err := NewService(&fakePrepRepo{}, &fakeOrderSource{}, &fakeCatalogSource{})
	require.NoError(t, err)

	for _, args := range [][2]int64{{0, 5}, {7, 0}, {-1, -1}} {
		err := svc.SetPrepared(context.Background(), args[0], args[1], true)
		var appErr *pkgerrors.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	}
}
