package prepboard

import (
	"context"
	"fmt"

	"github.com/pearstand/pear-backend/internal/schedule"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
	"github.com/pearstand/pear-backend/pkg/types"
)

// Service exposes the prep-board read model and the prepared-flag toggle.
type Service interface {
	Get(ctx context.Context, target types.Date) (*Board, error)
	SetPrepared(ctx context.Context, orderID, productID int64, prepared bool) error
}

type service struct {
	repo    Repository
	orders  OrderSource
	catalog CatalogSource
}

// NewService builds a prep-board service with the required dependencies.
func NewService(repo Repository, orders OrderSource, catalog CatalogSource) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("prepboard repository required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order source required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog source required")
	}
	return &service{repo: repo, orders: orders, catalog: catalog}, nil
}

func (s *service) Get(ctx context.Context, target types.Date) (*Board, error) {
	if target.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "target date required")
	}

	orders, err := s.orders.PrepBoardWindow(ctx, target, target.AddDays(schedule.PrepBoardWindowDays-1))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load prep board orders")
	}

	varieties, err := s.catalog.VarietiesForProducts(ctx, OrderedProductIDs(orders))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load prep board varieties")
	}

	headers := BuildRowHeaders(varieties, orders)
	partition := schedule.New(target, schedule.PrepBoardWindowDays, orders, orderPickupDate)

	buckets := make(map[string][]BoardOrder, len(partition.Keys))
	for _, key := range partition.Keys {
		bucket := make([]BoardOrder, 0, len(partition.Buckets[key]))
		for _, order := range partition.Buckets[key] {
			bucket = append(bucket, toBoardOrder(order))
		}
		buckets[key] = bucket
	}

	return &Board{
		TargetDate: target,
		RowHeaders: headers,
		Orders:     buckets,
		Subtotals:  ComputeSubtotals(headers, orders),
	}, nil
}

func (s *service) SetPrepared(ctx context.Context, orderID, productID int64, prepared bool) error {
	if orderID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if productID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
	}

	rows, err := s.repo.SetPrepared(ctx, orderID, productID, prepared)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order item")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "order item not found")
	}
	return nil
}
