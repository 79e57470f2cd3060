package board

import (
	"context"
	"fmt"

	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/types"
)

type orderLister interface {
	ListWindow(ctx context.Context, from, to types.Date, customerName string) ([]models.Order, error)
}

type pickupDateWriter interface {
	UpdatePickupDate(ctx context.Context, orderID int64, date *types.Date) error
}

// OrdersAdapter satisfies Rescheduler and Fetcher on top of the orders layer,
// for consumers that embed the engine in the same process as the service.
type OrdersAdapter struct {
	lister     orderLister
	writer     pickupDateWriter
	windowDays int
}

// NewOrdersAdapter wires the engine's persistence and fetch hooks to the
// orders repository and service.
func NewOrdersAdapter(lister orderLister, writer pickupDateWriter, windowDays int) (*OrdersAdapter, error) {
	if lister == nil {
		return nil, fmt.Errorf("order lister is required")
	}
	if writer == nil {
		return nil, fmt.Errorf("pickup date writer is required")
	}
	if windowDays <= 0 {
		return nil, fmt.Errorf("window days must be positive")
	}
	return &OrdersAdapter{lister: lister, writer: writer, windowDays: windowDays}, nil
}

func (a *OrdersAdapter) Reschedule(ctx context.Context, orderID int64, date *types.Date) error {
	return a.writer.UpdatePickupDate(ctx, orderID, date)
}

func (a *OrdersAdapter) FetchOrders(ctx context.Context, base types.Date) ([]models.Order, error) {
	return a.lister.ListWindow(ctx, base, base.AddDays(a.windowDays-1), "")
}
