package prepboard

import (
	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/enums"
	"github.com/pearstand/pear-backend/pkg/types"
)

// BoardItem is one line of an order as the board consumes it, keyed by
// product id in BoardOrder.Items.
type BoardItem struct {
	Quantity   int  `json:"quantity"`
	IsPrepared bool `json:"is_prepared"`
}

// BoardOrder is an order shaped for the prep-board matrix.
type BoardOrder struct {
	ID           int64               `json:"id"`
	CustomerName string              `json:"customer_name"`
	PickupDate   *types.Date         `json:"pickup_date"`
	PickupTime   *string             `json:"pickup_time"`
	Status       enums.OrderStatus   `json:"status"`
	Notes        *string             `json:"notes"`
	Items        map[int64]BoardItem `json:"items"`
}

// Board is the full prep-board payload for a 2-day window.
type Board struct {
	TargetDate types.Date              `json:"target_date"`
	RowHeaders []RowHeader             `json:"row_headers"`
	Orders     map[string][]BoardOrder `json:"orders"`
	Subtotals  Subtotals               `json:"subtotals"`
}

func orderPickupDate(order models.Order) *types.Date {
	return order.PickupDate
}

func toBoardOrder(order models.Order) BoardOrder {
	items := make(map[int64]BoardItem, len(order.Items))
	for _, item := range order.Items {
		items[item.ProductID] = BoardItem{Quantity: item.Quantity, IsPrepared: item.IsPrepared}
	}
	return BoardOrder{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		PickupDate:   order.PickupDate,
		PickupTime:   order.PickupTime,
		Status:       order.Status,
		Notes:        order.Notes,
		Items:        items,
	}
}
