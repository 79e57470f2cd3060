package orders

import (
	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/enums"
	"github.com/pearstand/pear-backend/pkg/types"
)

// UnreservedKey is the calendar map key holding orders without a pickup date.
const UnreservedKey = "unreserved_data"

// ItemInput is one requested line of an order write.
type ItemInput struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// RegisterInput carries the fields of the order registration form.
type RegisterInput struct {
	CustomerName string      `json:"customer_name" validate:"required,max=191"`
	PickupDate   *types.Date `json:"pickup_date"`
	PickupTime   *string     `json:"pickup_time" validate:"omitempty,max=20"`
	Notes        *string     `json:"notes" validate:"omitempty,max=300"`
	Items        []ItemInput `json:"items" validate:"required,min=1,dive"`
}

// UpdateInput mirrors RegisterInput; the item list is replaced wholesale.
type UpdateInput = RegisterInput

// ItemResponse is one order line shaped for the calendar payload.
type ItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	VarietyName string `json:"variety_name,omitempty"`
	Quantity    int    `json:"quantity"`
	IsPrepared  bool   `json:"is_prepared"`
}

// OrderResponse is the wire shape of a single order.
type OrderResponse struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"customer_name"`
	PickupDate   *types.Date       `json:"pickup_date"`
	PickupTime   *string           `json:"pickup_time"`
	Status       enums.OrderStatus `json:"status"`
	Notes        *string           `json:"notes"`
	Items        []ItemResponse    `json:"items"`
}

// Calendar is the 7-day pickup calendar payload: one key per window day plus
// UnreservedKey, every key present even when its list is empty.
type Calendar map[string][]OrderResponse

func toOrderResponse(order models.Order) OrderResponse {
	items := make([]ItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		resp := ItemResponse{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			IsPrepared: item.IsPrepared,
		}
		if item.Product != nil {
			resp.ProductName = item.Product.Name
			if item.Product.Variety != nil {
				resp.VarietyName = item.Product.Variety.Name
			}
		}
		items = append(items, resp)
	}
	return OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		PickupDate:   order.PickupDate,
		PickupTime:   order.PickupTime,
		Status:       order.Status,
		Notes:        order.Notes,
		Items:        items,
	}
}
