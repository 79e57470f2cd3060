package enums

// OrderStatus tracks the lifecycle of a storefront pickup order.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusPickedUp OrderStatus = "picked_up"
	OrderStatusCanceled OrderStatus = "canceled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPickedUp, OrderStatusCanceled:
		return true
	}
	return false
}
