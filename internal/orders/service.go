package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pearstand/pear-backend/internal/schedule"
	"github.com/pearstand/pear-backend/pkg/db/models"
	"github.com/pearstand/pear-backend/pkg/enums"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
	"github.com/pearstand/pear-backend/pkg/types"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines the order operations behind the calendar and the forms.
type Service interface {
	ListWindow(ctx context.Context, target types.Date, customerName string) (Calendar, error)
	Register(ctx context.Context, input RegisterInput, userID *int64) (*OrderResponse, error)
	Update(ctx context.Context, orderID int64, input UpdateInput) (*OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID int64, status enums.OrderStatus) error
	UpdatePickupDate(ctx context.Context, orderID int64, date *types.Date) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds an orders service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// ListWindow loads the orders of the 7-day window starting at target plus
// every unscheduled order, and shapes them into the calendar map the board
// consumes.
func (s *service) ListWindow(ctx context.Context, target types.Date, customerName string) (Calendar, error) {
	if target.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "target date required")
	}

	loaded, err := s.repo.ListWindow(ctx, target, target.AddDays(schedule.CalendarWindowDays), strings.TrimSpace(customerName))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	partition := schedule.New(target, schedule.CalendarWindowDays, loaded, func(o models.Order) *types.Date {
		return o.PickupDate
	})

	calendar := make(Calendar, len(partition.Keys)+1)
	for _, key := range partition.Keys {
		bucket := make([]OrderResponse, 0, len(partition.Buckets[key]))
		for _, order := range partition.Buckets[key] {
			bucket = append(bucket, toOrderResponse(order))
		}
		calendar[key] = bucket
	}
	unreserved := make([]OrderResponse, 0, len(partition.Unscheduled))
	for _, order := range partition.Unscheduled {
		unreserved = append(unreserved, toOrderResponse(order))
	}
	calendar[UnreservedKey] = unreserved
	return calendar, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput, userID *int64) (*OrderResponse, error) {
	if err := validateWriteInput(input); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerName: strings.TrimSpace(input.CustomerName),
		PickupDate:   input.PickupDate,
		PickupTime:   input.PickupTime,
		Status:       enums.OrderStatusPending,
		Notes:        input.Notes,
		UserID:       userID,
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		created, err := repo.CreateOrder(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
		}
		if err := repo.CreateOrderItems(ctx, buildItems(created.ID, input.Items)); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, order.ID)
}

// Update rewrites the order's base fields and replaces its item list in one
// transaction.
func (s *service) Update(ctx context.Context, orderID int64, input UpdateInput) (*OrderResponse, error) {
	if orderID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if err := validateWriteInput(input); err != nil {
		return nil, err
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := s.mustFind(ctx, repo, orderID); err != nil {
			return err
		}

		updates := map[string]any{
			"customer_name": strings.TrimSpace(input.CustomerName),
			"pickup_time":   input.PickupTime,
			"notes":         input.Notes,
		}
		if input.PickupDate != nil {
			updates["pickup_date"] = *input.PickupDate
		} else {
			updates["pickup_date"] = nil
		}
		if err := repo.UpdateOrder(ctx, orderID, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order")
		}
		if err := repo.DeleteOrderItems(ctx, orderID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete order items")
		}
		if err := repo.CreateOrderItems(ctx, buildItems(orderID, input.Items)); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order items")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reload(ctx, orderID)
}

func (s *service) UpdateStatus(ctx context.Context, orderID int64, status enums.OrderStatus) error {
	if orderID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}
	if !status.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]string{"status": string(status)})
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		order, err := s.mustFind(ctx, repo, orderID)
		if err != nil {
			return err
		}
		if order.Status == status {
			return nil
		}
		if err := repo.UpdateOrder(ctx, orderID, map[string]any{"status": status}); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
		}
		return nil
	})
}

// UpdatePickupDate is the single-field write that ends a calendar drag. A nil
// date moves the order to the unscheduled lane.
func (s *service) UpdatePickupDate(ctx context.Context, orderID int64, date *types.Date) error {
	if orderID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id required")
	}

	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := s.mustFind(ctx, repo, orderID); err != nil {
			return err
		}
		updates := map[string]any{"pickup_date": nil}
		if date != nil {
			updates["pickup_date"] = *date
		}
		if err := repo.UpdateOrder(ctx, orderID, updates); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update pickup date")
		}
		return nil
	})
}

func (s *service) mustFind(ctx context.Context, repo Repository, orderID int64) (*models.Order, error) {
	order, err := repo.FindOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}
	return order, nil
}

func (s *service) reload(ctx context.Context, orderID int64) (*OrderResponse, error) {
	order, err := s.mustFind(ctx, s.repo, orderID)
	if err != nil {
		return nil, err
	}
	resp := toOrderResponse(*order)
	return &resp, nil
}

func validateWriteInput(input RegisterInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer name required")
	}
	if len(input.Items) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "at least one item required")
	}
	seen := map[int64]struct{}{}
	for _, item := range input.Items {
		if item.ProductID <= 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "product id required")
		}
		if item.Quantity < 1 {
			return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
		}
		if _, ok := seen[item.ProductID]; ok {
			return pkgerrors.New(pkgerrors.CodeValidation, "duplicate product in item list").
				WithDetails(map[string]int64{"product_id": item.ProductID})
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}

func buildItems(orderID int64, inputs []ItemInput) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(inputs))
	for _, input := range inputs {
		items = append(items, models.OrderItem{
			OrderID:   orderID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
		})
	}
	return items
}
