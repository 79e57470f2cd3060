package controllers

import (
	"net/http"

	"github.com/pearstand/pear-backend/api/middleware"
	"github.com/pearstand/pear-backend/api/responses"
	"github.com/pearstand/pear-backend/api/validators"
	"github.com/pearstand/pear-backend/internal/orders"
	"github.com/pearstand/pear-backend/pkg/enums"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
	"github.com/pearstand/pear-backend/pkg/logger"
	"github.com/pearstand/pear-backend/pkg/types"
)

// OrdersList serves the 7-day pickup calendar. target_date defaults to today;
// customer_name filters by substring match.
func OrdersList(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		target, err := validators.ParseQueryDate(r, "target_date", types.Today())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customer := validators.SanitizeString(r.URL.Query().Get("customer_name"), 191)

		calendar, err := svc.ListWindow(r.Context(), target, customer)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, calendar)
	}
}

// OrdersRegister creates a pending order with its item list.
func OrdersRegister(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body orders.RegisterInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var userID *int64
		if id := middleware.UserIDFromContext(r.Context()); id > 0 {
			userID = &id
		}

		created, err := svc.Register(r.Context(), body, userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

// OrdersUpdate rewrites an order's base fields and replaces its items.
func OrdersUpdate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := validators.ParseURLInt64(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body orders.UpdateInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.Update(r.Context(), orderID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, updated)
	}
}

type updateStatusRequest struct {
	Status enums.OrderStatus `json:"status" validate:"required"`
}

// OrdersUpdateStatus transitions an order between pending, picked_up and
// canceled.
func OrdersUpdateStatus(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := validators.ParseURLInt64(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdateStatus(r.Context(), orderID, body.Status); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": orderID, "status": body.Status})
	}
}

type updatePickupDateRequest struct {
	PickupDate *types.Date `json:"pickup_date"`
}

// OrdersUpdatePickupDate is the single-field write behind a calendar drag.
// A null pickup_date moves the order to the unscheduled lane.
func OrdersUpdatePickupDate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "orders service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := validators.ParseURLInt64(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updatePickupDateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UpdatePickupDate(r.Context(), orderID, body.PickupDate); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"id": orderID, "pickup_date": body.PickupDate})
	}
}
