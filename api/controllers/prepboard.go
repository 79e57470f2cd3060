package controllers

import (
	"net/http"

	"github.com/pearstand/pear-backend/api/responses"
	"github.com/pearstand/pear-backend/api/validators"
	"github.com/pearstand/pear-backend/internal/prepboard"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
	"github.com/pearstand/pear-backend/pkg/logger"
	"github.com/pearstand/pear-backend/pkg/types"
)

// PrepBoard serves the 2-day preparation matrix starting at target_date.
func PrepBoard(svc prepboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "prep board service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		target, err := validators.ParseQueryDate(r, "target_date", types.Today())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		board, err := svc.Get(r.Context(), target)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, board)
	}
}

type setPreparedRequest struct {
	IsPrepared *bool `json:"is_prepared" validate:"required"`
}

// OrderItemSetPrepared toggles the prepared flag on a single order line.
func OrderItemSetPrepared(svc prepboard.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "prep board service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		orderID, err := validators.ParseURLInt64(r, "orderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := validators.ParseURLInt64(r, "productId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body setPreparedRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SetPrepared(r.Context(), orderID, productID, *body.IsPrepared); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{
			"order_id":    orderID,
			"product_id":  productID,
			"is_prepared": *body.IsPrepared,
		})
	}
}
