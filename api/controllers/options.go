package controllers

import (
	"net/http"

	"github.com/pearstand/pear-backend/api/responses"
	"github.com/pearstand/pear-backend/internal/catalog"
	pkgerrors "github.com/pearstand/pear-backend/pkg/errors"
	"github.com/pearstand/pear-backend/pkg/logger"
)

// VarietyOptions serves the variety select-box entries for the order form.
func VarietyOptions(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		options, err := svc.VarietyOptions(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, options)
	}
}

// ProductOptions serves the active products grouped per variety.
func ProductOptions(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		groups, err := svc.ProductOptions(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, groups)
	}
}
