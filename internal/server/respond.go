// Package server exposes the REST JSON surface. Handlers parse requests,
// call the services and map domain errors to status codes; no domain logic
// lives here.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"coffeeshop-be/internal/catalog"
	"coffeeshop-be/internal/codec"
	"coffeeshop-be/internal/customer"
	"coffeeshop-be/internal/employee"
	"coffeeshop-be/internal/logger"
	"coffeeshop-be/internal/order"
	"coffeeshop-be/internal/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type errorBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		vErr    *validate.Error
		enumErr *codec.UnknownEnumVariantError
		trErr   *order.TransitionError
	)

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: "validation failed", Fields: vErr.Fields})
	case errors.Is(err, codec.ErrMalformedIdentifier),
		errors.Is(err, codec.ErrMalformedDecimal),
		errors.Is(err, codec.ErrMalformedTimestamp),
		errors.Is(err, codec.ErrMalformedDate),
		errors.As(err, &enumErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, catalog.ErrDrinkNotFound),
		errors.Is(err, catalog.ErrExtraNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, customer.ErrEmailTaken),
		errors.Is(err, employee.ErrEmailTaken):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.As(err, &trErr):
		writeJSON(w, http.StatusConflict, errorBody{Error: trErr.Error()})
	case errors.Is(err, order.ErrExtraUnavailable):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: err.Error()})
	default:
		logger.FromCtx(ctx).Error("request failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	parsed, err := codec.ParseID(r.PathValue("id"))
	if err != nil {
		writeError(r.Context(), w, err)
		return uuid.Nil, false
	}
	return parsed, true
}
