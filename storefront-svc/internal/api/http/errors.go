package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"restaurant-storefront/internal/domain"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrTableNotFound),
		errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateProductID),
		errors.Is(err, domain.ErrDuplicateTableID),
		errors.Is(err, domain.ErrDuplicateTableNumber),
		errors.Is(err, domain.ErrDuplicateOrderID),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidProductName),
		errors.Is(err, domain.ErrInvalidProductPrice),
		errors.Is(err, domain.ErrInvalidTableNumber),
		errors.Is(err, domain.ErrInvalidTableCapacity),
		errors.Is(err, domain.ErrIncompleteReservation),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrTotalMismatch),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		log.Printf("ERROR: %v", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode response: %v", err)
	}
}
