package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/metrics"
)

const genericServerError = "internal server error"

// mapServiceErrorToResponse translates a service error into an HTTP status
// and a user-facing message. Storage errors are logged and replaced with a
// generic message so internals never leak to clients.
func mapServiceErrorToResponse(err error) (int, string) {
	var fundsErr *domain.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		return http.StatusBadRequest, fmt.Sprintf("%s: need %d %s, have %d",
			domain.ErrMsgInsufficientFunds, fundsErr.Needed, fundsErr.Currency, fundsErr.Balance)
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, domain.ErrMsgPlayerNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, domain.ErrMsgItemNotFound
	case errors.Is(err, domain.ErrInvalidItemKind):
		return http.StatusBadRequest, domain.ErrMsgInvalidItemKind
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, domain.ErrMsgInsufficientFunds
	case errors.Is(err, domain.ErrAttributeOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUnknownAttribute):
		return http.StatusBadRequest, domain.ErrMsgUnknownAttribute
	case errors.Is(err, domain.ErrInvalidCurrency), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, domain.ErrMsgInvalidInput
	default:
		return http.StatusInternalServerError, genericServerError
	}
}

// respondServiceError writes the mapped error response and logs 5xx causes.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapServiceErrorToResponse(err)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	respondError(w, r, status, message)
}

// settlementFailureReason labels a failed settlement for metrics.
func settlementFailureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return metrics.ReasonPlayerNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return metrics.ReasonItemNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return metrics.ReasonInsufficientFunds
	default:
		return metrics.ReasonStorageFailure
	}
}
