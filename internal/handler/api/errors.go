package api

import (
	"context"
	"errors"
	"net/http"

	"promo-bonus-service/internal/handler/httperr"
	"promo-bonus-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case sentinels to HTTP status codes.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrNoStock):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No promo codes available right now", nil)
	case errs.Is(err, errs.ErrBusy):
		httperr.AbortRetryable(c, http.StatusServiceUnavailable, err, "Service busy, retry later", 1)
	case errs.Is(err, errs.ErrInsufficientBalance):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient bonus balance", nil)
	case errs.Is(err, errs.ErrDiscountLimit):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order discount limit reached", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Order is already finalized", nil)
	case errs.Is(err, errs.ErrInvalidPayload):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payload", nil)
	case errs.Is(err, errs.ErrProducerUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Code producer unavailable", nil)
	case errs.Is(err, errs.ErrStoreFailure):
		httperr.AbortRetryable(c, http.StatusServiceUnavailable, err, "Storage unavailable, retry later", 1)
	case errors.Is(err, context.DeadlineExceeded):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Request timed out", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
