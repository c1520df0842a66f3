package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/authz"
	apperrors "turfbook/internal/errors"
	"turfbook/internal/middleware"
	"turfbook/internal/service"
)

type Handlers struct {
	services *service.Services
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{services: services}
}

// respondError maps domain errors to HTTP statuses. Messages on the
// 4xx paths are shown to the client verbatim.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperrors.ErrTurfNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, apperrors.ErrSlotTaken):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		status = http.StatusForbidden
		message = "Forbidden"
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "Unauthorized"
	case errors.Is(err, apperrors.ErrPastDate),
		errors.Is(err, apperrors.ErrPastTimeSlot),
		errors.Is(err, apperrors.ErrCancelledBooking),
		errors.Is(err, apperrors.ErrNegativeAmount),
		errors.Is(err, apperrors.ErrAmountExceedsTotal):
		status = http.StatusBadRequest
		message = err.Error()
	}

	c.Error(err)
	c.JSON(status, gin.H{"error": message})
}

// requestIdentity pulls the authenticated user id and resolved identity
// off the request context.
func requestIdentity(c *gin.Context) (int64, *authz.Identity, bool) {
	userID, ok := middleware.UserIDFromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, nil, false
	}

	identity, ok := authz.FromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, nil, false
	}

	return userID, identity, true
}
