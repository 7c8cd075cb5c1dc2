package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"mall-space-booking/internal/domain/pricing"
	"mall-space-booking/internal/domain/reservation"
	"mall-space-booking/internal/domain/space"
	"mall-space-booking/internal/handler/httperr"
	"mall-space-booking/internal/pkg/errs"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: the first matching target wins.
var errorMappings = []errorMapping{
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{pricing.ErrUnpricedCombination, http.StatusUnprocessableEntity, "No rate for this space category on the requested day type"},
	{pricing.ErrInvalidQuantity, http.StatusBadRequest, "Invalid quantity"},
	{pricing.ErrInvalidDiscount, http.StatusBadRequest, "Discount percent must be between 0 and 100"},
	{pricing.ErrInvalidDateRange, http.StatusBadRequest, "Start date must not be after end date"},
	{pricing.ErrInvalidDate, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD"},
	{pricing.ErrUnknownClassification, http.StatusBadRequest, "Unknown day classification"},
	{space.ErrUnknownCategory, http.StatusBadRequest, "Unknown space category"},
	{reservation.ErrInvalidTimeOfDay, http.StatusBadRequest, "Invalid time, expected HH:MM"},
	{reservation.ErrInvalidInterval, http.StatusBadRequest, "Invalid reservation interval"},
	{reservation.ErrInvalidStatus, http.StatusBadRequest, "Invalid reservation status"},
	{reservation.ErrEmptySpaceID, http.StatusBadRequest, "Space id is required"},
	{errs.ErrLockUnavailable, http.StatusServiceUnavailable, "Space is busy, retry shortly"},
}

// abortWithUseCaseError maps usecase and domain errors onto the public error envelope.
func abortWithUseCaseError(c *gin.Context, err error) {
	var conflict *reservation.ConflictError
	if errors.As(err, &conflict) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Space already booked for an overlapping interval",
			gin.H{"conflictingReservationId": conflict.ConflictingID})
		return
	}
	var transition *reservation.TransitionError
	if errors.As(err, &transition) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid reservation status transition",
			gin.H{"from": transition.From, "to": transition.To})
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	slog.Error("unhandled use case error",
		"path", c.FullPath(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 12))
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", gin.H{"reason": err.Error()})
}
