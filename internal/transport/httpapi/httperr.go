package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbook/backend/internal/service/booking"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{Code: code, Message: message})
}

func badRequest(c *gin.Context, code, message string) {
	writeError(c, http.StatusBadRequest, code, message)
}

// serviceError maps a booking error to a response. Expected outcomes are
// logged at Info or Warn; only unexpected failures are logged at Error.
func serviceError(c *gin.Context, log *slog.Logger, err error) {
	attrs := []any{slog.Any("err", err), slog.String("path", c.FullPath())}

	switch {
	case errors.Is(err, booking.ErrConflict):
		log.Info("slot conflict", attrs...)
		writeError(c, http.StatusConflict, "slot_conflict", "That time was just taken. Pick a different slot.")
		return
	case errors.Is(err, booking.ErrExpired):
		log.Info("hold expired", attrs...)
		writeError(c, http.StatusGone, "hold_expired", "The hold has expired. Pick the slot again.")
		return
	case errors.Is(err, booking.ErrNoAvailability):
		log.Info("no availability", attrs...)
		writeError(c, http.StatusConflict, "no_availability", "No staff member is available at that time.")
		return
	case errors.Is(err, booking.ErrInvalidState):
		log.Info("invalid state", attrs...)
		writeError(c, http.StatusConflict, "invalid_state", "The appointment can no longer be changed that way.")
		return
	case errors.Is(err, booking.ErrNotFound):
		log.Info("not found", attrs...)
		writeError(c, http.StatusNotFound, "not_found", err.Error())
		return
	}

	var vErr *booking.ValidationError
	if errors.As(err, &vErr) {
		log.Warn("invalid request", attrs...)
		badRequest(c, "invalid_request", vErr.Error())
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn("request timed out", attrs...)
		writeError(c, http.StatusGatewayTimeout, "timeout", "request timed out")
		return
	}
	log.Error("request failed", attrs...)
	writeError(c, http.StatusInternalServerError, "internal_error", "internal error")
}
