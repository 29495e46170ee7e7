package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Availability handles GET /api/calendar/availability: active reservations
// and every blocage.
func (h *BookingHandler) Availability(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	snap, err := h.Bookings.Availability(ctx)
	if err != nil {
		return respondError(c, h.Logger, err, "load availability failed")
	}
	return c.JSON(http.StatusOK, snap)
}

// Stats handles GET /api/stats.
func (h *BookingHandler) Stats(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	st, err := h.Bookings.Stats(ctx)
	if err != nil {
		return respondError(c, h.Logger, err, "load stats failed")
	}
	return c.JSON(http.StatusOK, st)
}
