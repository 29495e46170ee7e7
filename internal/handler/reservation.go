package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/villa-booking/internal/model"
)

// CreateReservation handles POST /api/reservations.  Overlapping requests
// are refused with 400 and nothing is written.
func (h *BookingHandler) CreateReservation(c echo.Context) error {
	var in model.ReservationInput
	if err := bind(c, &in); err != nil {
		return respondError(c, h.Logger, err, "invalid body")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.Bookings.CreateReservation(ctx, in)
	if err != nil {
		return respondError(c, h.Logger, err, "create reservation failed")
	}
	return c.JSON(http.StatusOK, res)
}

// GetReservation handles GET /api/reservations/:id.
func (h *BookingHandler) GetReservation(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.Bookings.GetReservation(ctx, id)
	if err != nil {
		return respondError(c, h.Logger, fmt.Errorf("reservation %w", err), "load reservation failed")
	}
	return c.JSON(http.StatusOK, res)
}

// ListReservations handles GET /api/reservations for the owner.
func (h *BookingHandler) ListReservations(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.Bookings.ListReservations(ctx)
	if err != nil {
		return respondError(c, h.Logger, err, "list reservations failed")
	}
	if list == nil {
		list = []model.Reservation{}
	}
	return c.JSON(http.StatusOK, list)
}
