package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/villa-booking/internal/model"
)

// CreateBlocage handles POST /api/blocages.
func (h *BookingHandler) CreateBlocage(c echo.Context) error {
	var in model.BlocageInput
	if err := bind(c, &in); err != nil {
		return respondError(c, h.Logger, err, "invalid body")
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	b, err := h.Bookings.CreateBlocage(ctx, in)
	if err != nil {
		return respondError(c, h.Logger, err, "create blocage failed")
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) ListBlocages(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.Bookings.ListBlocages(ctx)
	if err != nil {
		return respondError(c, h.Logger, err, "list blocages failed")
	}
	if list == nil {
		list = []model.Blocage{}
	}
	return c.JSON(http.StatusOK, list)
}

// DeleteBlocage handles DELETE /api/blocages/:id.
func (h *BookingHandler) DeleteBlocage(c echo.Context) error {
	id := strings.TrimSpace(c.Param("id"))
	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.Bookings.DeleteBlocage(ctx, id); err != nil {
		return respondError(c, h.Logger, fmt.Errorf("blocage %w", err), "delete blocage failed")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Blocage deleted"})
}
