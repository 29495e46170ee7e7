package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/villa-booking/internal/model"
)

// Health is used by load balancers and monitoring to check the process
// is up.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// APIRoot answers GET /api/.
func APIRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "Villa Rental API"})
}

// Formulas lists the bookable formulas with their prices.
func Formulas(c echo.Context) error {
	return c.JSON(http.StatusOK, model.Formulas())
}
