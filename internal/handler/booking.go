package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/villa-booking/internal/service"
)

// requestTimeout bounds the store round trips of a single request.
const requestTimeout = 5 * time.Second

// BookingHandler serves reservations, blocages, the calendar and stats.
type BookingHandler struct {
	Bookings *service.BookingService
	Logger   *zap.Logger
}

func NewBookingHandler(s *service.BookingService, logger *zap.Logger) *BookingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingHandler{Bookings: s, Logger: logger}
}

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}
