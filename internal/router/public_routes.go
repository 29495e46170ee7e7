package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/villa-booking/internal/handler"
)

// RegisterPublic registers the endpoints guests use to browse the
// calendar and book.  No token is required.
func RegisterPublic(e *echo.Echo, d Deps) {
	b := d.Bookings
	g := e.Group("/api")
	g.GET("", handler.APIRoot)
	g.GET("/", handler.APIRoot)
	g.GET("/formulas", handler.Formulas)

	// cached until the next reservation or blocage write
	g.GET("/calendar/availability", b.Availability, d.use(d.Cache))

	g.POST("/reservations", b.CreateReservation, d.use(d.RateLimit), d.use(d.Invalidate))
	g.GET("/reservations/:id", b.GetReservation)
}
