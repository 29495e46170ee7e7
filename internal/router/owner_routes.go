package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/villa-booking/internal/middleware"
)

// RegisterOwner registers the owner dashboard endpoints.  Every route needs
// a valid bearer token whose subject is the administrator.
func RegisterOwner(e *echo.Echo, d Deps) {
	b := d.Bookings
	g := e.Group("/api",
		middleware.BearerAuth(d.Tokens),
		middleware.RequireOwner(d.Owner),
	)

	g.GET("/reservations", b.ListReservations)

	g.POST("/blocages", b.CreateBlocage, d.use(d.Invalidate))
	g.GET("/blocages", b.ListBlocages)
	g.DELETE("/blocages/:id", b.DeleteBlocage, d.use(d.Invalidate))

	g.GET("/stats", b.Stats)
}
