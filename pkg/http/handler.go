package http

import "github.com/labstack/echo/v4"

// Handler registers a route surface (the dashboard page, the forecast API)
// on the Echo instance built by NewServer.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
