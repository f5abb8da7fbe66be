package api

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed dashboard.html
var dashboardHTML []byte

// Dashboard serves the single-page forecast dashboard.
func (h *ForecastEchoHandler) Dashboard(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, dashboardHTML)
}
