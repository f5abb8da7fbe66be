package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"TrendCast/internal/domain/models"
	domrepo "TrendCast/internal/domain/repository"
	"TrendCast/internal/service/ratelimit"
	"TrendCast/internal/source"
	"TrendCast/internal/usecase"
	xhttp "TrendCast/pkg/http"
	xlogger "TrendCast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ForecastEchoHandler implements Echo-based HTTP handlers following Clean Architecture.
type ForecastEchoHandler struct {
	logger     *xlogger.Logger
	runner     *usecase.ForecastRunner
	alternates map[string]domrepo.SeriesSource
	limiter    *ratelimit.Limiter
}

func NewForecastEchoHandler(logger *xlogger.Logger, runner *usecase.ForecastRunner) *ForecastEchoHandler {
	return &ForecastEchoHandler{
		logger:     logger,
		runner:     runner,
		alternates: make(map[string]domrepo.SeriesSource),
		limiter:    ratelimit.New(20, 10),
	}
}

// RegisterSource makes an additional series source selectable via the
// "source" query parameter.
func (h *ForecastEchoHandler) RegisterSource(src domrepo.SeriesSource) {
	h.alternates[src.Name()] = src
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
	e.GET("/healthz", h.Health)

	g := e.Group("/api", h.rateLimit)
	g.GET("/forecast", h.Forecast)
	g.POST("/forecast", h.ForecastUpload)
	g.GET("/forecast/csv", h.ForecastCSV)
	g.GET("/forecast/live", h.ForecastLive)
}

func (h *ForecastEchoHandler) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !h.limiter.Allow(c.RealIP()) {
			return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limit exceeded")
		}
		return next(c)
	}
}

func (h *ForecastEchoHandler) Forecast(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.respond(c, req)
	if err != nil {
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainAppError(err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, res)
}

// ForecastUpload runs the pipeline over a CSV document sent as the request
// body, bypassing the configured sources.
func (h *ForecastEchoHandler) ForecastUpload(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateQuery(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	upload := source.NewCSVReader(c.Request().Body)
	result, err := h.runner.RunSource(c.Request().Context(), upload, runParams(req))
	if err != nil {
		h.logger.Error("forecast upload error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainAppError(err))
	}
	return xhttp.SuccessResponse(c, usecase.BuildResponse(result, *req.History, upload.Name()))
}

func (h *ForecastEchoHandler) ForecastCSV(c echo.Context) error {
	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	// The artifact covers the full series, not the display tail.
	result, err := h.run(c, req)
	if err != nil {
		h.logger.Error("forecast csv error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, domainAppError(err))
	}

	var b strings.Builder
	b.WriteString("date,value,series\n")
	for _, p := range result.Series {
		fmt.Fprintf(&b, "%s,%.2f,history\n", p.Date, p.Value)
	}
	for _, p := range result.Forecast {
		fmt.Fprintf(&b, "%s,%.2f,forecast\n", p.Date, p.Prediction)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="forecast.csv"`)
	return c.Blob(http.StatusOK, "text/csv", []byte(b.String()))
}

func (h *ForecastEchoHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func runParams(req *models.ForecastRequest) usecase.RunParams {
	return usecase.RunParams{Window: *req.Window, Horizon: *req.Horizon, History: *req.History}
}

// resolveSource maps the optional source override to a registered source;
// nil means the runner's default.
func (h *ForecastEchoHandler) resolveSource(req *models.ForecastRequest) (domrepo.SeriesSource, error) {
	if req.Source == "" || req.Source == h.runner.Source().Name() {
		return nil, nil
	}
	src, ok := h.alternates[req.Source]
	if !ok {
		return nil, fmt.Errorf("%w: source %q not configured", models.ErrSourceNotFound, req.Source)
	}
	return src, nil
}

// respond resolves the requested source and runs the pipeline. Requests for
// the default source go through the cached path.
func (h *ForecastEchoHandler) respond(c echo.Context, req *models.ForecastRequest) (*models.ForecastResponse, error) {
	src, err := h.resolveSource(req)
	if err != nil {
		return nil, err
	}
	params := runParams(req)
	if src == nil {
		return h.runner.Response(c.Request().Context(), params)
	}
	result, err := h.runner.RunSource(c.Request().Context(), src, params)
	if err != nil {
		return nil, err
	}
	return usecase.BuildResponse(result, params.History, src.Name()), nil
}

// run executes the pipeline for the requested source and returns the raw
// run result.
func (h *ForecastEchoHandler) run(c echo.Context, req *models.ForecastRequest) (*models.ForecastResult, error) {
	src, err := h.resolveSource(req)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = h.runner.Source()
	}
	return h.runner.RunSource(c.Request().Context(), src, runParams(req))
}

// domainAppError maps domain sentinels to transport errors.
func domainAppError(err error) *xhttp.AppError {
	switch {
	case errors.Is(err, models.ErrSourceNotFound):
		return xhttp.NotFoundError(err.Error()).WithError(err)
	case errors.Is(err, models.ErrNoData):
		return xhttp.DataValidationError(err.Error()).WithError(err)
	case errors.Is(err, models.ErrInvalidWindow):
		return xhttp.BadRequestError(err.Error()).WithError(err)
	default:
		return xhttp.InternalError("forecast run failed").WithError(err)
	}
}
