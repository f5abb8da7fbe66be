package usecase

import (
	"context"
	"errors"
	"time"

	"TrendCast/internal/analysis"
	"TrendCast/internal/domain/models"
	domrepo "TrendCast/internal/domain/repository"
	"TrendCast/internal/render"
	"TrendCast/pkg/cache"
	applogger "TrendCast/pkg/logger"
)

// RunParams are the tunables of one pipeline run.
type RunParams struct {
	Window  int
	Horizon int
	History int
}

// ForecastRunner executes the forecast pipeline: load series, smooth,
// extend, label future dates. Caching, metrics and result export are all
// optional collaborators.
type ForecastRunner struct {
	source    domrepo.SeriesSource
	cache     cache.Service
	cacheTTL  time.Duration
	metrics   domrepo.Metrics
	publisher domrepo.ResultPublisher
	l         *applogger.Logger
}

// RunnerOption configures a ForecastRunner.
type RunnerOption func(*ForecastRunner)

// WithCache enables response caching with the given TTL.
func WithCache(c cache.Service, ttl time.Duration) RunnerOption {
	return func(r *ForecastRunner) {
		r.cache = c
		r.cacheTTL = ttl
	}
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m domrepo.Metrics) RunnerOption {
	return func(r *ForecastRunner) {
		r.metrics = m
	}
}

// WithPublisher attaches a result publisher that receives each successful
// run.
func WithPublisher(p domrepo.ResultPublisher) RunnerOption {
	return func(r *ForecastRunner) {
		r.publisher = p
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *applogger.Logger) RunnerOption {
	return func(r *ForecastRunner) {
		r.l = l
	}
}

func NewForecastRunner(source domrepo.SeriesSource, opts ...RunnerOption) *ForecastRunner {
	r := &ForecastRunner{source: source}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Source returns the configured series source.
func (r *ForecastRunner) Source() domrepo.SeriesSource { return r.source }

// Run executes one pipeline pass against the configured source.
func (r *ForecastRunner) Run(ctx context.Context, params RunParams) (*models.ForecastResult, error) {
	return r.RunSource(ctx, r.source, params)
}

// RunSource executes one pipeline pass against an explicit source, e.g. an
// uploaded CSV buffer.
func (r *ForecastRunner) RunSource(ctx context.Context, source domrepo.SeriesSource, params RunParams) (*models.ForecastResult, error) {
	start := time.Now()

	series, err := source.Load(ctx)
	if err != nil {
		r.recordError(err)
		return nil, err
	}

	values := series.Values()
	smoothed, err := analysis.MovingAverage(values, params.Window)
	if err != nil {
		r.recordError(err)
		return nil, err
	}

	predictions := analysis.Forecast(values, params.Window, params.Horizon)
	last, _ := series.Last()
	dates := analysis.FutureDates(last.Date, len(predictions))

	forecast := make([]models.ForecastPoint, len(predictions))
	for i, v := range predictions {
		forecast[i] = models.ForecastPoint{Date: dates[i], Prediction: v}
	}

	result := &models.ForecastResult{
		Window:      params.Window,
		Horizon:     params.Horizon,
		Series:      series,
		Smoothed:    smoothed,
		Forecast:    forecast,
		Sparkline:   render.Chart(values, predictions),
		GeneratedAt: time.Now(),
	}

	if r.metrics != nil {
		r.metrics.RecordRun(source.Name())
		r.metrics.RecordRunDuration(source.Name(), time.Since(start).Seconds())
		if next, ok := result.NextForecast(); ok {
			r.metrics.RecordNextForecast(source.Name(), next)
		}
	}

	if r.publisher != nil {
		if err := r.publisher.PublishResult(ctx, result); err != nil && r.l != nil {
			r.l.Warn("result export failed", applogger.Error(err))
		}
	}

	if r.l != nil {
		r.l.Info("forecast run complete",
			applogger.String("source", source.Name()),
			applogger.Int("observations", len(series)),
			applogger.Int("window", params.Window),
			applogger.Int("horizon", params.Horizon),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}

	return result, nil
}

// Response runs the pipeline and shapes the dashboard payload, consulting
// the cache first when one is configured.
func (r *ForecastRunner) Response(ctx context.Context, params RunParams) (*models.ForecastResponse, error) {
	key := cache.Key("forecast", r.source.Name(), params.Window, params.Horizon, params.History)

	if r.cache != nil {
		var cached models.ForecastResponse
		if err := r.cache.Get(ctx, key, &cached); err == nil {
			if r.metrics != nil {
				r.metrics.RecordCacheHit(true)
			}
			return &cached, nil
		}
		if r.metrics != nil {
			r.metrics.RecordCacheHit(false)
		}
	}

	result, err := r.Run(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := BuildResponse(result, params.History, r.source.Name())

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, resp, r.cacheTTL); err != nil && r.l != nil {
			r.l.Warn("response cache write failed", applogger.Error(err))
		}
	}

	return resp, nil
}

// BuildResponse shapes a run result into the dashboard payload. history is
// the number of trailing rows to include.
func BuildResponse(result *models.ForecastResult, history int, source string) *models.ForecastResponse {
	tail := result.Series.Tail(history)
	smoothedTail := result.Smoothed
	if len(tail) < len(smoothedTail) {
		smoothedTail = smoothedTail[len(smoothedTail)-len(tail):]
	}

	rows := make([]models.HistoryRow, len(tail))
	for i, p := range tail {
		row := models.HistoryRow{Date: p.Date, Actual: p.Value}
		if i < len(smoothedTail) && smoothedTail[i].Valid {
			v := smoothedTail[i].Value
			row.MA = &v
		}
		rows[i] = row
	}

	resp := &models.ForecastResponse{
		Window:      result.Window,
		Horizon:     result.Horizon,
		Source:      source,
		History:     rows,
		Forecast:    result.Forecast,
		Sparkline:   result.Sparkline,
		GeneratedAt: result.GeneratedAt,
	}
	if last, ok := result.Series.Last(); ok {
		resp.LastActual = last.Value
	}
	if next, ok := result.NextForecast(); ok {
		resp.NextForecast = &next
	}
	return resp
}

func (r *ForecastRunner) recordError(err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordError(errorKind(err))
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrSourceNotFound):
		return "not_found"
	case errors.Is(err, models.ErrNoData):
		return "data_validation"
	case errors.Is(err, models.ErrInvalidWindow):
		return "invalid_argument"
	default:
		return "internal"
	}
}
