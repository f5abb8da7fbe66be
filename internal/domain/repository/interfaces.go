package repository

import (
	"context"

	"TrendCast/internal/domain/models"
)

// SeriesSource produces the ordered series one pipeline run works on.
// Implementations: synthetic generator, CSV file/reader, ClickHouse table.
type SeriesSource interface {
	// Load returns the series sorted ascending by date. It fails with
	// models.ErrSourceNotFound when the backing source does not exist and
	// with models.ErrNoData when it yields no usable observations.
	Load(ctx context.Context) (models.Series, error)

	// Name identifies the source in logs, cache keys and metrics labels.
	Name() string
}

// ResultPublisher receives the combined history+forecast rows after a
// successful run.
type ResultPublisher interface {
	PublishResult(ctx context.Context, result *models.ForecastResult) error
	Close() error
}

// Metrics records pipeline observability signals.
type Metrics interface {
	RecordRun(source string)
	RecordError(kind string)
	RecordCacheHit(hit bool)
	RecordNextForecast(source string, value float64)
	RecordRunDuration(source string, seconds float64)
}
