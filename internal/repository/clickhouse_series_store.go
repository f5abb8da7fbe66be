package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"TrendCast/internal/domain/models"
	pkgch "TrendCast/pkg/clickhouse"
	applogger "TrendCast/pkg/logger"
)

// CHSeriesStore loads observations from a ClickHouse table with (date, value)
// columns. It implements repository.SeriesSource for deployments that keep
// the demand history in the warehouse instead of a CSV.
type CHSeriesStore struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

func NewCHSeriesStore(ch *pkgch.Client, table string) *CHSeriesStore {
	return &CHSeriesStore{db: ch.DB(), table: table}
}

// SetLogger injects a structured logger.
func (s *CHSeriesStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHSeriesStore) Name() string { return "clickhouse" }

func (s *CHSeriesStore) Load(ctx context.Context) (models.Series, error) {
	start := time.Now()
	q := fmt.Sprintf(`
        SELECT date, value
        FROM %s
        ORDER BY date ASC
    `, s.table)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse series query error",
				applogger.String("table", s.table),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("load series: %w", err)
	}
	defer rows.Close()

	series := make(models.Series, 0, 256)
	for rows.Next() {
		var (
			day   time.Time
			value float64
		)
		if err := rows.Scan(&day, &value); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse series scan error",
					applogger.String("table", s.table),
					applogger.Error(err),
				)
			}
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		series = append(series, models.SeriesPoint{
			Date:  models.NewDate(day.Year(), int(day.Month()), day.Day()),
			Value: value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: table %s", models.ErrNoData, s.table)
	}
	if s.l != nil {
		s.l.Info("clickhouse series loaded",
			applogger.String("table", s.table),
			applogger.Int("rows", len(series)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return series, nil
}
