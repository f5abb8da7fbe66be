package source

import (
	"context"
	"math"

	"TrendCast/internal/domain/models"
)

// DefaultSyntheticLength is the series length the terminal demo uses when no
// external data is configured.
const DefaultSyntheticLength = 36

// Synthetic generates a deterministic monthly demand-like series: baseline
// plus linear trend, a 12-point sinusoidal seasonal term and a 5-point
// triangular cyclical term, rounded to 2 decimals.
type Synthetic struct {
	start  models.Date
	length int
}

// NewSynthetic builds a generator starting at 2021-01-01. Non-positive
// lengths fall back to the default.
func NewSynthetic(length int) *Synthetic {
	if length <= 0 {
		length = DefaultSyntheticLength
	}
	return &Synthetic{start: models.NewDate(2021, 1, 1), length: length}
}

func (s *Synthetic) Name() string { return "synthetic" }

func (s *Synthetic) Load(_ context.Context) (models.Series, error) {
	series := make(models.Series, 0, s.length)
	for i := 0; i < s.length; i++ {
		trend := 0.9 * float64(i)
		seasonal := 12 * math.Sin(2*math.Pi*float64(i)/12)
		cyclical := 1.8 * float64(i%5-2)
		value := 120 + trend + seasonal + cyclical
		series = append(series, models.SeriesPoint{
			Date:  s.start.AddMonths(i),
			Value: math.Round(value*100) / 100,
		})
	}
	return series, nil
}
