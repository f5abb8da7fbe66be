package analysis

import (
	"fmt"

	"TrendCast/internal/domain/models"
)

// MovingAverage computes the trailing arithmetic mean of values over the
// given window. The output has the same length as the input; cell i is valid
// only once a full window of history exists (i >= window-1), never a partial
// short-window average.
func MovingAverage(values []float64, window int) ([]models.Smoothed, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: got %d", models.ErrInvalidWindow, window)
	}
	out := make([]models.Smoothed, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = models.Smoothed{Value: sum / float64(window), Valid: true}
		}
	}
	return out, nil
}
