package analysis

import "TrendCast/internal/domain/models"

// Forecast extends values horizon steps forward using the trailing moving
// average as the predictor. Each prediction is appended to the working
// history before the next step, so later forecasts smooth over earlier ones
// and the trajectory flattens toward the recent mean. When the working
// history is shorter than the window, the mean is taken over whatever is
// available rather than failing.
func Forecast(values []float64, window, horizon int) []float64 {
	if horizon <= 0 {
		return []float64{}
	}
	history := make([]float64, len(values), len(values)+horizon)
	copy(history, values)
	out := make([]float64, 0, horizon)
	for step := 0; step < horizon; step++ {
		start := len(history) - window
		if start < 0 {
			start = 0
		}
		tail := history[start:]
		sum := 0.0
		for _, v := range tail {
			sum += v
		}
		next := sum / float64(len(tail))
		out = append(out, next)
		history = append(history, next)
	}
	return out
}

// FutureDates synthesizes one date per forecast step, each a whole month
// after the previous, starting strictly after the last historical date.
func FutureDates(last models.Date, horizon int) []models.Date {
	if horizon <= 0 {
		return nil
	}
	out := make([]models.Date, horizon)
	for i := range out {
		out[i] = last.AddMonths(i + 1)
	}
	return out
}
