package models

import (
	"sort"
	"time"
)

// SeriesPoint is a single observation in a time series.
type SeriesPoint struct {
	Date  Date    `json:"date"`
	Value float64 `json:"value"`
}

// Series is an ordered sequence of observations, ascending by date.
type Series []SeriesPoint

// Sort orders the series ascending by date in place.
func (s Series) Sort() {
	sort.Slice(s, func(i, j int) bool { return s[i].Date.Before(s[j].Date) })
}

// Values returns the value column of the series.
func (s Series) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// Last returns the final observation; ok is false for an empty series.
func (s Series) Last() (SeriesPoint, bool) {
	if len(s) == 0 {
		return SeriesPoint{}, false
	}
	return s[len(s)-1], true
}

// Tail returns the last n points (the whole series when n >= len, nothing
// when n <= 0).
func (s Series) Tail(n int) Series {
	if n <= 0 {
		return nil
	}
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Smoothed is one cell of a moving-average sequence. Valid is false while
// there is not yet a full window of history; the cell is never a sentinel
// number.
type Smoothed struct {
	Value float64
	Valid bool
}

// ForecastPoint pairs a synthesized future date with its prediction.
type ForecastPoint struct {
	Date       Date    `json:"date"`
	Prediction float64 `json:"prediction"`
}

// ForecastResult is the output of one pipeline run.
type ForecastResult struct {
	Window      int             `json:"window"`
	Horizon     int             `json:"horizon"`
	Series      Series          `json:"-"`
	Smoothed    []Smoothed      `json:"-"`
	Forecast    []ForecastPoint `json:"forecast"`
	Sparkline   string          `json:"sparkline"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// ForecastValues returns the prediction column of the forecast.
func (r *ForecastResult) ForecastValues() []float64 {
	out := make([]float64, len(r.Forecast))
	for i, p := range r.Forecast {
		out[i] = p.Prediction
	}
	return out
}

// NextForecast returns the first predicted value; ok is false when the
// horizon was zero.
func (r *ForecastResult) NextForecast() (float64, bool) {
	if len(r.Forecast) == 0 {
		return 0, false
	}
	return r.Forecast[0].Prediction, true
}
