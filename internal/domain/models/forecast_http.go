package models

import "time"

// Requests and responses for the dashboard HTTP endpoints. Defined in domain
// for consistency and reuse.

// ForecastRequest carries the tunable parameters of one forecast run.
// Defaults match the terminal demo: a 3-point window, 6 periods ahead, 10
// history rows. The numeric fields are pointers so an explicit zero is
// distinguishable from an absent parameter: defaults fill nil only, and a
// supplied window=0 still reaches validation.
type ForecastRequest struct {
	Window  *int   `query:"window" json:"window" default:"3" validate:"required,gt=0,lte=120"`
	Horizon *int   `query:"horizon" json:"horizon" default:"6" validate:"required,gte=0,lte=120"`
	History *int   `query:"history" json:"history" default:"10" validate:"required,gte=0,lte=500"`
	Source  string `query:"source" json:"source" validate:"omitempty,oneof=synthetic csv clickhouse"`
}

// HistoryRow is one displayed history table row; MA is null while the
// moving average has insufficient history.
type HistoryRow struct {
	Date   Date     `json:"date"`
	Actual float64  `json:"actual"`
	MA     *float64 `json:"ma"`
}

// ForecastResponse is the dashboard payload for one run.
type ForecastResponse struct {
	Window       int             `json:"window"`
	Horizon      int             `json:"horizon"`
	Source       string          `json:"source"`
	History      []HistoryRow    `json:"history"`
	Forecast     []ForecastPoint `json:"forecast"`
	Sparkline    string          `json:"sparkline"`
	LastActual   float64         `json:"last_actual"`
	NextForecast *float64        `json:"next_forecast"`
	GeneratedAt  time.Time       `json:"generated_at"`
}
