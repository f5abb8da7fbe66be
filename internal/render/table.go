package render

import (
	"fmt"
	"io"

	"TrendCast/internal/domain/models"
)

// HistoryTable writes the recent-history table: date, actual, and the
// moving average or a placeholder while it is undefined. smoothed is
// positionally aligned with the full series; points is the displayed tail.
func HistoryTable(w io.Writer, points models.Series, smoothed []models.Smoothed) {
	fmt.Fprintln(w, "\nRecent history")
	fmt.Fprintln(w, "Date        Actual    MA")
	fmt.Fprintln(w, "----------------------------")
	tail := smoothed
	if len(points) < len(tail) {
		tail = tail[len(tail)-len(points):]
	}
	for i, p := range points {
		ma := "    --  "
		if i < len(tail) && tail[i].Valid {
			ma = fmt.Sprintf("%8.2f", tail[i].Value)
		}
		fmt.Fprintf(w, "%s  %7.2f  %s\n", p.Date, p.Value, ma)
	}
}

// ForecastTable writes the forecast horizon table.
func ForecastTable(w io.Writer, points []models.ForecastPoint) {
	fmt.Fprintln(w, "\nForecast horizon")
	fmt.Fprintln(w, "Date        Prediction")
	fmt.Fprintln(w, "----------------------")
	for _, p := range points {
		fmt.Fprintf(w, "%s  %10.2f\n", p.Date, p.Prediction)
	}
}

// ASCIIChart writes the combined sparkline with the history/forecast
// separator. Nothing is written for an empty history.
func ASCIIChart(w io.Writer, actuals, forecasts []float64) {
	line := Chart(actuals, forecasts)
	if line == "" {
		return
	}
	fmt.Fprintln(w, "\nASCII sparkline (| separates history/prediction)")
	fmt.Fprintln(w, line)
}

// Result writes the full text-mode report for one run.
func Result(w io.Writer, result *models.ForecastResult, historyRows int) {
	fmt.Fprintln(w, "Moving-average forecasting demo")
	fmt.Fprintf(w, "Window size: %d\n", result.Window)
	fmt.Fprintf(w, "Forecast horizon: %d\n", result.Horizon)
	HistoryTable(w, result.Series.Tail(historyRows), result.Smoothed)
	ForecastTable(w, result.Forecast)
	ASCIIChart(w, result.Series.Values(), result.ForecastValues())
}
