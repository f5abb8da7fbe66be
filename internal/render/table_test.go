package render

import (
	"strings"
	"testing"

	"TrendCast/internal/domain/models"
)

func TestHistoryTablePlaceholderBeforeFullWindow(t *testing.T) {
	series := models.Series{
		{Date: models.NewDate(2021, 1, 1), Value: 10},
		{Date: models.NewDate(2021, 2, 1), Value: 20},
		{Date: models.NewDate(2021, 3, 1), Value: 30},
	}
	smoothed := []models.Smoothed{
		{},
		{},
		{Value: 20, Valid: true},
	}
	var b strings.Builder
	HistoryTable(&b, series, smoothed)
	out := b.String()

	if !strings.Contains(out, "2021-01-01") || !strings.Contains(out, "--") {
		t.Fatalf("expected placeholder rows, got:\n%s", out)
	}
	if !strings.Contains(out, "20.00") {
		t.Fatalf("expected defined moving average, got:\n%s", out)
	}
}

func TestHistoryTableAlignsTailWithSmoothed(t *testing.T) {
	// Display only the last 2 of 4 points; the smoothed column must come
	// from the matching tail of the full-length sequence.
	series := models.Series{
		{Date: models.NewDate(2021, 3, 1), Value: 30},
		{Date: models.NewDate(2021, 4, 1), Value: 40},
	}
	smoothed := []models.Smoothed{
		{},
		{Value: 15, Valid: true},
		{Value: 25, Valid: true},
		{Value: 35, Valid: true},
	}
	var b strings.Builder
	HistoryTable(&b, series, smoothed)
	out := b.String()
	if !strings.Contains(out, "25.00") || !strings.Contains(out, "35.00") {
		t.Fatalf("expected tail-aligned averages, got:\n%s", out)
	}
	if strings.Contains(out, "15.00") {
		t.Fatalf("leaked smoothed cell outside displayed tail:\n%s", out)
	}
}

func TestForecastTable(t *testing.T) {
	var b strings.Builder
	ForecastTable(&b, []models.ForecastPoint{
		{Date: models.NewDate(2024, 1, 1), Prediction: 125.5},
	})
	out := b.String()
	if !strings.Contains(out, "2024-01-01") || !strings.Contains(out, "125.50") {
		t.Fatalf("unexpected forecast table:\n%s", out)
	}
}

func TestResultReport(t *testing.T) {
	res := &models.ForecastResult{
		Window:  2,
		Horizon: 1,
		Series: models.Series{
			{Date: models.NewDate(2021, 1, 1), Value: 10},
			{Date: models.NewDate(2021, 2, 1), Value: 20},
		},
		Smoothed: []models.Smoothed{{}, {Value: 15, Valid: true}},
		Forecast: []models.ForecastPoint{{Date: models.NewDate(2021, 3, 1), Prediction: 15}},
	}
	var b strings.Builder
	Result(&b, res, 10)
	out := b.String()
	for _, want := range []string{"Window size: 2", "Forecast horizon: 1", "Recent history", "Forecast horizon\n", "|"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
