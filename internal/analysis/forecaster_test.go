package analysis

import (
	"math"
	"testing"

	"TrendCast/internal/domain/models"
)

func TestForecastCompoundsOwnPredictions(t *testing.T) {
	// step1 mean(20,30)=25; step2 mean(30,25)=27.5; step3 mean(25,27.5)=26.25
	got := Forecast([]float64{10, 20, 30}, 2, 3)
	want := []float64{25.0, 27.5, 26.25}
	if len(got) != len(want) {
		t.Fatalf("expected %d forecasts, got %d", len(want), len(got))
	}
	for i, w := range want {
		if math.Abs(got[i]-w) > 1e-9 {
			t.Errorf("step %d: expected %v, got %v", i+1, w, got[i])
		}
	}
}

func TestForecastZeroHorizon(t *testing.T) {
	input := []float64{1, 2, 3}
	got := Forecast(input, 2, 0)
	if len(got) != 0 {
		t.Fatalf("expected empty forecast, got %v", got)
	}
	if input[0] != 1 || input[2] != 3 {
		t.Fatalf("input mutated: %v", input)
	}
}

func TestForecastDoesNotMutateInput(t *testing.T) {
	input := []float64{5, 6, 7}
	_ = Forecast(input, 2, 4)
	for i, v := range []float64{5, 6, 7} {
		if input[i] != v {
			t.Fatalf("input mutated at %d: %v", i, input)
		}
	}
}

func TestForecastShortHistoryUsesWhatIsAvailable(t *testing.T) {
	// Input shorter than the window: the first step averages the whole
	// input rather than failing.
	got := Forecast([]float64{10, 20}, 5, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 forecasts, got %d", len(got))
	}
	if math.Abs(got[0]-15) > 1e-9 {
		t.Errorf("step 1: expected 15, got %v", got[0])
	}
	// step 2 averages 10, 20 and the prior forecast 15
	if math.Abs(got[1]-15) > 1e-9 {
		t.Errorf("step 2: expected 15, got %v", got[1])
	}
}

func TestFutureDatesStartAfterLast(t *testing.T) {
	last := models.NewDate(2021, 12, 1)
	dates := FutureDates(last, 3)
	want := []string{"2022-01-01", "2022-02-01", "2022-03-01"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(dates))
	}
	for i, w := range want {
		if dates[i].String() != w {
			t.Errorf("date %d: expected %s, got %s", i, w, dates[i])
		}
	}
}

func TestFutureDatesZeroHorizon(t *testing.T) {
	if got := FutureDates(models.NewDate(2021, 1, 31), 0); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
