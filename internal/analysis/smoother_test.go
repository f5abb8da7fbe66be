package analysis

import (
	"errors"
	"math"
	"testing"

	"TrendCast/internal/domain/models"
)

func TestMovingAverageAlignment(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	got, err := MovingAverage(values, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(values) {
		t.Fatalf("expected %d cells, got %d", len(values), len(got))
	}
	for i := 0; i < 2; i++ {
		if got[i].Valid {
			t.Errorf("cell %d should be undefined before a full window", i)
		}
	}
	want := []float64{20, 30, 40}
	for i, w := range want {
		cell := got[i+2]
		if !cell.Valid {
			t.Fatalf("cell %d should be defined", i+2)
		}
		if math.Abs(cell.Value-w) > 1e-9 {
			t.Errorf("cell %d: expected %v, got %v", i+2, w, cell.Value)
		}
	}
}

func TestMovingAverageWindowOne(t *testing.T) {
	values := []float64{1.5, 2.5, 3.5}
	got, err := MovingAverage(values, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range values {
		if !got[i].Valid || got[i].Value != v {
			t.Errorf("window 1 cell %d: expected %v, got %+v", i, v, got[i])
		}
	}
}

func TestMovingAverageWindowLargerThanInput(t *testing.T) {
	got, err := MovingAverage([]float64{1, 2}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, cell := range got {
		if cell.Valid {
			t.Errorf("cell %d should be undefined when window exceeds input", i)
		}
	}
}

func TestMovingAverageInvalidWindow(t *testing.T) {
	for _, w := range []int{0, -1, -10} {
		_, err := MovingAverage([]float64{1, 2, 3}, w)
		if !errors.Is(err, models.ErrInvalidWindow) {
			t.Errorf("window %d: expected ErrInvalidWindow, got %v", w, err)
		}
	}
}

func TestMovingAverageEmptyInput(t *testing.T) {
	got, err := MovingAverage(nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d cells", len(got))
	}
}
