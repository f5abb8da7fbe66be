package render

import (
	"math"
	"strings"
)

// sparkRamp is the 10-character brightness ramp, dimmest to brightest.
const sparkRamp = " .:-=+*#%@"

// Sparkline maps values onto the brightness ramp, normalized over the full
// range of the input. A constant sequence renders the mid-ramp fill for
// every cell instead of dividing by zero.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return strings.Repeat("=", len(values))
	}
	span := max - min
	scale := float64(len(sparkRamp) - 1)
	var b strings.Builder
	b.Grow(len(values))
	for _, v := range values {
		idx := int(math.Round((v - min) / span * scale))
		b.WriteByte(sparkRamp[idx])
	}
	return b.String()
}

// Chart renders history and forecast as one sparkline normalized across the
// combined range, with a separator marking the history/forecast boundary.
func Chart(actuals, forecasts []float64) string {
	if len(actuals) == 0 {
		return ""
	}
	combined := make([]float64, 0, len(actuals)+len(forecasts))
	combined = append(combined, actuals...)
	combined = append(combined, forecasts...)
	line := Sparkline(combined)
	return line[:len(actuals)] + "|" + line[len(actuals):]
}
