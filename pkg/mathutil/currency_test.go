package mathutil

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"No rounding needed", 100.50, 100.50},
		{"Round up", 100.505, 100.51},
		{"Round down", 100.504, 100.50},
		{"Negative value", -100.505, -100.51},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Round(tt.input); result != tt.expected {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSafeDivide(t *testing.T) {
	if result := SafeDivide(10, 4); result != 2.5 {
		t.Errorf("SafeDivide(10, 4) = %v, expected 2.5", result)
	}
	if result := SafeDivide(10, 0); result != 0 {
		t.Errorf("SafeDivide(10, 0) = %v, expected 0", result)
	}
	if result := SafeDivide(0, 0); result != 0 {
		t.Errorf("SafeDivide(0, 0) = %v, expected 0", result)
	}
}

func TestCompound(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		rate     float64
		periods  int
		expected float64
	}{
		{"Two periods at 5 percent", 100, 5, 2, 110.25},
		{"Zero periods", 100, 5, 0, 100},
		{"Negative periods", 100, 5, -1, 100},
		{"Zero rate", 100, 0, 10, 100},
		{"Negative rate", 100, -10, 1, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compound(tt.base, tt.rate, tt.periods)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("Compound(%v, %v, %d) = %v, expected %v", tt.base, tt.rate, tt.periods, result, tt.expected)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	if result := Sanitize(math.NaN()); result != 0 {
		t.Errorf("Sanitize(NaN) = %v, expected 0", result)
	}
	if result := Sanitize(math.Inf(1)); result != 0 {
		t.Errorf("Sanitize(+Inf) = %v, expected 0", result)
	}
	if result := Sanitize(math.Inf(-1)); result != 0 {
		t.Errorf("Sanitize(-Inf) = %v, expected 0", result)
	}
	if result := Sanitize(42.5); result != 42.5 {
		t.Errorf("Sanitize(42.5) = %v, expected passthrough", result)
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(100.004, 100.0, 0.01) {
		t.Error("values within tolerance reported as outside")
	}
	if WithinTolerance(100.02, 100.0, 0.01) {
		t.Error("values outside tolerance reported as within")
	}
}

func TestApplyPercentage(t *testing.T) {
	if result := ApplyPercentage(200, 60); result != 120 {
		t.Errorf("ApplyPercentage(200, 60) = %v, expected 120", result)
	}
	if result := ApplyPercentage(200, 0); result != 0 {
		t.Errorf("ApplyPercentage(200, 0) = %v, expected 0", result)
	}
}
