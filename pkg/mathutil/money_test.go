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
		{"Round up at midpoint", 1.235, 1.24},
		{"Round down below midpoint", 1.234, 1.23},
		{"Weekly gross of 60k", 60000.0 / 52, 1153.85},
		{"Negative number", -12345.678, -12345.68},
		{"Zero", 0.0, 0.0},
		{"Very small positive", 0.001, 0.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Round(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Round(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsPositive(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Typical salary", 60000.0, true},
		{"Exactly one cent", 0.01, false},
		{"Zero", 0.0, false},
		{"Negative", -1.0, false},
		{"NaN", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsPositive(tt.input); result != tt.expected {
				t.Errorf("IsPositive(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	if !WithinTolerance(3117.5, 3117.504, 0.01) {
		t.Errorf("expected values within a cent to match")
	}
	if WithinTolerance(3117.5, 3117.52, 0.01) {
		t.Errorf("expected values two cents apart not to match")
	}
}

func TestEffectiveRate(t *testing.T) {
	tests := []struct {
		name     string
		part     float64
		whole    float64
		expected float64
	}{
		{"Taxes on a 5000 paycheck", 1482.5, 5000, 29.65},
		{"Zero whole", 100, 0, 0},
		{"Infinite whole", 100, math.Inf(1), 0},
		{"NaN whole", 100, math.NaN(), 0},
		{"Negative paycheck", -150, -1000, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EffectiveRate(tt.part, tt.whole)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EffectiveRate(%v, %v) = %v, expected %v", tt.part, tt.whole, result, tt.expected)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.0545); math.Abs(got-5.45) > 1e-9 {
		t.Errorf("Percent(0.0545) = %v, expected 5.45", got)
	}
}
