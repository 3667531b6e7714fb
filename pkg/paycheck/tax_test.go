package paycheck

import (
	"math"
	"sort"
	"testing"
)

func TestFederalRate(t *testing.T) {
	tests := []struct {
		name     string
		salary   float64
		expected float64
	}{
		{"Zero salary", 0, 0.10},
		{"Negative salary", -5000, 0.10},
		{"First band ceiling", 11600, 0.10},
		{"Just above first band", 11600.01, 0.12},
		{"Second band ceiling", 47150, 0.12},
		{"Just above second band", 47150.01, 0.22},
		{"Third band", 60000, 0.22},
		{"Third band ceiling", 100525, 0.22},
		{"Just above third band", 100525.01, 0.24},
		{"Top band", 250000, 0.24},
		{"Infinite salary", math.Inf(1), 0.24},
		{"NaN salary", math.NaN(), 0.24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FederalRate(tt.salary); got != tt.expected {
				t.Errorf("FederalRate(%v) = %v, expected %v", tt.salary, got, tt.expected)
			}
		})
	}
}

func TestFederalTaxAppliesRateToFullGross(t *testing.T) {
	gross := GrossPay(11600, PayFrequencyMonthly)
	if got := FederalTax(gross, 11600); got != gross*0.10 {
		t.Errorf("FederalTax at 11600 = %v, expected %v", got, gross*0.10)
	}

	gross = GrossPay(11600.01, PayFrequencyMonthly)
	if got := FederalTax(gross, 11600.01); got != gross*0.12 {
		t.Errorf("FederalTax at 11600.01 = %v, expected %v", got, gross*0.12)
	}

	if got := FederalTax(5000, 60000); math.Abs(got-1100) > 1e-9 {
		t.Errorf("FederalTax(5000, 60000) = %v, expected 1100", got)
	}
}

func TestStateRate(t *testing.T) {
	tests := []struct {
		state    string
		expected float64
		known    bool
	}{
		{"Texas", 0, true},
		{"Florida", 0, true},
		{"Washington", 0, true},
		{"California", 0.09, true},
		{"Arizona", 0.025, true},
		{"District of Columbia", 0.065, true},
		{"Atlantis", 0.05, false},
		{"texas", 0.05, false},
		{" Texas", 0.05, false},
		{"", 0.05, false},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			rate, known := StateRate(tt.state)
			if rate != tt.expected || known != tt.known {
				t.Errorf("StateRate(%q) = (%v, %v), expected (%v, %v)", tt.state, rate, known, tt.expected, tt.known)
			}
		})
	}
}

func TestStateTable(t *testing.T) {
	states := States()
	if len(states) != 51 {
		t.Fatalf("expected 50 states plus D.C., got %d", len(states))
	}
	if !sort.StringsAreSorted(states) {
		t.Errorf("States() is not sorted")
	}

	zeroRate := 0
	for _, state := range states {
		rate, known := StateRate(state)
		if !known {
			t.Errorf("StateRate(%q) reported unknown for a listed state", state)
		}
		if rate == 0 {
			zeroRate++
			continue
		}
		if rate < 0.025 || rate > 0.09 {
			t.Errorf("StateRate(%q) = %v, outside the 2.5%%-9%% range", state, rate)
		}
	}
	if zeroRate == 0 {
		t.Errorf("expected at least one state without income tax")
	}
}

func TestStateTaxUnknownStateUsesDefault(t *testing.T) {
	gross := GrossPay(75000, PayFrequencyBiweekly)
	if got := StateTax(gross, "Atlantis"); got != gross*0.05 {
		t.Errorf("StateTax(%v, Atlantis) = %v, expected %v", gross, got, gross*0.05)
	}
	if got := StateTax(gross, "Texas"); got != 0 {
		t.Errorf("StateTax(%v, Texas) = %v, expected 0", gross, got)
	}
}

func TestFICA(t *testing.T) {
	tests := []struct {
		name     string
		gross    float64
		salary   float64
		expected float64
	}{
		{"Below wage base", 5000, 60000, 382.5},
		{"At wage base", 14050, 168600, 1074.825},
		{"Above wage base drops Social Security", 10000, 200000, 145},
		{"Zero gross", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FICA(tt.gross, tt.salary); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("FICA(%v, %v) = %v, expected %v", tt.gross, tt.salary, got, tt.expected)
			}
		})
	}
}

func TestFICAAboveWageBaseIsMedicareOnly(t *testing.T) {
	gross := GrossPay(200000, PayFrequencyMonthly)
	if got := FICA(gross, 200000); got != gross*0.0145 {
		t.Errorf("FICA(%v, 200000) = %v, expected Medicare only %v", gross, got, gross*0.0145)
	}
}
