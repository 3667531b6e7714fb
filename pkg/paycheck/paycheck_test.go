package paycheck

import (
	"math"
	"sync"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateTakeHomeTexasMonthly(t *testing.T) {
	b := EstimateTakeHome(SalaryInput{AnnualSalary: 60000, PayFrequency: PayFrequencyMonthly, State: "Texas"})

	checks := []struct {
		field    string
		got      float64
		expected float64
	}{
		{"GrossPay", b.GrossPay, 5000},
		{"Taxes.Federal", b.Taxes.Federal, 1100},
		{"Taxes.State", b.Taxes.State, 0},
		{"Taxes.FICA", b.Taxes.FICA, 382.5},
		{"Taxes.Total", b.Taxes.Total, 1482.5},
		{"Benefits.HealthInsurance", b.Benefits.HealthInsurance, 250},
		{"Benefits.Retirement", b.Benefits.Retirement, 150},
		{"Benefits.Other", b.Benefits.Other, 0},
		{"Benefits.Total", b.Benefits.Total, 400},
		{"TakeHomePay", b.TakeHomePay, 3117.5},
	}
	for _, c := range checks {
		if !approxEqual(c.got, c.expected) {
			t.Errorf("%s = %v, expected %v", c.field, c.got, c.expected)
		}
	}
}

func TestEstimateTakeHomeInvariants(t *testing.T) {
	inputs := []SalaryInput{
		{AnnualSalary: 60000, PayFrequency: PayFrequencyMonthly, State: "Texas"},
		{AnnualSalary: 11600, PayFrequency: PayFrequencyWeekly, State: "Arizona"},
		{AnnualSalary: 11600.01, PayFrequency: PayFrequencyBiweekly, State: "Oregon"},
		{AnnualSalary: 95000, PayFrequency: PayFrequencySemimonthly, State: "New York"},
		{AnnualSalary: 168600, PayFrequency: PayFrequencyBiweekly, State: "California"},
		{AnnualSalary: 200000, PayFrequency: PayFrequencyMonthly, State: "Atlantis"},
		{AnnualSalary: 0, PayFrequency: PayFrequencyWeekly, State: ""},
		{AnnualSalary: -25000, PayFrequency: "yearly", State: "Ohio"},
		{AnnualSalary: 1, PayFrequency: PayFrequencyWeekly, State: "Hawaii"},
	}

	for _, in := range inputs {
		b := EstimateTakeHome(in)
		if b.Taxes.Total != b.Taxes.Federal+b.Taxes.State+b.Taxes.FICA {
			t.Errorf("%+v: taxes total %v is not the sum of its parts", in, b.Taxes.Total)
		}
		if b.Benefits.Total != b.Benefits.HealthInsurance+b.Benefits.Retirement+b.Benefits.Other {
			t.Errorf("%+v: benefits total %v is not the sum of its parts", in, b.Benefits.Total)
		}
		if b.TakeHomePay != b.GrossPay-b.Taxes.Total-b.Benefits.Total {
			t.Errorf("%+v: take-home %v does not equal gross minus deductions", in, b.TakeHomePay)
		}
		if b.Benefits.Other != 0 {
			t.Errorf("%+v: other benefits = %v, expected 0", in, b.Benefits.Other)
		}
		if b.GrossPay != GrossPay(in.AnnualSalary, in.PayFrequency) {
			t.Errorf("%+v: gross pay %v does not match GrossPay", in, b.GrossPay)
		}
	}
}

func TestEstimateTakeHomeDeterministic(t *testing.T) {
	in := SalaryInput{AnnualSalary: 87654.32, PayFrequency: PayFrequencyBiweekly, State: "Minnesota"}
	first := EstimateTakeHome(in)
	for i := 0; i < 100; i++ {
		if got := EstimateTakeHome(in); got != first {
			t.Fatalf("EstimateTakeHome is not deterministic: %+v != %+v", got, first)
		}
	}
}

func TestEstimateTakeHomeConcurrent(t *testing.T) {
	in := SalaryInput{AnnualSalary: 72000, PayFrequency: PayFrequencySemimonthly, State: "Illinois"}
	expected := EstimateTakeHome(in)

	var wg sync.WaitGroup
	results := make([]Breakdown, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = EstimateTakeHome(in)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if got != expected {
			t.Errorf("goroutine %d: got %+v, expected %+v", i, got, expected)
		}
	}
}

func TestEstimateTakeHomeFailSoft(t *testing.T) {
	t.Run("Unknown state uses default rate", func(t *testing.T) {
		b := EstimateTakeHome(SalaryInput{AnnualSalary: 48000, PayFrequency: PayFrequencyMonthly, State: "Atlantis"})
		if b.Taxes.State != b.GrossPay*0.05 {
			t.Errorf("state tax = %v, expected %v", b.Taxes.State, b.GrossPay*0.05)
		}
	})

	t.Run("Unknown frequency uses monthly", func(t *testing.T) {
		b := EstimateTakeHome(SalaryInput{AnnualSalary: 48000, PayFrequency: "daily", State: "Texas"})
		if b.GrossPay != 4000 {
			t.Errorf("gross pay = %v, expected 4000", b.GrossPay)
		}
	})

	t.Run("Zero salary", func(t *testing.T) {
		b := EstimateTakeHome(SalaryInput{PayFrequency: PayFrequencyWeekly, State: "Texas"})
		if b.GrossPay != 0 || b.TakeHomePay != 0 {
			t.Errorf("expected zero breakdown, got %+v", b)
		}
	})

	t.Run("Negative salary stays consistent", func(t *testing.T) {
		b := EstimateTakeHome(SalaryInput{AnnualSalary: -12000, PayFrequency: PayFrequencyMonthly, State: "Ohio"})
		if b.GrossPay != -1000 {
			t.Errorf("gross pay = %v, expected -1000", b.GrossPay)
		}
		if b.Taxes.Federal > 0 || b.Benefits.Total > 0 {
			t.Errorf("expected non-positive deductions for negative gross, got %+v", b)
		}
	})

	t.Run("NaN salary does not panic", func(t *testing.T) {
		b := EstimateTakeHome(SalaryInput{AnnualSalary: math.NaN(), PayFrequency: PayFrequencyMonthly, State: "Texas"})
		if !math.IsNaN(b.TakeHomePay) {
			t.Errorf("expected NaN take-home, got %v", b.TakeHomePay)
		}
	})
}

func TestComputeBenefits(t *testing.T) {
	b := ComputeBenefits(5000)
	if !approxEqual(b.HealthInsurance, 250) {
		t.Errorf("HealthInsurance = %v, expected 250", b.HealthInsurance)
	}
	if !approxEqual(b.Retirement, 150) {
		t.Errorf("Retirement = %v, expected 150", b.Retirement)
	}
	if b.Other != 0 {
		t.Errorf("Other = %v, expected 0", b.Other)
	}
	if b.Total != b.HealthInsurance+b.Retirement {
		t.Errorf("Total = %v, expected %v", b.Total, b.HealthInsurance+b.Retirement)
	}
}

func TestSections(t *testing.T) {
	b := EstimateTakeHome(SalaryInput{AnnualSalary: 60000, PayFrequency: PayFrequencyMonthly, State: "Texas"})
	sections := Sections(b)

	expectedLabels := []string{"Gross Pay", "Federal Tax", "State Tax", "FICA", "Health Insurance", "Retirement", "Take-Home Pay"}
	if len(sections) != len(expectedLabels) {
		t.Fatalf("expected %d sections, got %d", len(expectedLabels), len(sections))
	}
	for i, label := range expectedLabels {
		if sections[i].Label != label {
			t.Errorf("section %d label = %q, expected %q", i, sections[i].Label, label)
		}
	}
	if sections[0].Amount != b.GrossPay {
		t.Errorf("first section amount = %v, expected gross %v", sections[0].Amount, b.GrossPay)
	}
	if last := sections[len(sections)-1]; last.Amount != b.TakeHomePay {
		t.Errorf("last section amount = %v, expected take-home %v", last.Amount, b.TakeHomePay)
	}
}
