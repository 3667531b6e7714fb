package testutil

import (
	"testing"

	"github.com/iwvelando/take-home/internal/estimate"
	"github.com/iwvelando/take-home/pkg/paycheck"
)

func TestFindEstimate(t *testing.T) {
	results := []estimate.Estimate{
		{Name: "Offer A", Breakdown: paycheck.Breakdown{TakeHomePay: 1000}},
		{Name: "Offer B", Breakdown: paycheck.Breakdown{TakeHomePay: 2000}},
		{Name: "Another Offer", Breakdown: paycheck.Breakdown{TakeHomePay: 3000}},
	}

	tests := []struct {
		name         string
		searchName   string
		expectFound  bool
		expectedTake float64
	}{
		{"Find existing offer A", "Offer A", true, 1000},
		{"Find existing offer B", "Offer B", true, 2000},
		{"Find offer with longer name", "Another Offer", true, 3000},
		{"Search for non-existent offer", "Non-existent", false, 0},
		{"Empty search name", "", false, 0},
		{"Case sensitive search", "offer a", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindEstimate(results, tt.searchName)
			if !tt.expectFound {
				if result != nil {
					t.Errorf("expected nil, got %+v", result)
				}
				return
			}
			if result == nil {
				t.Fatalf("expected to find %q", tt.searchName)
			}
			if result.Breakdown.TakeHomePay != tt.expectedTake {
				t.Errorf("TakeHomePay = %v, expected %v", result.Breakdown.TakeHomePay, tt.expectedTake)
			}
		})
	}
}

func TestFindEstimateReturnsPointerIntoSlice(t *testing.T) {
	results := []estimate.Estimate{{Name: "Offer A"}}

	found := FindEstimate(results, "Offer A")
	found.Warnings = append(found.Warnings, "edited")
	if len(results[0].Warnings) != 1 {
		t.Error("expected FindEstimate to return a pointer into the original slice")
	}
}

func TestFindEstimateEmptySlice(t *testing.T) {
	if FindEstimate(nil, "anything") != nil {
		t.Error("expected nil for nil slice")
	}
}
