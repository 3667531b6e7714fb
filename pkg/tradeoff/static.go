package tradeoff

import (
	"context"
)

// StaticGenerator returns the same starter cards for every request. It is
// the fallback used until a personalized generator is configured.
type StaticGenerator struct{}

// NewStaticGenerator returns a StaticGenerator.
func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

// Generate returns a fresh copy of the starter cards.
func (g *StaticGenerator) Generate(ctx context.Context, _ Request) ([]Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return StarterCards(), nil
}

// StarterCards returns the default housing, savings, and debt cards. Each
// call builds new slices so callers may modify the result.
func StarterCards() []Card {
	return []Card{
		{
			ID:       "housing-1",
			Title:    "Living Situation",
			Category: CategoryHousing,
			OptionA: Option{
				Title:         "Live Alone",
				Pros:          []string{"Complete privacy and independence", "No roommate conflicts", "Full control over your space"},
				Cons:          []string{"Higher rent costs", "All utilities on you", "Less social interaction"},
				MonthlyImpact: -1500,
				Description:   "Rent a 1-bedroom apartment",
			},
			OptionB: Option{
				Title:         "Live with Roommates",
				Pros:          []string{"Split rent and utilities", "Built-in social support", "Lower overall costs"},
				Cons:          []string{"Less privacy", "Need to coordinate schedules", "Potential conflicts"},
				MonthlyImpact: -800,
				Description:   "Share a 2-bedroom apartment",
			},
		},
		{
			ID:       "savings-1",
			Title:    "Savings Strategy",
			Category: CategorySavings,
			OptionA: Option{
				Title:         "Aggressive Savings",
				Pros:          []string{"Build emergency fund faster", "Start investing sooner", "Financial security"},
				Cons:          []string{"Less spending flexibility", "Delayed lifestyle upgrades", "Tight monthly budget"},
				MonthlyImpact: -800,
				Description:   "Save 30% of take-home pay",
			},
			OptionB: Option{
				Title:         "Balanced Approach",
				Pros:          []string{"Still saving regularly", "Room for fun expenses", "Sustainable long-term"},
				Cons:          []string{"Slower wealth building", "Less buffer for emergencies", "Delayed big goals"},
				MonthlyImpact: -400,
				Description:   "Save 15% of take-home pay",
			},
		},
		{
			ID:       "debt-1",
			Title:    "Student Loan Repayment",
			Category: CategoryDebt,
			OptionA: Option{
				Title:         "Pay Off Fast",
				Pros:          []string{"Less interest over time", "Debt-free sooner", "Peace of mind"},
				Cons:          []string{"Less money for other goals", "Tighter monthly budget", "Delayed investments"},
				MonthlyImpact: -600,
				Description:   "Double the minimum payment",
			},
			OptionB: Option{
				Title:         "Minimum Payments",
				Pros:          []string{"More monthly flexibility", "Can save or invest more", "Lower monthly obligation"},
				Cons:          []string{"More interest paid overall", "Debt lingers longer", "Opportunity cost"},
				MonthlyImpact: -300,
				Description:   "Pay minimum required amount",
			},
		},
	}
}
