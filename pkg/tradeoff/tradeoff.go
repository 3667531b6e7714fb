// Package tradeoff describes lifestyle tradeoff cards that compare two
// choices by their monthly cost, and the generators that produce them.
package tradeoff

import (
	"context"

	"github.com/iwvelando/take-home/pkg/constants"
	"github.com/iwvelando/take-home/pkg/mathutil"
	"github.com/iwvelando/take-home/pkg/paycheck"
)

// Category groups cards by the area of spending they cover.
type Category string

const (
	CategoryHousing   Category = "housing"
	CategorySavings   Category = "savings"
	CategoryDebt      Category = "debt"
	CategoryLifestyle Category = "lifestyle"
)

// Option is one side of a tradeoff. MonthlyImpact is positive when the
// option leaves more money and negative when it costs money.
type Option struct {
	Title         string   `json:"title" yaml:"title"`
	Pros          []string `json:"pros" yaml:"pros"`
	Cons          []string `json:"cons" yaml:"cons"`
	MonthlyImpact float64  `json:"monthlyImpact" yaml:"monthlyImpact"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// Card compares two options.
type Card struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category Category `json:"category" yaml:"category"`
	OptionA  Option   `json:"optionA" yaml:"optionA"`
	OptionB  Option   `json:"optionB" yaml:"optionB"`
}

// Request carries what a generator may use to personalize cards.
type Request struct {
	Name            string
	Salary          paycheck.SalaryInput
	LivingSituation string
	Goals           []string
}

// Generator produces tradeoff cards for a user.
type Generator interface {
	Generate(ctx context.Context, req Request) ([]Card, error)
}

// Affordability is what remains of monthly take-home pay under each option.
type Affordability struct {
	CardID          string  `json:"cardId"`
	MonthlyTakeHome float64 `json:"monthlyTakeHome"`
	RemainingA      float64 `json:"remainingA"`
	RemainingB      float64 `json:"remainingB"`
}

// MonthlyTakeHome converts a breakdown into an average monthly amount.
func MonthlyTakeHome(b paycheck.Breakdown, f paycheck.PayFrequency) float64 {
	return paycheck.AnnualizeTakeHome(b.TakeHomePay, f) / constants.MonthsPerYear
}

// Assess reports the monthly take-home left over under each option of card,
// rounded to cents.
func Assess(card Card, monthlyTakeHome float64) Affordability {
	return Affordability{
		CardID:          card.ID,
		MonthlyTakeHome: mathutil.Round(monthlyTakeHome),
		RemainingA:      mathutil.Round(monthlyTakeHome + card.OptionA.MonthlyImpact),
		RemainingB:      mathutil.Round(monthlyTakeHome + card.OptionB.MonthlyImpact),
	}
}
