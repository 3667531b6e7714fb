// Package estimate runs the paycheck estimator across every active profile
// in a configuration.
package estimate

import (
	"errors"
	"fmt"

	"github.com/iwvelando/take-home/internal/config"
	"github.com/iwvelando/take-home/pkg/paycheck"
	"github.com/iwvelando/take-home/pkg/tradeoff"
	"github.com/iwvelando/take-home/pkg/validation"
	"go.uber.org/zap"
)

// ErrNoActiveProfiles is returned when a configuration has nothing to estimate.
var ErrNoActiveProfiles = errors.New("no active profiles to estimate")

// Estimate holds the result for one profile.
type Estimate struct {
	Name            string               `json:"name"`
	Input           paycheck.SalaryInput `json:"input"`
	Breakdown       paycheck.Breakdown   `json:"breakdown"`
	Sections        []paycheck.Section   `json:"sections"`
	AnnualTakeHome  float64              `json:"annualTakeHome"`
	MonthlyTakeHome float64              `json:"monthlyTakeHome"`
	FederalRate     float64              `json:"federalRate"`
	StateRate       float64              `json:"stateRate"`
	Warnings        []string             `json:"warnings,omitempty"`
}

// Run estimates a single salary input. name is only used for labelling.
func Run(logger *zap.Logger, name string, in paycheck.SalaryInput) Estimate {
	if logger == nil {
		logger = zap.NewNop()
	}

	breakdown := paycheck.EstimateTakeHome(in)
	stateRate, known := paycheck.StateRate(in.State)
	if !known {
		logger.Warn(fmt.Sprintf("state %q not recognized, using default state rate", in.State),
			zap.String("op", "estimate.Run"),
			zap.String("profile", name),
			zap.Float64("rate", stateRate),
		)
	}

	result := Estimate{
		Name:            name,
		Input:           in,
		Breakdown:       breakdown,
		Sections:        paycheck.Sections(breakdown),
		AnnualTakeHome:  paycheck.AnnualizeTakeHome(breakdown.TakeHomePay, in.PayFrequency),
		MonthlyTakeHome: tradeoff.MonthlyTakeHome(breakdown, in.PayFrequency),
		FederalRate:     paycheck.FederalRate(in.AnnualSalary),
		StateRate:       stateRate,
		Warnings:        validation.ValidateSalaryInput(in),
	}

	logger.Debug("estimated take-home pay",
		zap.String("op", "estimate.Run"),
		zap.String("profile", name),
		zap.Float64("grossPay", breakdown.GrossPay),
		zap.Float64("takeHomePay", breakdown.TakeHomePay),
	)

	return result
}

// GetEstimates processes the estimates for all active profiles, in file order.
func GetEstimates(logger *zap.Logger, conf config.Configuration) ([]Estimate, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var results []Estimate
	for _, profile := range conf.Profiles {
		if !profile.Active {
			logger.Debug(fmt.Sprintf("skipping profile %s because it is inactive", profile.Name),
				zap.String("op", "estimate.GetEstimates"),
			)
			continue
		}
		results = append(results, Run(logger, profile.Name, profile.Salary))
	}

	if len(results) == 0 {
		return nil, ErrNoActiveProfiles
	}
	return results, nil
}
