// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/take-home/internal/estimate"
)

// FindEstimate finds an estimate by profile name in the results slice.
// Returns a pointer to the estimate if found, nil otherwise.
func FindEstimate(results []estimate.Estimate, name string) *estimate.Estimate {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
