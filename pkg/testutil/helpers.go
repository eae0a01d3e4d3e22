// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/agrifin/agriplan/pkg/portfolio"
)

// FindScenario finds scenario metrics by name in the results slice.
// Returns a pointer to the metrics if found, nil otherwise.
func FindScenario(scenarios []portfolio.ScenarioMetrics, name string) *portfolio.ScenarioMetrics {
	for i := range scenarios {
		if scenarios[i].Name == name {
			return &scenarios[i]
		}
	}
	return nil
}
