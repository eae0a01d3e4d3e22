// Package validation provides input validation utilities. Validation
// produces warnings, not errors: the calculators compute best-effort output
// for incomplete input, and presentation layers decide what to surface.
package validation

import (
	"fmt"

	"github.com/agrifin/agriplan/pkg/constants"
	"github.com/agrifin/agriplan/pkg/finance"
	"github.com/agrifin/agriplan/pkg/mathutil"
	"github.com/agrifin/agriplan/pkg/portfolio"
)

// ValidatePortfolio checks one portfolio and returns warnings for anything
// that would make its metrics partial or misleading.
func ValidatePortfolio(p portfolio.Portfolio) []string {
	var warnings []string

	total := p.AllocationTotal()
	if !mathutil.WithinTolerance(total, constants.FullAllocation, constants.AllocationTolerance) {
		warnings = append(warnings, fmt.Sprintf("Portfolio '%s' allocations sum to %.2f%%, not 100%% - metrics are flagged invalid",
			p.Name, total))
	}

	if p.TotalHectares <= 0 {
		warnings = append(warnings, fmt.Sprintf("Portfolio '%s' has non-positive total hectares (%.2f)",
			p.Name, p.TotalHectares))
	}

	if p.Years < 1 {
		warnings = append(warnings, fmt.Sprintf("Portfolio '%s' has a horizon below 1 year (%d)",
			p.Name, p.Years))
	}

	for _, alloc := range p.Allocations {
		if alloc.PercentOfLand < 0 || alloc.PercentOfLand > constants.FullAllocation {
			warnings = append(warnings, fmt.Sprintf("Portfolio '%s' allocation for '%s' is outside 0-100%% (%.2f%%)",
				p.Name, alloc.CropName, alloc.PercentOfLand))
		}
	}

	return warnings
}

// ValidateCostEntries warns about cost entries whose target month falls
// outside the calendar. Aggregation still counts them, so totals reconcile
// either way.
func ValidateCostEntries(entries []finance.CostEntry) []string {
	var warnings []string
	for _, entry := range entries {
		if entry.Month < 1 || entry.Month > constants.MonthsPerYear {
			warnings = append(warnings, fmt.Sprintf("Cost entry '%s' targets month %d, outside 1-12",
				entry.Category, entry.Month))
		}
	}
	return warnings
}

// ValidateLoanInputs warns about loan inputs the calculator will refuse.
func ValidateLoanInputs(principal, annualRatePct float64, termYears int) []string {
	var warnings []string
	if principal <= 0 {
		warnings = append(warnings, "Loan principal must be positive for an amortization schedule")
	}
	if annualRatePct <= 0 {
		warnings = append(warnings, "Loan interest rate must be positive for an amortization schedule")
	}
	if termYears <= 0 {
		warnings = append(warnings, "Loan term must be at least 1 year")
	}
	return warnings
}
