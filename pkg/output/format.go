// Package output provides utilities for formatting and displaying planning
// results.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agrifin/agriplan/internal/planner"
	"github.com/agrifin/agriplan/pkg/finance"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable
// breakdown of the planning results.
func PrettyFormat(result *planner.PlanResult) {
	p := message.NewPrinter(language.English)

	for _, warning := range result.Warnings {
		fmt.Printf("! %s\n", warning)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("\n")
	}

	for _, scenario := range result.Scenarios {
		fmt.Printf("--- Results for scenario %s ---\n", scenario.Name)
		if !scenario.IsValid {
			_, _ = p.Printf("(allocations sum to %.2f%%, metrics are partial)\n", scenario.AllocationTotal)
		}
		_, _ = p.Printf("Total investment  | R%.2f\n", scenario.TotalInvestment)
		_, _ = p.Printf("Annual revenue    | R%.2f\n", scenario.AnnualRevenue)
		_, _ = p.Printf("Annual costs      | R%.2f\n", scenario.AnnualCosts)
		_, _ = p.Printf("Annual profit     | R%.2f\n", scenario.AnnualProfit)
		_, _ = p.Printf("Total net profit  | R%.2f\n", scenario.TotalNetProfit)
		_, _ = p.Printf("ROI               | %.2f%%\n", scenario.ROIPercent)
		fmt.Printf("Payback period    | %s\n", FormatPayback(scenario.Payback))
		fmt.Printf("\n")
	}

	if len(result.Scenarios) > 1 {
		fmt.Printf("--- Recommendation ---\n")
		fmt.Printf("Best ROI:     %s\n", result.Recommendation.BestROI)
		if result.Recommendation.BestPayback != "" {
			fmt.Printf("Best payback: %s\n", result.Recommendation.BestPayback)
		}
		fmt.Printf("Best profit:  %s\n\n", result.Recommendation.BestProfit)
	}

	if result.Loan != nil {
		fmt.Printf("--- Loan amortization ---\n")
		_, _ = p.Printf("Monthly payment | R%.2f over %d months\n", result.Loan.MonthlyPayment, result.Loan.TermMonths)
		_, _ = p.Printf("Total payment   | R%.2f (interest R%.2f)\n", result.Loan.TotalPayment, result.Loan.TotalInterest)
		fmt.Printf("Month | Payment   | Principal | Interest  | Balance\n")
		for _, payment := range result.Loan.Schedule {
			_, _ = p.Printf("%5d | R%.2f | R%.2f | R%.2f | R%.2f\n",
				payment.Month, payment.Payment, payment.Principal, payment.Interest, payment.RemainingBalance)
		}
		fmt.Printf("\n")
	}

	if result.BreakEven != nil {
		fmt.Printf("--- Break-even ---\n")
		if result.BreakEven.Defined {
			_, _ = p.Printf("Break-even at %.0f units (R%.2f revenue)\n\n", result.BreakEven.Units, result.BreakEven.Revenue)
		} else {
			fmt.Printf("Break-even is unreachable: selling price does not exceed variable cost\n\n")
		}
	}

	if result.Costs != nil {
		fmt.Printf("--- Operating costs ---\n")
		_, _ = p.Printf("Monthly: R%.2f (fixed R%.2f, variable R%.2f), annual R%.2f, per hectare R%.2f\n\n",
			result.Costs.TotalMonthly, result.Costs.TotalFixed, result.Costs.TotalVariable,
			result.Costs.TotalAnnual, result.Costs.PerHectare)
	}

	if result.Fertility != nil {
		fmt.Printf("--- Fertility plan ---\n")
		for _, removal := range result.Fertility.NutrientRemoval {
			line := fmt.Sprintf("%s: P2O5 %s, K2O %s", removal.Crop, removal.P2O5, removal.K2O)
			if removal.Sulfur != nil {
				line += fmt.Sprintf(", S %s", *removal.Sulfur)
			}
			if removal.Boron != nil {
				line += fmt.Sprintf(", B %s", *removal.Boron)
			}
			fmt.Println(line)
		}
		for _, transition := range result.Fertility.TransitionGuidance {
			fmt.Printf("%s -> %s: %s\n", transition.From, transition.To, transition.Guidance)
		}
		for _, advice := range result.Fertility.Recommendations {
			fmt.Printf("%s: %s\n", advice.Crop, strings.Join(advice.Notes, "; "))
		}
		for _, amendment := range result.Fertility.CriticalAmendments {
			fmt.Printf("critical: %s\n", amendment)
		}
	}
}

// CsvFormat outputs the per-year revenue projections in comma-separated
// value format. All scenarios share the same column layout.
func CsvFormat(result *planner.PlanResult) {
	names := make([]string, 0, len(result.Projections))
	for name := range result.Projections {
		names = append(names, name)
	}
	sort.Strings(names)

	maxYears := 0
	for _, name := range names {
		if result.Projections[name].Years > maxYears {
			maxYears = result.Projections[name].Years
		}
	}

	fmt.Printf(`"year"`)
	for _, name := range names {
		fmt.Printf(`,"revenue (%s)"`, name)
	}
	fmt.Printf("\n")
	for year := 1; year <= maxYears; year++ {
		fmt.Printf(`"%d"`, year)
		for _, name := range names {
			projection := result.Projections[name]
			if year <= projection.Years {
				fmt.Printf(`,"%.2f"`, projection.TotalByYear[year-1])
			} else {
				fmt.Printf(`,""`)
			}
		}
		fmt.Printf("\n")
	}
}

// FormatPayback renders a payback period, using the explicit sentinel text
// when annual profit makes payback unreachable.
func FormatPayback(payback finance.Payback) string {
	if !payback.Viable {
		return "not viable"
	}
	return fmt.Sprintf("%.2f years", payback.Years)
}
