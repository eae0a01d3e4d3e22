// Package planner orchestrates the calculators over a loaded configuration:
// scenario metrics and ranking, revenue projections through the memoization
// cache, the loan schedule, cost aggregation, break-even, and the fertility
// advisory plan.
package planner

import (
	"fmt"

	"github.com/agrifin/agriplan/internal/catalog"
	"github.com/agrifin/agriplan/pkg/constants"
	"github.com/agrifin/agriplan/pkg/fertility"
	"github.com/agrifin/agriplan/pkg/finance"
	"github.com/agrifin/agriplan/pkg/portfolio"
	"github.com/agrifin/agriplan/pkg/projcache"
	"github.com/agrifin/agriplan/pkg/validation"
	"go.uber.org/zap"
)

// PlanResult collects everything one planning run produces. All fields are
// plain JSON-serializable records so export collaborators can consume them
// directly.
type PlanResult struct {
	Scenarios      []portfolio.ScenarioMetrics         `json:"scenarios"`
	Recommendation portfolio.Recommendation            `json:"recommendation"`
	Projections    map[string]finance.ProjectionResult `json:"projections,omitempty"`
	Loan           *finance.AmortizationResult         `json:"loan,omitempty"`
	BreakEven      *finance.BreakEvenResult            `json:"breakEven,omitempty"`
	Costs          *finance.CostSummary                `json:"costs,omitempty"`
	Fertility      *fertility.Plan                     `json:"fertility,omitempty"`
	Warnings       []string                            `json:"warnings,omitempty"`
}

// BuildPlan runs every configured calculator and assembles the results.
func BuildPlan(logger *zap.Logger, conf catalog.Configuration) (*PlanResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result := &PlanResult{
		Projections: make(map[string]finance.ProjectionResult),
	}

	cache := projcache.NewFIFO(constants.DefaultProjectionCacheSize)
	engine := portfolio.NewEngine(logger, conf.Templates(), cache)

	for _, p := range conf.PortfolioList() {
		result.Warnings = append(result.Warnings, validation.ValidatePortfolio(p)...)
		metrics := engine.ComputeMetrics(p)
		result.Scenarios = append(result.Scenarios, metrics)
		result.Projections[p.Name] = engine.ProjectRevenue(p)
		logger.Debug(fmt.Sprintf("computed scenario %s: ROI %.2f%%", p.Name, metrics.ROIPercent),
			zap.String("op", "planner.BuildPlan"),
		)
	}
	result.Recommendation = portfolio.RankScenarios(result.Scenarios)

	if conf.Loan != nil {
		result.Warnings = append(result.Warnings,
			validation.ValidateLoanInputs(conf.Loan.Principal, conf.Loan.AnnualRatePct, conf.Loan.TermYears)...)
		result.Loan = finance.CalculateLoan(finance.LoanRequest{
			Principal:      conf.Loan.Principal,
			AnnualRatePct:  conf.Loan.AnnualRatePct,
			TermYears:      conf.Loan.TermYears,
			ScheduleMonths: constants.MonthsPerYear,
		})
	}

	if conf.BreakEven != nil {
		breakEven := finance.CalculateBreakEven(finance.BreakEvenRequest{
			FixedCosts:          conf.BreakEven.FixedCosts,
			VariableCostPerUnit: conf.BreakEven.VariableCostPerUnit,
			SellingPricePerUnit: conf.BreakEven.SellingPricePerUnit,
			ExpectedUnits:       conf.BreakEven.ExpectedUnits,
		})
		result.BreakEven = &breakEven
	}

	if len(conf.Costs) > 0 {
		entries := conf.CostEntries()
		result.Warnings = append(result.Warnings, validation.ValidateCostEntries(entries)...)
		hectares := 0.0
		for _, p := range conf.PortfolioList() {
			hectares += p.TotalHectares
		}
		costs := finance.AggregateCosts(entries, hectares)
		result.Costs = &costs
	}

	if len(conf.Fertility.Crops) > 0 {
		ref, err := catalog.LoadReferenceData(conf.Fertility.ReferenceFile)
		if err != nil {
			return nil, err
		}
		generator := fertility.NewGenerator(logger, ref)
		plan, err := generator.GeneratePlan(conf.FertilityRequest())
		if err != nil {
			return nil, err
		}
		result.Fertility = plan
	}

	return result, nil
}
