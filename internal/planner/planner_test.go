package planner

import (
	"strings"
	"testing"

	"github.com/agrifin/agriplan/internal/catalog"
	"github.com/agrifin/agriplan/pkg/testutil"
)

func testConfiguration() catalog.Configuration {
	return catalog.Configuration{
		Portfolios: []catalog.PortfolioConfig{
			{
				Name:          "conservative",
				TotalHectares: 100,
				Years:         5,
				Allocations: []catalog.AllocationConfig{
					{Crop: "maize", Percent: 70},
					{Crop: "wheat", Percent: 30},
				},
			},
			{
				Name:          "diversified",
				TotalHectares: 100,
				Years:         5,
				Allocations: []catalog.AllocationConfig{
					{Crop: "maize", Percent: 40},
					{Crop: "soybeans", Percent: 30},
					{Crop: "sunflower", Percent: 30},
				},
			},
		},
		Loan: &catalog.LoanConfig{
			Principal:     200000,
			AnnualRatePct: 11.5,
			TermYears:     5,
		},
		BreakEven: &catalog.BreakEvenConfig{
			FixedCosts:          50000,
			VariableCostPerUnit: 5,
			SellingPricePerUnit: 10,
			ExpectedUnits:       15000,
		},
		Costs: []catalog.CostEntryConfig{
			{Category: "labor", Kind: "fixed", Month: 1, Amount: 18000},
			{Category: "fertilizer", Kind: "variable", Month: 3, Crop: "maize", Amount: 12000},
		},
		Fertility: catalog.FertilityConfig{
			Crops:    []string{"maize", "soybeans"},
			SoilType: "sandy loam",
		},
	}
}

func TestBuildPlan(t *testing.T) {
	result, err := BuildPlan(nil, testConfiguration())
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	if len(result.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, expected 2", len(result.Scenarios))
	}
	for _, name := range []string{"conservative", "diversified"} {
		s := testutil.FindScenario(result.Scenarios, name)
		if s == nil {
			t.Fatalf("scenario %s missing from results", name)
		}
		if !s.IsValid {
			t.Errorf("scenario %s invalid, allocations sum to 100", s.Name)
		}
		if s.TotalInvestment <= 0 || s.AnnualRevenue <= 0 {
			t.Errorf("scenario %s has empty economics: %+v", s.Name, s)
		}
	}

	if result.Recommendation.BestROI == "" || result.Recommendation.BestProfit == "" {
		t.Errorf("recommendation incomplete: %+v", result.Recommendation)
	}

	for _, p := range []string{"conservative", "diversified"} {
		projection, ok := result.Projections[p]
		if !ok {
			t.Errorf("projection missing for %s", p)
			continue
		}
		if projection.Years != 5 || projection.TotalRevenue <= 0 {
			t.Errorf("projection for %s = %+v", p, projection)
		}
	}

	if result.Loan == nil {
		t.Fatal("Loan section missing")
	}
	if len(result.Loan.Schedule) != 12 {
		t.Errorf("len(Loan.Schedule) = %d, expected one year of entries", len(result.Loan.Schedule))
	}

	if result.BreakEven == nil || !result.BreakEven.Defined {
		t.Errorf("BreakEven = %+v, expected a defined result", result.BreakEven)
	}

	if result.Costs == nil {
		t.Fatal("Costs section missing")
	}
	if result.Costs.TotalMonthly != 30000 {
		t.Errorf("Costs.TotalMonthly = %.2f, expected 30000", result.Costs.TotalMonthly)
	}

	if result.Fertility == nil {
		t.Fatal("Fertility section missing")
	}
	if len(result.Fertility.TransitionGuidance) != 1 {
		t.Errorf("TransitionGuidance = %+v, expected one entry for two crops", result.Fertility.TransitionGuidance)
	}
}

func TestBuildPlanOptionalSections(t *testing.T) {
	conf := testConfiguration()
	conf.Loan = nil
	conf.BreakEven = nil
	conf.Costs = nil
	conf.Fertility = catalog.FertilityConfig{}

	result, err := BuildPlan(nil, conf)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	if result.Loan != nil || result.BreakEven != nil || result.Costs != nil || result.Fertility != nil {
		t.Errorf("optional sections populated without configuration: %+v", result)
	}
	if len(result.Scenarios) != 2 {
		t.Errorf("len(Scenarios) = %d, expected the scenarios to remain", len(result.Scenarios))
	}
}

func TestBuildPlanWarnings(t *testing.T) {
	conf := testConfiguration()
	conf.Portfolios[0].Allocations[0].Percent = 50 // sum drops to 80

	result, err := BuildPlan(nil, conf)
	if err != nil {
		t.Fatalf("BuildPlan() error = %v", err)
	}

	found := false
	for _, warning := range result.Warnings {
		if strings.Contains(warning, "conservative") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, expected one naming the invalid portfolio", result.Warnings)
	}

	// Invalid allocations are flagged, not dropped.
	if len(result.Scenarios) != 2 {
		t.Fatalf("len(Scenarios) = %d, expected invalid scenarios to still compute", len(result.Scenarios))
	}
	conservative := testutil.FindScenario(result.Scenarios, "conservative")
	if conservative == nil {
		t.Fatal("scenario conservative missing from results")
	}
	if conservative.IsValid {
		t.Error("conservative.IsValid = true, expected false for an 80 percent allocation")
	}
}

func TestBuildPlanUnknownFertilityReference(t *testing.T) {
	conf := testConfiguration()
	conf.Fertility.ReferenceFile = "/nonexistent/reference.yaml"

	if _, err := BuildPlan(nil, conf); err == nil {
		t.Error("BuildPlan() expected an error for an unreadable reference file")
	}
}
