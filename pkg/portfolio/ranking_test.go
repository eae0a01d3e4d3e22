package portfolio

import (
	"testing"

	"github.com/agrifin/agriplan/pkg/finance"
)

func TestRankScenarios(t *testing.T) {
	scenarios := []ScenarioMetrics{
		{
			Name:           "high-roi",
			ROIPercent:     250,
			TotalNetProfit: 100000,
			Payback:        finance.Payback{Years: 4, Viable: true},
		},
		{
			Name:           "fast-payback",
			ROIPercent:     120,
			TotalNetProfit: 80000,
			Payback:        finance.Payback{Years: 1.2, Viable: true},
		},
		{
			Name:           "big-profit",
			ROIPercent:     90,
			TotalNetProfit: 500000,
			Payback:        finance.Payback{Viable: false},
		},
	}

	rec := RankScenarios(scenarios)

	if rec.BestROI != "high-roi" {
		t.Errorf("BestROI = %q, expected high-roi", rec.BestROI)
	}
	if rec.BestPayback != "fast-payback" {
		t.Errorf("BestPayback = %q, expected fast-payback", rec.BestPayback)
	}
	if rec.BestProfit != "big-profit" {
		t.Errorf("BestProfit = %q, expected big-profit", rec.BestProfit)
	}
}

func TestRankScenariosNoViablePayback(t *testing.T) {
	scenarios := []ScenarioMetrics{
		{Name: "a", ROIPercent: 10, TotalNetProfit: 1000, Payback: finance.Payback{Viable: false}},
		{Name: "b", ROIPercent: 20, TotalNetProfit: 2000, Payback: finance.Payback{Viable: false}},
	}

	rec := RankScenarios(scenarios)

	if rec.BestPayback != "" {
		t.Errorf("BestPayback = %q, expected empty when no scenario recoups its investment", rec.BestPayback)
	}
	if rec.BestROI != "b" || rec.BestProfit != "b" {
		t.Errorf("recommendation = %+v, expected b to win ROI and profit", rec)
	}
}

func TestRankScenariosEmpty(t *testing.T) {
	rec := RankScenarios(nil)
	if rec != (Recommendation{}) {
		t.Errorf("RankScenarios(nil) = %+v, expected the zero value", rec)
	}
}

func TestRankScenariosSingle(t *testing.T) {
	scenarios := []ScenarioMetrics{
		{Name: "only", ROIPercent: 50, TotalNetProfit: 10000, Payback: finance.Payback{Years: 2, Viable: true}},
	}

	rec := RankScenarios(scenarios)

	if rec.BestROI != "only" || rec.BestPayback != "only" || rec.BestProfit != "only" {
		t.Errorf("recommendation = %+v, expected only to win every objective", rec)
	}
}
