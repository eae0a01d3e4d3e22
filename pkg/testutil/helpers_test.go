package testutil

import (
	"testing"

	"github.com/agrifin/agriplan/pkg/portfolio"
)

func TestFindScenario(t *testing.T) {
	scenarios := []portfolio.ScenarioMetrics{
		{Name: "conservative", ROIPercent: 120},
		{Name: "diversified", ROIPercent: 180},
	}

	found := FindScenario(scenarios, "diversified")
	if found == nil {
		t.Fatal("FindScenario() = nil, expected a match")
	}
	if found.ROIPercent != 180 {
		t.Errorf("found.ROIPercent = %.2f, expected 180", found.ROIPercent)
	}

	// The pointer aliases the slice entry so assertions see later mutations.
	found.ROIPercent = 200
	if scenarios[1].ROIPercent != 200 {
		t.Error("FindScenario() returned a copy, expected a pointer into the slice")
	}

	if FindScenario(scenarios, "missing") != nil {
		t.Error("FindScenario() matched a name that does not exist")
	}
	if FindScenario(nil, "conservative") != nil {
		t.Error("FindScenario(nil, ...) != nil, expected nil for an empty slice")
	}
}
