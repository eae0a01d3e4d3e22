package finance

import (
	"github.com/agrifin/agriplan/pkg/constants"
	"github.com/agrifin/agriplan/pkg/mathutil"
)

// CostKind distinguishes fixed from variable operating costs.
type CostKind string

const (
	FixedCost    CostKind = "fixed"
	VariableCost CostKind = "variable"
)

// FixedCategories and VariableCategories enumerate the cost category names
// the planning forms offer. Aggregation does not depend on them; they exist
// for presentation layers.
var (
	FixedCategories    = []string{"utilities", "labor", "maintenance", "insurance", "rent", "other"}
	VariableCategories = []string{"seeds", "fertilizer", "pesticides", "packaging", "fuel", "other"}
)

// CostEntry is one monthly operating cost, tagged with a target month (1-12)
// and an owning crop. An empty crop means the cost applies to all crops.
type CostEntry struct {
	Category string   `json:"category"`
	Kind     CostKind `json:"kind"`
	Month    int      `json:"month"`
	Crop     string   `json:"crop"`
	Amount   float64  `json:"amount"`
}

// CostSummary aggregates cost entries. ByMonth and ByCrop are groupings of
// the same entries and each reconcile to TotalMonthly.
type CostSummary struct {
	TotalFixed    float64            `json:"totalFixed"`
	TotalVariable float64            `json:"totalVariable"`
	TotalMonthly  float64            `json:"totalMonthly"`
	TotalAnnual   float64            `json:"totalAnnual"`
	PerHectare    float64            `json:"perHectare"`
	ByMonth       map[int]float64    `json:"byMonth"`
	ByCrop        map[string]float64 `json:"byCrop"`
}

// AggregateCosts totals the entries and groups them by month and by crop.
// PerHectare is 0 when hectares is non-positive rather than a division by
// zero.
func AggregateCosts(entries []CostEntry, hectares float64) CostSummary {
	summary := CostSummary{
		ByMonth: make(map[int]float64),
		ByCrop:  make(map[string]float64),
	}

	for _, entry := range entries {
		switch entry.Kind {
		case VariableCost:
			summary.TotalVariable += entry.Amount
		default:
			summary.TotalFixed += entry.Amount
		}
		summary.TotalMonthly += entry.Amount

		summary.ByMonth[entry.Month] += entry.Amount

		crop := entry.Crop
		if crop == "" {
			crop = constants.AllCrops
		}
		summary.ByCrop[crop] += entry.Amount
	}

	summary.TotalAnnual = summary.TotalMonthly * constants.MonthsPerYear
	if hectares > 0 {
		summary.PerHectare = mathutil.SafeDivide(summary.TotalMonthly, hectares)
	}

	return summary
}
