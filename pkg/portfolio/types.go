// Package portfolio turns a weighted allocation of crops over a land area
// and time horizon into scenario metrics, and ranks competing scenarios.
package portfolio

import (
	"math"

	"github.com/agrifin/agriplan/pkg/constants"
)

// InvestmentBreakdown decomposes a crop's initial investment per hectare.
type InvestmentBreakdown struct {
	LandPreparation float64 `json:"landPreparation"`
	Infrastructure  float64 `json:"infrastructure"`
	Equipment       float64 `json:"equipment"`
	Inputs          float64 `json:"inputs"`
	WorkingCapital  float64 `json:"workingCapital"`
}

// Total sums the investment components.
func (b InvestmentBreakdown) Total() float64 {
	return b.LandPreparation + b.Infrastructure + b.Equipment + b.Inputs + b.WorkingCapital
}

// CropTemplate is the static per-hectare economic profile of a crop at 100%
// land allocation. Templates are loaded at process start and never mutated
// at runtime.
type CropTemplate struct {
	Name                 string              `json:"name"`
	ProductionPerHectare float64             `json:"productionPerHectare"` // units/ha/year
	BasePrice            float64             `json:"basePrice"`            // currency/unit
	GrowthRatePct        float64             `json:"growthRatePct"`        // annual production growth, percent
	PriceInflationPct    float64             `json:"priceInflationPct"`    // annual price inflation, percent
	FixedCostsPerHectare float64             `json:"fixedCostsPerHectare"` // per year
	VariableCostPerUnit  float64             `json:"variableCostPerUnit"`
	Investment           InvestmentBreakdown `json:"investment"` // per hectare
	YearsToMaturity      int                 `json:"yearsToMaturity"`
	WaterNeeds           string              `json:"waterNeeds"`
	Profitability        string              `json:"profitability"`
}

// Allocation assigns a percentage of a portfolio's land to one crop. The
// crop name is not required to resolve to a template; unresolved names yield
// zeroed metrics.
type Allocation struct {
	CropName      string  `json:"cropName"`
	PercentOfLand float64 `json:"percentOfLand"`
}

// Portfolio is a named collection of crop allocations over a land area and
// time horizon.
type Portfolio struct {
	Name          string       `json:"name"`
	Allocations   []Allocation `json:"allocations"`
	TotalHectares float64      `json:"totalHectares"`
	Years         int          `json:"years"`
}

// AllocationTotal sums the allocation percentages.
func (p Portfolio) AllocationTotal() float64 {
	total := 0.0
	for _, a := range p.Allocations {
		total += a.PercentOfLand
	}
	return total
}

// IsValid reports whether the allocations sum to exactly 100 percent within
// floating tolerance. Metrics are still computed for invalid portfolios so
// the forms can give live feedback; presentation layers use this flag to
// warn.
func (p Portfolio) IsValid() bool {
	return math.Abs(p.AllocationTotal()-constants.FullAllocation) <= constants.AllocationTolerance
}
