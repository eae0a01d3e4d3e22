package finance

// BreakEvenRequest holds the inputs for a break-even calculation.
type BreakEvenRequest struct {
	FixedCosts          float64 `json:"fixedCosts"`
	VariableCostPerUnit float64 `json:"variableCostPerUnit"`
	SellingPricePerUnit float64 `json:"sellingPricePerUnit"`
	ExpectedUnits       float64 `json:"expectedUnits"`
}

// BreakEvenResult reports the break-even point. Defined is false when the
// selling price does not exceed the variable cost, in which case break-even
// is unreachable and the numeric fields carry no meaning.
type BreakEvenResult struct {
	Defined             bool    `json:"defined"`
	Units               float64 `json:"units"`
	Revenue             float64 `json:"revenue"`
	ContributionMargin  float64 `json:"contributionMargin"`
	MarginOfSafetyUnits float64 `json:"marginOfSafetyUnits"`
}

// CalculateBreakEven computes the unit volume and revenue at which fixed
// costs are covered. Break-even is only defined when each unit sold
// contributes a positive margin; otherwise the result is the explicit
// undefined sentinel, never a negative or infinite number.
func CalculateBreakEven(req BreakEvenRequest) BreakEvenResult {
	margin := req.SellingPricePerUnit - req.VariableCostPerUnit
	if margin <= 0 {
		return BreakEvenResult{}
	}

	units := req.FixedCosts / margin
	return BreakEvenResult{
		Defined:             true,
		Units:               units,
		Revenue:             units * req.SellingPricePerUnit,
		ContributionMargin:  margin,
		MarginOfSafetyUnits: req.ExpectedUnits - units,
	}
}
