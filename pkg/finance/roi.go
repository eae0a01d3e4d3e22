package finance

import (
	"math"

	"github.com/agrifin/agriplan/pkg/constants"
	"github.com/agrifin/agriplan/pkg/mathutil"
)

// CropContribution is one crop's share of a return-on-investment
// calculation. PercentageWeight scales the contribution by the share of land
// allocated to the crop.
type CropContribution struct {
	Name             string  `json:"name"`
	Investment       float64 `json:"investment"`
	AnnualRevenue    float64 `json:"annualRevenue"`
	AnnualCosts      float64 `json:"annualCosts"`
	PercentageWeight float64 `json:"percentageWeight"`
}

// Payback reports a payback period in years. Viable is false when annual
// profit is non-positive, in which case Years carries no meaning.
type Payback struct {
	Years  float64 `json:"years"`
	Viable bool    `json:"viable"`
}

// ROIResult aggregates weighted crop contributions over a time horizon.
type ROIResult struct {
	TotalInvestment float64 `json:"totalInvestment"`
	AnnualRevenue   float64 `json:"annualRevenue"`
	AnnualCosts     float64 `json:"annualCosts"`
	AnnualProfit    float64 `json:"annualProfit"`
	TotalNetProfit  float64 `json:"totalNetProfit"`
	ROIPercent      float64 `json:"roiPercent"`
	Payback         Payback `json:"payback"`
}

// CalculateROI weights each crop's contribution by its land percentage, sums
// to portfolio totals, and derives the simple (non-compounding) profit and
// return metrics over the horizon.
func CalculateROI(crops []CropContribution, years int) ROIResult {
	var result ROIResult

	for _, crop := range crops {
		weight := crop.PercentageWeight / constants.PercentageMultiplier
		result.TotalInvestment += crop.Investment * weight
		result.AnnualRevenue += crop.AnnualRevenue * weight
		result.AnnualCosts += crop.AnnualCosts * weight
	}

	result.AnnualProfit = result.AnnualRevenue - result.AnnualCosts
	result.TotalNetProfit = SimpleTotalProfit(result.AnnualProfit, years)
	result.ROIPercent = ReturnOnInvestment(result.TotalNetProfit, result.TotalInvestment)
	result.Payback = PaybackPeriod(result.TotalInvestment, result.AnnualProfit)

	return result
}

// SimpleTotalProfit is the basic calculator's total: annual profit times the
// horizon, with no compounding or discounting.
func SimpleTotalProfit(annualProfit float64, years int) float64 {
	if years < 0 {
		years = 0
	}
	return annualProfit * float64(years)
}

// DiscountedTotalProfit is the sum of annual profits discounted at
// discountRatePct per year. A zero rate returns exactly the simple total so
// the two calculator variants agree when no discounting is requested.
func DiscountedTotalProfit(annualProfit, discountRatePct float64, years int) float64 {
	if discountRatePct == 0 {
		return SimpleTotalProfit(annualProfit, years)
	}
	total := 0.0
	for t := 1; t <= years; t++ {
		total += annualProfit / math.Pow(1+discountRatePct/constants.PercentageMultiplier, float64(t))
	}
	return total
}

// NetPresentValue subtracts the initial investment from the discounted
// profit stream.
func NetPresentValue(investment, annualProfit, discountRatePct float64, years int) float64 {
	return DiscountedTotalProfit(annualProfit, discountRatePct, years) - investment
}

// ReturnOnInvestment is the percentage return of totalNetProfit over the
// investment. Defined as 0 when the investment is 0.
func ReturnOnInvestment(totalNetProfit, investment float64) float64 {
	if investment == 0 {
		return 0
	}
	return (totalNetProfit - investment) / investment * constants.PercentageMultiplier
}

// PaybackPeriod is investment divided by annual profit, in years. Not viable
// when annual profit is non-positive.
func PaybackPeriod(investment, annualProfit float64) Payback {
	if annualProfit <= 0 {
		return Payback{}
	}
	return Payback{Years: mathutil.SafeDivide(investment, annualProfit), Viable: true}
}
