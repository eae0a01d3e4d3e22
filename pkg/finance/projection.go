package finance

import (
	"github.com/agrifin/agriplan/pkg/constants"
	"github.com/agrifin/agriplan/pkg/mathutil"
)

// CropProjectionInput drives the multi-year revenue projection for one crop.
// BaseProduction and BasePrice are the year-1 values; growth and inflation
// compound annually from there.
type CropProjectionInput struct {
	Name              string  `json:"name"`
	BaseProduction    float64 `json:"baseProduction"`
	BasePrice         float64 `json:"basePrice"`
	GrowthRatePct     float64 `json:"growthRatePct"`
	PriceInflationPct float64 `json:"priceInflationPct"`
	PercentageWeight  float64 `json:"percentageWeight"`
}

// CropYear is one crop's projected figures for a single year.
type CropYear struct {
	Year       int     `json:"year"`
	Production float64 `json:"production"`
	Price      float64 `json:"price"`
	Revenue    float64 `json:"revenue"`
}

// ProjectionResult holds per-crop and aggregate projected revenue over the
// horizon. TotalByYear is 0-indexed on year-1.
type ProjectionResult struct {
	Years        int                   `json:"years"`
	PerCrop      map[string][]CropYear `json:"perCrop"`
	TotalByYear  []float64             `json:"totalByYear"`
	TotalRevenue float64               `json:"totalRevenue"`
}

// ProjectRevenue compounds production growth and price inflation from year 1
// for each crop, weights revenue by the crop's land percentage, and
// aggregates per year. This is the function the projection cache wraps; it is
// pure and deterministic for a given input order.
func ProjectRevenue(crops []CropProjectionInput, years int) ProjectionResult {
	if years < 0 {
		years = 0
	}

	result := ProjectionResult{
		Years:       years,
		PerCrop:     make(map[string][]CropYear, len(crops)),
		TotalByYear: make([]float64, years),
	}

	for _, crop := range crops {
		seq := make([]CropYear, 0, years)
		for t := 1; t <= years; t++ {
			production := mathutil.Compound(crop.BaseProduction, crop.GrowthRatePct, t-1)
			price := mathutil.Compound(crop.BasePrice, crop.PriceInflationPct, t-1)
			revenue := production * price * crop.PercentageWeight / constants.PercentageMultiplier
			seq = append(seq, CropYear{
				Year:       t,
				Production: production,
				Price:      price,
				Revenue:    revenue,
			})
			result.TotalByYear[t-1] += revenue
			result.TotalRevenue += revenue
		}
		result.PerCrop[crop.Name] = seq
	}

	return result
}
