package catalog

import "github.com/agrifin/agriplan/pkg/portfolio"

// DefaultCropTemplates returns the static crop economics catalog: per
// hectare rates at 100% land allocation, currency in Rand. Figures are
// planning-grade reference data, not agronomic guarantees. The map is
// rebuilt on each call so callers can mutate their copy freely.
func DefaultCropTemplates() map[string]portfolio.CropTemplate {
	templates := []portfolio.CropTemplate{
		{
			Name:                 "maize",
			ProductionPerHectare: 6.5, // tons
			BasePrice:            3800,
			GrowthRatePct:        1.5,
			PriceInflationPct:    5.0,
			FixedCostsPerHectare: 4500,
			VariableCostPerUnit:  950,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 3500,
				Infrastructure:  2000,
				Equipment:       6500,
				Inputs:          5500,
				WorkingCapital:  3000,
			},
			YearsToMaturity: 1,
			WaterNeeds:      "medium",
			Profitability:   "moderate",
		},
		{
			Name:                 "wheat",
			ProductionPerHectare: 3.8,
			BasePrice:            5200,
			GrowthRatePct:        1.0,
			PriceInflationPct:    5.5,
			FixedCostsPerHectare: 4000,
			VariableCostPerUnit:  1400,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 3000,
				Infrastructure:  1800,
				Equipment:       6000,
				Inputs:          5000,
				WorkingCapital:  2800,
			},
			YearsToMaturity: 1,
			WaterNeeds:      "medium",
			Profitability:   "moderate",
		},
		{
			Name:                 "soybeans",
			ProductionPerHectare: 2.4,
			BasePrice:            7800,
			GrowthRatePct:        2.0,
			PriceInflationPct:    4.5,
			FixedCostsPerHectare: 3800,
			VariableCostPerUnit:  1900,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 3200,
				Infrastructure:  1500,
				Equipment:       5500,
				Inputs:          4800,
				WorkingCapital:  2500,
			},
			YearsToMaturity: 1,
			WaterNeeds:      "medium",
			Profitability:   "moderate",
		},
		{
			Name:                 "sunflower",
			ProductionPerHectare: 1.8,
			BasePrice:            8500,
			GrowthRatePct:        1.0,
			PriceInflationPct:    4.0,
			FixedCostsPerHectare: 3200,
			VariableCostPerUnit:  2100,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 2800,
				Infrastructure:  1200,
				Equipment:       5000,
				Inputs:          4200,
				WorkingCapital:  2200,
			},
			YearsToMaturity: 1,
			WaterNeeds:      "low",
			Profitability:   "moderate",
		},
		{
			Name:                 "potatoes",
			ProductionPerHectare: 42,
			BasePrice:            4200,
			GrowthRatePct:        2.5,
			PriceInflationPct:    6.0,
			FixedCostsPerHectare: 28000,
			VariableCostPerUnit:  2400,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 8000,
				Infrastructure:  15000,
				Equipment:       22000,
				Inputs:          35000,
				WorkingCapital:  15000,
			},
			YearsToMaturity: 1,
			WaterNeeds:      "high",
			Profitability:   "high",
		},
		{
			Name:                 "tomatoes",
			ProductionPerHectare: 65,
			BasePrice:            6500,
			GrowthRatePct:        2.0,
			PriceInflationPct:    6.5,
			FixedCostsPerHectare: 45000,
			VariableCostPerUnit:  3200,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 10000,
				Infrastructure:  60000,
				Equipment:       25000,
				Inputs:          40000,
				WorkingCapital:  25000,
			},
			YearsToMaturity: 1,
			WaterNeeds:      "high",
			Profitability:   "high",
		},
		{
			Name:                 "citrus",
			ProductionPerHectare: 38,
			BasePrice:            5800,
			GrowthRatePct:        4.0,
			PriceInflationPct:    5.0,
			FixedCostsPerHectare: 32000,
			VariableCostPerUnit:  1800,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 15000,
				Infrastructure:  45000,
				Equipment:       30000,
				Inputs:          25000,
				WorkingCapital:  20000,
			},
			YearsToMaturity: 4,
			WaterNeeds:      "high",
			Profitability:   "high",
		},
		{
			Name:                 "macadamia",
			ProductionPerHectare: 3.5,
			BasePrice:            72000,
			GrowthRatePct:        6.0,
			PriceInflationPct:    3.5,
			FixedCostsPerHectare: 38000,
			VariableCostPerUnit:  18000,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 18000,
				Infrastructure:  55000,
				Equipment:       35000,
				Inputs:          30000,
				WorkingCapital:  25000,
			},
			YearsToMaturity: 7,
			WaterNeeds:      "high",
			Profitability:   "high",
		},
		{
			Name:                 "lucerne",
			ProductionPerHectare: 14,
			BasePrice:            2800,
			GrowthRatePct:        1.0,
			PriceInflationPct:    4.5,
			FixedCostsPerHectare: 9000,
			VariableCostPerUnit:  800,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: 6000,
				Infrastructure:  20000,
				Equipment:       12000,
				Inputs:          8000,
				WorkingCapital:  6000,
			},
			YearsToMaturity: 1,
			WaterNeeds:      "high",
			Profitability:   "moderate",
		},
	}

	lookup := make(map[string]portfolio.CropTemplate, len(templates))
	for _, t := range templates {
		lookup[t.Name] = t
	}
	return lookup
}
