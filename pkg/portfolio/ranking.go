package portfolio

// Recommendation names the best scenario per objective. The three objectives
// can disagree, so three separate winners are reported rather than a single
// combined ranking. A field is empty when no scenario qualifies (e.g. no
// viable payback).
type Recommendation struct {
	BestROI     string `json:"bestRoi"`
	BestPayback string `json:"bestPayback"`
	BestProfit  string `json:"bestProfit"`
}

// RankScenarios picks the scenario with the highest ROI, the lowest viable
// payback period, and the highest total net profit, independently.
func RankScenarios(scenarios []ScenarioMetrics) Recommendation {
	var rec Recommendation
	if len(scenarios) == 0 {
		return rec
	}

	var (
		haveROI, havePayback, haveProfit bool
		bestROI, bestPayback, bestProfit float64
	)

	for _, s := range scenarios {
		if !haveROI || s.ROIPercent > bestROI {
			haveROI = true
			bestROI = s.ROIPercent
			rec.BestROI = s.Name
		}
		if s.Payback.Viable && (!havePayback || s.Payback.Years < bestPayback) {
			havePayback = true
			bestPayback = s.Payback.Years
			rec.BestPayback = s.Name
		}
		if !haveProfit || s.TotalNetProfit > bestProfit {
			haveProfit = true
			bestProfit = s.TotalNetProfit
			rec.BestProfit = s.Name
		}
	}

	return rec
}
