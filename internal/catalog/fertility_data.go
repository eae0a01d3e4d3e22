package catalog

import "github.com/agrifin/agriplan/pkg/fertility"

func floatPtr(v float64) *float64 { return &v }

// DefaultReferenceData returns the static fertility reference tables. The
// tables are intentionally incomplete for some crop names; the generator
// skips crops it has no row for. Removal rates are lb of nutrient per unit
// of harvested yield (tons unless noted).
func DefaultReferenceData() fertility.ReferenceData {
	return fertility.ReferenceData{
		RemovalRates: map[string]fertility.RemovalRate{
			"maize":     {P2O5PerUnit: 15.0, K2OPerUnit: 10.5, SulfurPerUnit: floatPtr(2.2)},
			"wheat":     {P2O5PerUnit: 20.0, K2OPerUnit: 12.0, SulfurPerUnit: floatPtr(2.8)},
			"soybeans":  {P2O5PerUnit: 29.0, K2OPerUnit: 47.0, SulfurPerUnit: floatPtr(6.5), BoronPerUnit: floatPtr(0.04)},
			"sunflower": {P2O5PerUnit: 24.0, K2OPerUnit: 16.0, BoronPerUnit: floatPtr(0.09)},
			"potatoes":  {P2O5PerUnit: 3.0, K2OPerUnit: 11.5},
			"lucerne":   {P2O5PerUnit: 12.0, K2OPerUnit: 49.0, SulfurPerUnit: floatPtr(5.4), BoronPerUnit: floatPtr(0.07)},
		},
		NitrogenPrograms: map[string]string{
			"maize-to-soybeans":  "reduce starter nitrogen; soybeans fix their own nitrogen and a residual credit of 30-40 lb/ac is typical after maize",
			"soybeans-to-maize":  "credit 40 lb/ac nitrogen from the soybean residue and split the remaining program between planting and side-dress",
			"wheat-to-maize":     "apply a full nitrogen program; wheat straw immobilizes nitrogen during early breakdown, so front-load 25% at planting",
			"maize-to-wheat":     "sample residual nitrate before drilling; maize stover ties up early nitrogen so delay the main application to tillering",
			"lucerne-to-maize":   "take a 100-120 lb/ac nitrogen credit in the first year after lucerne and skip starter nitrogen entirely",
			"potatoes-to-wheat":  "expect elevated residual phosphorus after potatoes; cut the phosphate program in half and verify with a soil test",
			"wheat-to-sunflower": "sunflower scavenges deep nitrogen; apply no more than 60% of the standard program after a fertilized wheat crop",
		},
		PotassiumSources: map[string]string{
			"potatoes": "use sulfate of potash rather than muriate; chloride in muriate lowers tuber specific gravity",
			"maize":    "muriate of potash is the economical source; band no more than a third of the program with the seed",
			"lucerne":  "broadcast potash after each cutting cycle; lucerne removes more potassium than any other crop in the catalog",
			"soybeans": "apply the full potash program to the preceding crop; soybeans respond better to residual potassium",
		},
		CoverCrops: map[string]fertility.CoverCropRule{
			"after-maize":    {Species: "stooling rye", SeedingRate: "25 kg/ha", Purpose: "scavenge residual nitrogen and protect the surface over winter"},
			"after-potatoes": {Species: "white mustard", SeedingRate: "15 kg/ha", Purpose: "biofumigation against soil-borne disease and rapid canopy after lifting"},
			"after-wheat":    {Species: "forage radish", SeedingRate: "10 kg/ha", Purpose: "break compaction in the harvest traffic lanes and recycle potassium"},
			"after-soybeans": {Species: "black oats", SeedingRate: "45 kg/ha", Purpose: "hold fixed nitrogen in the profile ahead of the next cereal"},
		},
		Recommendations: map[string][]fertility.RecommendationRule{
			"maize": {
				{Text: "band phosphate with the planter; broadcast phosphorus is poorly recovered by maize on most soils"},
				{Text: "split nitrogen on sandy soils to limit leaching between planting and side-dress", SoilTypeContains: "sand"},
			},
			"wheat": {
				{Text: "apply sulfur with the first nitrogen split; cool-season uptake outpaces mineralization"},
				{Text: "increase seeding nitrogen slightly on sandy soils where early mineralization is weak", SoilTypeContains: "sand"},
			},
			"soybeans": {
				{Text: "inoculate seed when the field has not grown soybeans in the last four seasons"},
				{Text: "check molybdenum on acid soils; it limits nodulation before nitrogen ever does"},
			},
			"potatoes": {
				{Text: "place the full phosphate program in the row at planting; potatoes have a weak root system"},
				{Text: "irrigation scheduling matters more than fertility on sandy soils; water-soluble nutrients leave the root zone fast", SoilTypeContains: "sand"},
			},
			"sunflower": {
				{Text: "boron is the first limiting micronutrient for sunflower; confirm with a tissue test at budding"},
			},
			"lucerne": {
				{Text: "maintain potassium aggressively; stands thin out two seasons early when potassium slips"},
			},
		},
		Monitoring: []fertility.MonitoringProtocol{
			{Timing: "pre-plant", Test: "standard soil test: pH, P, K, organic matter"},
			{Timing: "mid-season", Test: "petiole nitrate test", Crops: []string{"potatoes", "tomatoes"}},
			{Timing: "budding", Test: "tissue test for boron", Crops: []string{"sunflower", "lucerne"}},
			{Timing: "post-harvest", Test: "residual nitrate profile to 60 cm", Crops: []string{"maize", "wheat"}},
			{Timing: "annual", Test: "pH check on the top 15 cm; acidification tracks nitrogen rate"},
		},
		CriticalAmendments: map[string]string{
			"lucerne":  "lime to pH 6.5 or better before establishment; lucerne will not persist on acid soil",
			"potatoes": "hold pH near 5.5 where common scab is a known risk; liming potato ground invites scab",
			"citrus":   "correct zinc and boron before planting; deficiencies set in slowly and show up years later",
		},
	}
}
