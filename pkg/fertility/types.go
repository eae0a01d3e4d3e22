// Package fertility deterministically derives an agronomy advisory plan for
// a crop rotation from externally supplied reference tables. The reference
// tables are domain data, not algorithms; the generator works with empty or
// partial tables and degrades per field rather than failing.
package fertility

import (
	"encoding/json"
	"strconv"

	"github.com/agrifin/agriplan/pkg/constants"
)

// Amount is a nutrient quantity that may be unknown because the caller
// supplied no numeric yield target. The two states are distinct so a
// consumer cannot mistake "insufficient input" for zero removal.
type Amount struct {
	Value float64
	Known bool
}

// KnownAmount wraps a computed nutrient quantity.
func KnownAmount(value float64) Amount {
	return Amount{Value: value, Known: true}
}

// NeedsYieldTarget is the unknown-quantity sentinel.
func NeedsYieldTarget() Amount {
	return Amount{}
}

// MarshalJSON emits the numeric value, or the literal sentinel string when
// the amount is unknown.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Known {
		return json.Marshal(constants.YieldTargetNeeded)
	}
	return json.Marshal(a.Value)
}

func (a Amount) String() string {
	if !a.Known {
		return constants.YieldTargetNeeded
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

// RemovalRate is a crop's nutrient removal per unit of harvested yield.
// Sulfur and boron are only defined for some crops; nil means the reference
// row does not define them.
type RemovalRate struct {
	P2O5PerUnit   float64  `yaml:"p2o5PerUnit"`
	K2OPerUnit    float64  `yaml:"k2oPerUnit"`
	SulfurPerUnit *float64 `yaml:"sulfurPerUnit,omitempty"`
	BoronPerUnit  *float64 `yaml:"boronPerUnit,omitempty"`
}

// RecommendationRule is one data-driven advisory template for a crop. When
// SoilTypeContains is non-empty the rule only applies if the request's soil
// type contains that substring (case-insensitive).
type RecommendationRule struct {
	Text             string `yaml:"text"`
	SoilTypeContains string `yaml:"soilTypeContains,omitempty"`
}

// CoverCropRule describes the cover crop to establish after a given crop.
type CoverCropRule struct {
	Species     string `yaml:"species"`
	SeedingRate string `yaml:"seedingRate"`
	Purpose     string `yaml:"purpose"`
}

// MonitoringProtocol schedules a soil or tissue test. An empty Crops list
// applies the protocol to every rotation.
type MonitoringProtocol struct {
	Timing string   `yaml:"timing"`
	Test   string   `yaml:"test"`
	Crops  []string `yaml:"crops,omitempty"`
}

// ReferenceData bundles every lookup table the generator consults. The
// caller decides whether to supply database-backed rows or the static
// fallback tables; the generator has no implicit default.
type ReferenceData struct {
	RemovalRates       map[string]RemovalRate          `yaml:"removalRates"`
	NitrogenPrograms   map[string]string               `yaml:"nitrogenPrograms"` // keyed "{from}-to-{to}"
	PotassiumSources   map[string]string               `yaml:"potassiumSources"`
	CoverCrops         map[string]CoverCropRule        `yaml:"coverCrops"` // keyed "after-{crop}"
	Recommendations    map[string][]RecommendationRule `yaml:"recommendations"`
	Monitoring         []MonitoringProtocol            `yaml:"monitoring"`
	CriticalAmendments map[string]string               `yaml:"criticalAmendments"`
}

// Request carries the inputs for one advisory plan. Crops is the rotation
// sequence in order and is the only required field. YieldTargets holds the
// raw form values; non-numeric entries degrade to the yield-target sentinel.
type Request struct {
	Crops        []string           `json:"crops"`
	SoilTests    map[string]float64 `json:"soilTests,omitempty"`
	YieldTargets map[string]string  `json:"yieldTargets,omitempty"`
	SoilType     string             `json:"soilType,omitempty"`
}

// CropRemoval is the estimated nutrient removal for one crop in the
// sequence. Sulfur and Boron are present only when the reference row
// defines them.
type CropRemoval struct {
	Crop   string  `json:"crop"`
	P2O5   Amount  `json:"p2o5"`
	K2O    Amount  `json:"k2o"`
	Sulfur *Amount `json:"sulfur,omitempty"`
	Boron  *Amount `json:"boron,omitempty"`
}

// CropAdvice holds the free-text recommendations generated for one crop.
type CropAdvice struct {
	Crop  string   `json:"crop"`
	Notes []string `json:"notes"`
}

// Transition is the guidance for one adjacent crop pair in the sequence.
type Transition struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Guidance string `json:"guidance"`
}

// MonitoringEntry is one scheduled test in the plan.
type MonitoringEntry struct {
	Timing string   `json:"timing"`
	Test   string   `json:"test"`
	Crops  []string `json:"crops,omitempty"`
}

// CoverCropEntry is the cover crop to plant after one crop in the sequence.
type CoverCropEntry struct {
	AfterCrop   string `json:"afterCrop"`
	Species     string `json:"species"`
	SeedingRate string `json:"seedingRate"`
	Purpose     string `json:"purpose"`
}

// Plan is a complete advisory plan. All sections are derived on each call
// from the reference tables; nothing is persisted here.
type Plan struct {
	NutrientRemoval    []CropRemoval     `json:"nutrientRemoval"`
	Recommendations    []CropAdvice      `json:"recommendations"`
	TransitionGuidance []Transition      `json:"transitionGuidance"`
	MonitoringSchedule []MonitoringEntry `json:"monitoringSchedule"`
	CoverCropPlan      []CoverCropEntry  `json:"coverCropPlan"`
	CriticalAmendments []string          `json:"criticalAmendments"`
}
