package fertility

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agrifin/agriplan/pkg/constants"
	"go.uber.org/zap"
)

// acidSoilPH is the soil test pH below which a lime amendment is flagged.
const acidSoilPH = 5.5

// ErrNoCrops is returned when a plan is requested for an empty crop
// sequence. This is the generator's only error condition; all other missing
// data degrades to omitted fields or sentinels.
var ErrNoCrops = errors.New("fertility: crop sequence must contain at least one crop")

// Generator derives advisory plans from a fixed reference-data bundle.
type Generator struct {
	logger *zap.Logger
	ref    ReferenceData
}

// NewGenerator creates a Generator over the given reference tables.
func NewGenerator(logger *zap.Logger, ref ReferenceData) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger, ref: ref}
}

// GeneratePlan transforms the request into a complete advisory plan. The
// reference tables are known to be incomplete for some crop names; lookup
// misses are logged at debug and skipped (or substituted with fallbacks),
// never surfaced as errors.
func (g *Generator) GeneratePlan(req Request) (*Plan, error) {
	if len(req.Crops) == 0 {
		return nil, ErrNoCrops
	}

	plan := &Plan{
		NutrientRemoval:    g.nutrientRemoval(req),
		Recommendations:    g.recommendations(req),
		TransitionGuidance: g.transitions(req.Crops),
		MonitoringSchedule: g.monitoring(req.Crops),
		CoverCropPlan:      g.coverCrops(req.Crops),
		CriticalAmendments: g.criticalAmendments(req),
	}

	return plan, nil
}

// nutrientRemoval estimates per-crop nutrient removal from the removal-rate
// table and the crop's yield target. Crops without a reference row are
// skipped; crops without a numeric yield target report the sentinel per
// nutrient.
func (g *Generator) nutrientRemoval(req Request) []CropRemoval {
	removals := make([]CropRemoval, 0, len(req.Crops))

	for _, crop := range req.Crops {
		rate, ok := g.ref.RemovalRates[crop]
		if !ok {
			g.logger.Debug(fmt.Sprintf("no nutrient removal rate for crop %q, skipping", crop),
				zap.String("op", "fertility.nutrientRemoval"),
			)
			continue
		}

		removal := CropRemoval{Crop: crop}
		yield, haveYield := parseYieldTarget(req.YieldTargets[crop])

		if haveYield {
			removal.P2O5 = KnownAmount(math.Round(rate.P2O5PerUnit * yield))
			removal.K2O = KnownAmount(math.Round(rate.K2OPerUnit * yield))
		} else {
			removal.P2O5 = NeedsYieldTarget()
			removal.K2O = NeedsYieldTarget()
		}

		if rate.SulfurPerUnit != nil {
			removal.Sulfur = amountPtr(haveYield, math.Round(*rate.SulfurPerUnit*yield))
		}
		if rate.BoronPerUnit != nil {
			// Boron removal is small enough to need two decimal places.
			removal.Boron = amountPtr(haveYield, math.Round(*rate.BoronPerUnit*yield*100)/100)
		}

		removals = append(removals, removal)
	}

	return removals
}

// recommendations evaluates the per-crop advisory templates, including any
// soil-type conditioned rules, and appends potassium-source guidance when
// the table has a row for the crop.
func (g *Generator) recommendations(req Request) []CropAdvice {
	advice := make([]CropAdvice, 0, len(req.Crops))
	soilType := strings.ToLower(req.SoilType)

	for _, crop := range req.Crops {
		entry := CropAdvice{Crop: crop}

		for _, rule := range g.ref.Recommendations[crop] {
			if rule.SoilTypeContains != "" && !strings.Contains(soilType, strings.ToLower(rule.SoilTypeContains)) {
				continue
			}
			entry.Notes = append(entry.Notes, rule.Text)
		}

		if source, ok := g.ref.PotassiumSources[crop]; ok {
			entry.Notes = append(entry.Notes, source)
		}

		if len(entry.Notes) > 0 {
			advice = append(advice, entry)
		}
	}

	return advice
}

// transitions produces exactly one guidance record per adjacent pair in the
// sequence, substituting the generic fallback when the table has no entry
// for the pair.
func (g *Generator) transitions(crops []string) []Transition {
	if len(crops) < 2 {
		return nil
	}

	transitions := make([]Transition, 0, len(crops)-1)
	for i := 0; i < len(crops)-1; i++ {
		from, to := crops[i], crops[i+1]
		guidance, ok := g.ref.NitrogenPrograms[TransitionKey(from, to)]
		if !ok {
			g.logger.Debug(fmt.Sprintf("no transition guidance for %s to %s, using fallback", from, to),
				zap.String("op", "fertility.transitions"),
			)
			guidance = constants.StandardRotationGuidance
		}
		transitions = append(transitions, Transition{From: from, To: to, Guidance: guidance})
	}

	return transitions
}

// monitoring filters the protocol table down to protocols relevant to the
// sequence. Protocols with no crop list apply to every rotation.
func (g *Generator) monitoring(crops []string) []MonitoringEntry {
	inSequence := make(map[string]bool, len(crops))
	for _, crop := range crops {
		inSequence[crop] = true
	}

	var schedule []MonitoringEntry
	for _, protocol := range g.ref.Monitoring {
		if len(protocol.Crops) == 0 {
			schedule = append(schedule, MonitoringEntry{Timing: protocol.Timing, Test: protocol.Test})
			continue
		}
		var matched []string
		for _, crop := range protocol.Crops {
			if inSequence[crop] {
				matched = append(matched, crop)
			}
		}
		if len(matched) > 0 {
			schedule = append(schedule, MonitoringEntry{Timing: protocol.Timing, Test: protocol.Test, Crops: matched})
		}
	}

	return schedule
}

// coverCrops includes an entry for each crop that has a following crop and a
// row in the cover-crop table. Missing rows are omitted, not substituted.
func (g *Generator) coverCrops(crops []string) []CoverCropEntry {
	var entries []CoverCropEntry
	for i := 0; i < len(crops)-1; i++ {
		rule, ok := g.ref.CoverCrops[CoverCropKey(crops[i])]
		if !ok {
			continue
		}
		entries = append(entries, CoverCropEntry{
			AfterCrop:   crops[i],
			Species:     rule.Species,
			SeedingRate: rule.SeedingRate,
			Purpose:     rule.Purpose,
		})
	}
	return entries
}

// criticalAmendments collects the amendment notes for crops in the sequence
// and flags acid soils when a pH soil test is supplied.
func (g *Generator) criticalAmendments(req Request) []string {
	var notes []string
	for _, crop := range req.Crops {
		if note, ok := g.ref.CriticalAmendments[crop]; ok {
			notes = append(notes, note)
		}
	}

	if ph, ok := req.SoilTests["ph"]; ok && ph < acidSoilPH {
		notes = append(notes, fmt.Sprintf("soil pH %.1f is below %.1f: apply agricultural lime before the first planting", ph, acidSoilPH))
	}

	return notes
}

// TransitionKey builds the lookup key for an ordered crop pair.
func TransitionKey(from, to string) string {
	return from + "-to-" + to
}

// CoverCropKey builds the lookup key for the cover crop after a crop.
func CoverCropKey(crop string) string {
	return "after-" + crop
}

// parseYieldTarget parses a raw form value into a yield target. Missing or
// non-numeric values report false so removal estimates degrade to the
// sentinel rather than a number.
func parseYieldTarget(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return 0, false
	}
	return value, true
}

func amountPtr(known bool, value float64) *Amount {
	if !known {
		a := NeedsYieldTarget()
		return &a
	}
	a := KnownAmount(value)
	return &a
}
