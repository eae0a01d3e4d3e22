package portfolio

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agrifin/agriplan/pkg/constants"
	"github.com/agrifin/agriplan/pkg/finance"
	"github.com/agrifin/agriplan/pkg/projcache"
	"go.uber.org/zap"
)

// CropMetrics is one crop's contribution to a scenario. Resolved is false
// when the crop name did not match a template; such crops contribute zeros.
type CropMetrics struct {
	CropName      string  `json:"cropName"`
	Hectares      float64 `json:"hectares"`
	Investment    float64 `json:"investment"`
	AnnualRevenue float64 `json:"annualRevenue"`
	AnnualCosts   float64 `json:"annualCosts"`
	AnnualProfit  float64 `json:"annualProfit"`
	Resolved      bool    `json:"resolved"`
}

// ScenarioMetrics is the derived financial summary of one portfolio.
type ScenarioMetrics struct {
	Name            string          `json:"name"`
	TotalInvestment float64         `json:"totalInvestment"`
	AnnualRevenue   float64         `json:"annualRevenue"`
	AnnualCosts     float64         `json:"annualCosts"`
	AnnualProfit    float64         `json:"annualProfit"`
	TotalNetProfit  float64         `json:"totalNetProfit"`
	ROIPercent      float64         `json:"roiPercent"`
	Payback         finance.Payback `json:"payback"`
	AllocationTotal float64         `json:"allocationTotal"`
	IsValid         bool            `json:"isValid"`
	Crops           []CropMetrics   `json:"crops"`
}

// Engine computes scenario metrics and revenue projections against a fixed
// crop template catalog. The optional cache memoizes projections; passing
// nil disables memoization without changing any computed value.
type Engine struct {
	logger    *zap.Logger
	templates map[string]CropTemplate
	cache     projcache.Cache
}

// NewEngine creates an Engine over the given template catalog.
func NewEngine(logger *zap.Logger, templates map[string]CropTemplate, cache projcache.Cache) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger, templates: templates, cache: cache}
}

// ComputeMetrics resolves each allocation against the template catalog and
// accumulates weighted investment, revenue, and costs into scenario totals.
// Unresolved crop names are expected when the user free-types a name and
// contribute zeros rather than an error.
func (e *Engine) ComputeMetrics(p Portfolio) ScenarioMetrics {
	metrics := ScenarioMetrics{
		Name:            p.Name,
		AllocationTotal: p.AllocationTotal(),
		IsValid:         p.IsValid(),
		Crops:           make([]CropMetrics, 0, len(p.Allocations)),
	}

	for _, alloc := range p.Allocations {
		hectares := alloc.PercentOfLand / constants.PercentageMultiplier * p.TotalHectares
		crop := CropMetrics{CropName: alloc.CropName, Hectares: hectares}

		template, ok := e.templates[alloc.CropName]
		if ok {
			crop.Resolved = true
			crop.Investment = template.Investment.Total() * hectares
			crop.AnnualRevenue = template.ProductionPerHectare * template.BasePrice * hectares
			crop.AnnualCosts = template.FixedCostsPerHectare*hectares +
				template.VariableCostPerUnit*template.ProductionPerHectare*hectares
			crop.AnnualProfit = crop.AnnualRevenue - crop.AnnualCosts
		} else {
			e.logger.Debug(fmt.Sprintf("no crop template named %q, contributing zeros", alloc.CropName),
				zap.String("op", "portfolio.ComputeMetrics"),
			)
		}

		metrics.TotalInvestment += crop.Investment
		metrics.AnnualRevenue += crop.AnnualRevenue
		metrics.AnnualCosts += crop.AnnualCosts
		metrics.Crops = append(metrics.Crops, crop)
	}

	metrics.AnnualProfit = metrics.AnnualRevenue - metrics.AnnualCosts
	metrics.TotalNetProfit = finance.SimpleTotalProfit(metrics.AnnualProfit, p.Years)
	metrics.ROIPercent = finance.ReturnOnInvestment(metrics.TotalNetProfit, metrics.TotalInvestment)
	metrics.Payback = finance.PaybackPeriod(metrics.TotalInvestment, metrics.AnnualProfit)

	return metrics
}

// ProjectRevenue runs the multi-year revenue projection for a portfolio,
// consulting the cache when one is configured. On a cache hit the result's
// maps and slices are shared with the cache, so callers must treat the
// result as read-only.
func (e *Engine) ProjectRevenue(p Portfolio) finance.ProjectionResult {
	key := projcache.NormalizeKey(projectionKey(p))

	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}

	result := finance.ProjectRevenue(e.projectionInputs(p), p.Years)

	if e.cache != nil {
		e.cache.Put(key, result)
	}

	return result
}

// projectionInputs scales each resolved template's per-hectare rates to the
// portfolio's land area. Allocations are sorted by crop name so the cache
// key and computation share one canonical order.
func (e *Engine) projectionInputs(p Portfolio) []finance.CropProjectionInput {
	allocs := sortedAllocations(p)
	inputs := make([]finance.CropProjectionInput, 0, len(allocs))
	for _, alloc := range allocs {
		template, ok := e.templates[alloc.CropName]
		if !ok {
			continue
		}
		inputs = append(inputs, finance.CropProjectionInput{
			Name:              alloc.CropName,
			BaseProduction:    template.ProductionPerHectare * p.TotalHectares,
			BasePrice:         template.BasePrice,
			GrowthRatePct:     template.GrowthRatePct,
			PriceInflationPct: template.PriceInflationPct,
			PercentageWeight:  alloc.PercentOfLand,
		})
	}
	return inputs
}

// projectionKey builds a stable serialization of the projection inputs:
// sorted (crop, percentage) pairs plus years and hectares.
func projectionKey(p Portfolio) string {
	var b strings.Builder
	for _, alloc := range sortedAllocations(p) {
		b.WriteString(alloc.CropName)
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(alloc.PercentOfLand, 'g', -1, 64))
		b.WriteByte('|')
	}
	b.WriteString("y=")
	b.WriteString(strconv.Itoa(p.Years))
	b.WriteString("|ha=")
	b.WriteString(strconv.FormatFloat(p.TotalHectares, 'g', -1, 64))
	return b.String()
}

func sortedAllocations(p Portfolio) []Allocation {
	allocs := make([]Allocation, len(p.Allocations))
	copy(allocs, p.Allocations)
	sort.Slice(allocs, func(i, j int) bool {
		if allocs[i].CropName != allocs[j].CropName {
			return allocs[i].CropName < allocs[j].CropName
		}
		return allocs[i].PercentOfLand < allocs[j].PercentOfLand
	})
	return allocs
}
