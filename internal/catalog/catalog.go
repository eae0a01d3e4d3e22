// Package catalog defines the planning configuration, loads it from YAML,
// and supplies the static reference catalogs (crop templates and fertility
// tables) that stand in when no database-backed data is provided.
package catalog

import (
	"fmt"
	"os"

	"github.com/agrifin/agriplan/pkg/fertility"
	"github.com/agrifin/agriplan/pkg/finance"
	"github.com/agrifin/agriplan/pkg/portfolio"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for agriplan.
type Configuration struct {
	Logging    LoggingConfig     `yaml:"logging,omitempty"`
	Output     OutputConfig      `yaml:"output,omitempty"`
	Portfolios []PortfolioConfig `yaml:"portfolios"`
	Loan       *LoanConfig       `yaml:"loan,omitempty"`
	BreakEven  *BreakEvenConfig  `yaml:"breakEven,omitempty"`
	Costs      []CostEntryConfig `yaml:"costs,omitempty"`
	Fertility  FertilityConfig   `yaml:"fertility,omitempty"`
	Crops      []CropConfig      `yaml:"crops,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// PortfolioConfig describes one scenario to compute and compare.
type PortfolioConfig struct {
	Name          string             `yaml:"name"`
	TotalHectares float64            `yaml:"totalHectares"`
	Years         int                `yaml:"years"`
	Allocations   []AllocationConfig `yaml:"allocations"`
}

// AllocationConfig assigns a land percentage to a crop.
type AllocationConfig struct {
	Crop    string  `yaml:"crop"`
	Percent float64 `yaml:"percent"`
}

// LoanConfig holds the loan calculator inputs.
type LoanConfig struct {
	Principal     float64 `yaml:"principal"`
	AnnualRatePct float64 `yaml:"annualRatePct"`
	TermYears     int     `yaml:"termYears"`
}

// BreakEvenConfig holds the break-even calculator inputs.
type BreakEvenConfig struct {
	FixedCosts          float64 `yaml:"fixedCosts"`
	VariableCostPerUnit float64 `yaml:"variableCostPerUnit"`
	SellingPricePerUnit float64 `yaml:"sellingPricePerUnit"`
	ExpectedUnits       float64 `yaml:"expectedUnits"`
}

// CostEntryConfig is one operating-cost line item.
type CostEntryConfig struct {
	Category string  `yaml:"category"`
	Kind     string  `yaml:"kind"` // fixed, variable
	Month    int     `yaml:"month"`
	Crop     string  `yaml:"crop,omitempty"`
	Amount   float64 `yaml:"amount"`
}

// FertilityConfig holds the advisory generator inputs. ReferenceFile
// optionally points at a YAML reference-data bundle; when empty the static
// fallback tables are used.
type FertilityConfig struct {
	Crops         []string           `yaml:"crops,omitempty"`
	SoilType      string             `yaml:"soilType,omitempty"`
	YieldTargets  map[string]string  `yaml:"yieldTargets,omitempty"`
	SoilTests     map[string]float64 `yaml:"soilTests,omitempty"`
	ReferenceFile string             `yaml:"referenceFile,omitempty"`
}

// CropConfig mirrors portfolio.CropTemplate for configuration files. Crops
// declared here are merged over the static catalog, so a config can add new
// crops or override the defaults.
type CropConfig struct {
	Name                 string  `yaml:"name"`
	ProductionPerHectare float64 `yaml:"productionPerHectare"`
	BasePrice            float64 `yaml:"basePrice"`
	GrowthRatePct        float64 `yaml:"growthRatePct"`
	PriceInflationPct    float64 `yaml:"priceInflationPct"`
	FixedCostsPerHectare float64 `yaml:"fixedCostsPerHectare"`
	VariableCostPerUnit  float64 `yaml:"variableCostPerUnit"`
	LandPreparation      float64 `yaml:"landPreparation"`
	Infrastructure       float64 `yaml:"infrastructure"`
	Equipment            float64 `yaml:"equipment"`
	Inputs               float64 `yaml:"inputs"`
	WorkingCapital       float64 `yaml:"workingCapital"`
	YearsToMaturity      int     `yaml:"yearsToMaturity"`
	WaterNeeds           string  `yaml:"waterNeeds"`
	Profitability        string  `yaml:"profitability"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Templates merges the configuration's crop declarations over the static
// catalog and returns the combined lookup.
func (conf *Configuration) Templates() map[string]portfolio.CropTemplate {
	templates := DefaultCropTemplates()
	for _, crop := range conf.Crops {
		templates[crop.Name] = portfolio.CropTemplate{
			Name:                 crop.Name,
			ProductionPerHectare: crop.ProductionPerHectare,
			BasePrice:            crop.BasePrice,
			GrowthRatePct:        crop.GrowthRatePct,
			PriceInflationPct:    crop.PriceInflationPct,
			FixedCostsPerHectare: crop.FixedCostsPerHectare,
			VariableCostPerUnit:  crop.VariableCostPerUnit,
			Investment: portfolio.InvestmentBreakdown{
				LandPreparation: crop.LandPreparation,
				Infrastructure:  crop.Infrastructure,
				Equipment:       crop.Equipment,
				Inputs:          crop.Inputs,
				WorkingCapital:  crop.WorkingCapital,
			},
			YearsToMaturity: crop.YearsToMaturity,
			WaterNeeds:      crop.WaterNeeds,
			Profitability:   crop.Profitability,
		}
	}
	return templates
}

// PortfolioList converts the configured portfolios into engine inputs.
func (conf *Configuration) PortfolioList() []portfolio.Portfolio {
	portfolios := make([]portfolio.Portfolio, 0, len(conf.Portfolios))
	for _, pc := range conf.Portfolios {
		p := portfolio.Portfolio{
			Name:          pc.Name,
			TotalHectares: pc.TotalHectares,
			Years:         pc.Years,
			Allocations:   make([]portfolio.Allocation, 0, len(pc.Allocations)),
		}
		for _, ac := range pc.Allocations {
			p.Allocations = append(p.Allocations, portfolio.Allocation{
				CropName:      ac.Crop,
				PercentOfLand: ac.Percent,
			})
		}
		portfolios = append(portfolios, p)
	}
	return portfolios
}

// CostEntries converts the configured cost line items.
func (conf *Configuration) CostEntries() []finance.CostEntry {
	entries := make([]finance.CostEntry, 0, len(conf.Costs))
	for _, cc := range conf.Costs {
		kind := finance.FixedCost
		if cc.Kind == string(finance.VariableCost) {
			kind = finance.VariableCost
		}
		entries = append(entries, finance.CostEntry{
			Category: cc.Category,
			Kind:     kind,
			Month:    cc.Month,
			Crop:     cc.Crop,
			Amount:   cc.Amount,
		})
	}
	return entries
}

// FertilityRequest converts the configured advisory inputs.
func (conf *Configuration) FertilityRequest() fertility.Request {
	return fertility.Request{
		Crops:        conf.Fertility.Crops,
		SoilTests:    conf.Fertility.SoilTests,
		YieldTargets: conf.Fertility.YieldTargets,
		SoilType:     conf.Fertility.SoilType,
	}
}

// LoadReferenceData reads a fertility reference-data bundle from a YAML
// file. An empty path returns the static fallback tables, which are a valid
// instance of the same shape.
func LoadReferenceData(path string) (fertility.ReferenceData, error) {
	if path == "" {
		return DefaultReferenceData(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fertility.ReferenceData{}, fmt.Errorf("error reading reference data file, %s", err)
	}

	var ref fertility.ReferenceData
	if err := yaml.Unmarshal(raw, &ref); err != nil {
		return fertility.ReferenceData{}, fmt.Errorf("unable to decode reference data, %s", err)
	}

	return ref, nil
}
