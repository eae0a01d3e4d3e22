// Package constants provides shared constants for the agriplan application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// FullAllocation is the percentage sum a valid portfolio's allocations
	// must reach.
	FullAllocation = 100.0

	// AllocationTolerance is the tolerance applied when comparing a
	// portfolio's allocation sum against FullAllocation.
	AllocationTolerance = 1e-9

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Projection cache constants
const (
	// DefaultProjectionCacheSize is the default maximum entry count for the
	// projection memoization cache.
	DefaultProjectionCacheSize = 64

	// MaxProjectionKeyLength is the raw key length beyond which cache keys
	// are hashed to bound key size.
	MaxProjectionKeyLength = 96
)

// Advisory sentinel strings
const (
	// YieldTargetNeeded is reported for a nutrient removal estimate when no
	// numeric yield target was supplied.
	YieldTargetNeeded = "yield target needed"

	// StandardRotationGuidance is substituted when no transition guidance
	// exists for an adjacent crop pair.
	StandardRotationGuidance = "standard rotation practices apply"

	// AllCrops tags a cost entry that is not owned by a single crop.
	AllCrops = "all crops"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)
