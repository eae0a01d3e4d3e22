package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const testConfigYAML = `
logging:
  level: debug
  format: console

output:
  format: csv

portfolios:
  - name: rotation
    totalHectares: 120
    years: 5
    allocations:
      - crop: maize
        percent: 60
      - crop: soybeans
        percent: 40

loan:
  principal: 200000
  annualRatePct: 11.5
  termYears: 5

costs:
  - category: labor
    kind: fixed
    month: 1
    amount: 18000
  - category: fertilizer
    kind: variable
    month: 3
    crop: maize
    amount: 12000

fertility:
  crops: [maize, soybeans]
  soilType: sandy loam
  yieldTargets:
    maize: "6.5"

crops:
  - name: dragonfruit
    productionPerHectare: 12
    basePrice: 9000
    fixedCostsPerHectare: 20000
    variableCostPerUnit: 1500
    landPreparation: 10000
    infrastructure: 40000
    equipment: 15000
    inputs: 12000
    workingCapital: 9000
    yearsToMaturity: 2
    waterNeeds: medium
    profitability: high
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	conf, err := LoadConfiguration(writeTestConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if conf.Logging.Level != "debug" || conf.Output.Format != "csv" {
		t.Errorf("logging/output = %+v / %+v", conf.Logging, conf.Output)
	}

	if len(conf.Portfolios) != 1 {
		t.Fatalf("len(Portfolios) = %d, expected 1", len(conf.Portfolios))
	}
	p := conf.Portfolios[0]
	if p.Name != "rotation" || p.TotalHectares != 120 || p.Years != 5 || len(p.Allocations) != 2 {
		t.Errorf("portfolio = %+v", p)
	}

	if conf.Loan == nil || conf.Loan.Principal != 200000 {
		t.Errorf("loan = %+v", conf.Loan)
	}

	if len(conf.Fertility.Crops) != 2 || conf.Fertility.YieldTargets["maize"] != "6.5" {
		t.Errorf("fertility = %+v", conf.Fertility)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadConfiguration() expected an error for a missing file")
	}
}

func TestTemplatesMerge(t *testing.T) {
	conf, err := LoadConfiguration(writeTestConfig(t, testConfigYAML))
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	templates := conf.Templates()

	// Static catalog crops survive the merge.
	if _, ok := templates["maize"]; !ok {
		t.Error("maize missing from merged templates")
	}

	// Config-declared crops are added.
	dragonfruit, ok := templates["dragonfruit"]
	if !ok {
		t.Fatal("dragonfruit missing from merged templates")
	}
	if dragonfruit.Investment.Total() != 86000 {
		t.Errorf("dragonfruit investment total = %.2f, expected 86000", dragonfruit.Investment.Total())
	}
}

func TestDefaultCropTemplates(t *testing.T) {
	templates := DefaultCropTemplates()

	for _, name := range []string{"maize", "wheat", "soybeans", "potatoes", "macadamia"} {
		template, ok := templates[name]
		if !ok {
			t.Errorf("catalog is missing %s", name)
			continue
		}
		if template.ProductionPerHectare <= 0 || template.BasePrice <= 0 {
			t.Errorf("%s has non-positive economics: %+v", name, template)
		}
		if template.Investment.Total() <= 0 {
			t.Errorf("%s has no investment breakdown", name)
		}
	}
}

func TestLoadReferenceData(t *testing.T) {
	// An empty path yields the static fallback tables.
	ref, err := LoadReferenceData("")
	if err != nil {
		t.Fatalf("LoadReferenceData(\"\") error = %v", err)
	}
	if len(ref.RemovalRates) == 0 || len(ref.NitrogenPrograms) == 0 {
		t.Error("fallback reference data is empty")
	}

	// A YAML bundle is a valid instance of the same shape.
	path := filepath.Join(t.TempDir(), "reference.yaml")
	content := `
removalRates:
  quinoa:
    p2o5PerUnit: 11.5
    k2oPerUnit: 9.0
    boronPerUnit: 0.02
nitrogenPrograms:
  quinoa-to-maize: "minimal residue credit"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write reference data: %v", err)
	}

	loaded, err := LoadReferenceData(path)
	if err != nil {
		t.Fatalf("LoadReferenceData() error = %v", err)
	}
	rate, ok := loaded.RemovalRates["quinoa"]
	if !ok || rate.P2O5PerUnit != 11.5 {
		t.Errorf("quinoa rate = %+v, %v", rate, ok)
	}
	if rate.BoronPerUnit == nil || *rate.BoronPerUnit != 0.02 {
		t.Errorf("quinoa boron = %v, expected 0.02", rate.BoronPerUnit)
	}
	if rate.SulfurPerUnit != nil {
		t.Error("quinoa sulfur present, expected nil for an undeclared optional field")
	}
}
