package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/pageprice/internal/pricing"
	pperrors "github.com/alexisbeaulieu97/pageprice/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// LoadCatalog reads a catalog file from disk, validates it and resolves it.
func LoadCatalog(path string) (*Pricing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pperrors.NewParseError(path, 0, err)
	}

	catalog, err := ParseCatalog(path, data)
	if err != nil {
		return nil, err
	}

	return catalog.Build()
}

// ParseCatalog decodes and validates catalog YAML. source names the document in errors.
func ParseCatalog(source string, data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, pperrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateCatalog(&catalog); err != nil {
		return nil, err
	}

	return &catalog, nil
}

// Build converts a validated catalog into a tier table, yearly multiplier and
// initial tier. An omitted default tier falls back to pricing.DefaultTier, or
// the last tier when the catalog is shorter than that.
func (c *Catalog) Build() (*Pricing, error) {
	tiers := make([]pricing.Tier, 0, len(c.Tiers))
	for i, spec := range c.Tiers {
		price, err := decimal.NewFromString(strings.TrimSpace(spec.Price))
		if err != nil {
			return nil, pperrors.NewValidationError(fmt.Sprintf("tiers[%d].price", i), "price is not a decimal number", err)
		}
		tiers = append(tiers, pricing.Tier{ID: spec.ID, Label: spec.Label, BasePrice: price})
	}

	table, err := pricing.NewTable(tiers)
	if err != nil {
		return nil, err
	}

	multiplier := pricing.DefaultYearlyMultiplier
	if c.YearlyDiscount != nil {
		multiplier, err = pricing.MultiplierFromDiscount(decimal.NewFromFloat(*c.YearlyDiscount))
		if err != nil {
			return nil, err
		}
	}

	initial := c.DefaultTier
	if initial == 0 {
		initial = pricing.DefaultTier
		if initial > table.Max() {
			initial = table.Max()
		}
	}

	return &Pricing{Table: table, Multiplier: multiplier, InitialTier: initial}, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
