package config

import (
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/pageprice/internal/pricing"
)

// MaxTiers bounds catalog size so every tier stays reachable from a single digit key.
const MaxTiers = 9

// Catalog is the YAML document describing the tiers offered by the widget.
type Catalog struct {
	Version        string     `yaml:"version" validate:"required,semver"`
	DefaultTier    int        `yaml:"default_tier,omitempty" validate:"omitempty,min=1"`
	YearlyDiscount *float64   `yaml:"yearly_discount,omitempty" validate:"omitempty,gte=0,lt=100"`
	Tiers          []TierSpec `yaml:"tiers" validate:"required,min=1,dive"`
}

// TierSpec is one catalog entry. Price is kept as text so it reaches
// decimal arithmetic without passing through a float.
type TierSpec struct {
	ID    int    `yaml:"id" validate:"required,min=1"`
	Label string `yaml:"label" validate:"required,max=16"`
	Price string `yaml:"price" validate:"required,price"`
}

// Pricing is a validated catalog resolved into the values the controller needs.
type Pricing struct {
	Table       *pricing.Table
	Multiplier  decimal.Decimal
	InitialTier int
}

// Options returns controller options carrying the multiplier and initial tier.
func (p *Pricing) Options() []pricing.Option {
	return []pricing.Option{
		pricing.WithYearlyMultiplier(p.Multiplier),
		pricing.WithInitialTier(p.InitialTier),
	}
}

// DefaultPricing resolves the built-in catalog: five tiers, 25% yearly
// discount, tier 3 selected.
func DefaultPricing() *Pricing {
	return &Pricing{
		Table:       pricing.DefaultTable(),
		Multiplier:  pricing.DefaultYearlyMultiplier,
		InitialTier: pricing.DefaultTier,
	}
}
