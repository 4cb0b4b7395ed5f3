// Package pricing holds the tier catalog and the controller that turns the
// selected tier and billing mode into displayed text.
package pricing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	pperrors "github.com/alexisbeaulieu97/pageprice/pkg/errors"
)

// DefaultTier is the slider position selected before any interaction.
const DefaultTier = 3

// Tier is one pageview bracket with its base monthly price.
type Tier struct {
	ID        int
	Label     string
	BasePrice decimal.Decimal
}

// Table is an immutable lookup of tiers keyed by contiguous ids starting at 1.
type Table struct {
	tiers []Tier
}

// NewTable validates tiers and builds a Table. Input order does not matter;
// ids must be contiguous from 1, labels non-empty and prices non-negative and
// non-decreasing with id.
func NewTable(tiers []Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, pperrors.NewValidationError("tiers", "at least one tier is required", nil)
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	for i, tier := range sorted {
		field := fmt.Sprintf("tiers[%d]", i)
		if i > 0 && tier.ID == sorted[i-1].ID {
			return nil, pperrors.NewValidationError(field+".id", fmt.Sprintf("duplicate tier id %d", tier.ID), nil)
		}
		if tier.ID != i+1 {
			return nil, pperrors.NewValidationError(field+".id", fmt.Sprintf("expected tier id %d, got %d (ids must be contiguous from 1)", i+1, tier.ID), nil)
		}
		if strings.TrimSpace(tier.Label) == "" {
			return nil, pperrors.NewValidationError(field+".label", "label is required", nil)
		}
		if tier.BasePrice.IsNegative() {
			return nil, pperrors.NewValidationError(field+".price", "price must not be negative", nil)
		}
		if i > 0 && tier.BasePrice.LessThan(sorted[i-1].BasePrice) {
			return nil, pperrors.NewValidationError(field+".price", fmt.Sprintf("price %s is lower than tier %d price %s", tier.BasePrice, sorted[i-1].ID, sorted[i-1].BasePrice), nil)
		}
	}

	return &Table{tiers: sorted}, nil
}

// DefaultTable returns the built-in five tier catalog.
func DefaultTable() *Table {
	return &Table{tiers: []Tier{
		{ID: 1, Label: "10K", BasePrice: decimal.NewFromInt(8)},
		{ID: 2, Label: "50K", BasePrice: decimal.NewFromInt(12)},
		{ID: 3, Label: "100K", BasePrice: decimal.NewFromInt(16)},
		{ID: 4, Label: "500K", BasePrice: decimal.NewFromInt(24)},
		{ID: 5, Label: "1M", BasePrice: decimal.NewFromInt(36)},
	}}
}

// Lookup returns the tier with the given id. Ids outside [Min, Max] fail with
// an InvalidTierError; they are never clamped.
func (t *Table) Lookup(id int) (Tier, error) {
	if id < t.Min() || id > t.Max() {
		return Tier{}, pperrors.NewInvalidTierError(id, t.Min(), t.Max())
	}
	return t.tiers[id-1], nil
}

// Tiers returns a copy of all tiers in id order.
func (t *Table) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	copy(out, t.tiers)
	return out
}

// Len returns the number of tiers.
func (t *Table) Len() int {
	return len(t.tiers)
}

// Min returns the lowest valid tier id.
func (t *Table) Min() int {
	return 1
}

// Max returns the highest valid tier id.
func (t *Table) Max() int {
	return len(t.tiers)
}
