package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	pperrors "github.com/alexisbeaulieu97/pageprice/pkg/errors"
)

func TestDefaultTableLookup(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	require.Equal(t, 5, table.Len())
	require.Equal(t, 1, table.Min())
	require.Equal(t, 5, table.Max())

	tests := []struct {
		id    int
		label string
		price int64
	}{
		{1, "10K", 8},
		{2, "50K", 12},
		{3, "100K", 16},
		{4, "500K", 24},
		{5, "1M", 36},
	}

	for _, tt := range tests {
		tier, err := table.Lookup(tt.id)
		require.NoError(t, err)
		require.Equal(t, tt.id, tier.ID)
		require.Equal(t, tt.label, tier.Label)
		require.True(t, tier.BasePrice.Equal(decimal.NewFromInt(tt.price)), "tier %d price %s", tt.id, tier.BasePrice)
	}
}

func TestDefaultTablePricesAreNonDecreasing(t *testing.T) {
	t.Parallel()

	tiers := DefaultTable().Tiers()
	for i := 1; i < len(tiers); i++ {
		require.False(t, tiers[i].BasePrice.LessThan(tiers[i-1].BasePrice), "tier %d is cheaper than tier %d", tiers[i].ID, tiers[i-1].ID)
	}
}

func TestLookupRejectsOutOfRangeIDs(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	for _, id := range []int{-1, 0, 6, 100} {
		_, err := table.Lookup(id)
		var tierErr *pperrors.InvalidTierError
		require.ErrorAs(t, err, &tierErr)
		require.Equal(t, id, tierErr.ID)
		require.ErrorIs(t, err, pperrors.ErrInvalidTier)
	}
}

func TestTiersReturnsCopy(t *testing.T) {
	t.Parallel()

	table := DefaultTable()
	tiers := table.Tiers()
	tiers[0].Label = "changed"

	tier, err := table.Lookup(1)
	require.NoError(t, err)
	require.Equal(t, "10K", tier.Label)
}

func TestNewTableSortsByID(t *testing.T) {
	t.Parallel()

	table, err := NewTable([]Tier{
		{ID: 2, Label: "big", BasePrice: decimal.NewFromInt(20)},
		{ID: 1, Label: "small", BasePrice: decimal.NewFromInt(10)},
	})
	require.NoError(t, err)

	tier, err := table.Lookup(1)
	require.NoError(t, err)
	require.Equal(t, "small", tier.Label)
	require.Equal(t, 2, table.Max())
}

func TestNewTableValidation(t *testing.T) {
	t.Parallel()

	price := decimal.NewFromInt

	tests := []struct {
		name    string
		tiers   []Tier
		field   string
		message string
	}{
		{
			name:    "empty",
			tiers:   nil,
			field:   "tiers",
			message: "at least one tier",
		},
		{
			name:    "not starting at one",
			tiers:   []Tier{{ID: 2, Label: "a", BasePrice: price(1)}},
			field:   "tiers[0].id",
			message: "contiguous",
		},
		{
			name:    "gap",
			tiers:   []Tier{{ID: 1, Label: "a", BasePrice: price(1)}, {ID: 3, Label: "b", BasePrice: price(2)}},
			field:   "tiers[1].id",
			message: "contiguous",
		},
		{
			name:    "duplicate",
			tiers:   []Tier{{ID: 1, Label: "a", BasePrice: price(1)}, {ID: 1, Label: "b", BasePrice: price(2)}},
			field:   "tiers[1].id",
			message: "duplicate tier id 1",
		},
		{
			name:    "blank label",
			tiers:   []Tier{{ID: 1, Label: "  ", BasePrice: price(1)}},
			field:   "tiers[0].label",
			message: "label is required",
		},
		{
			name:    "negative price",
			tiers:   []Tier{{ID: 1, Label: "a", BasePrice: price(-1)}},
			field:   "tiers[0].price",
			message: "negative",
		},
		{
			name:    "decreasing price",
			tiers:   []Tier{{ID: 1, Label: "a", BasePrice: price(5)}, {ID: 2, Label: "b", BasePrice: price(4)}},
			field:   "tiers[1].price",
			message: "lower than tier 1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewTable(tt.tiers)
			var validationErr *pperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
			require.Contains(t, validationErr.Message, tt.message)
		})
	}
}

func TestNewTableAllowsEqualPrices(t *testing.T) {
	t.Parallel()

	_, err := NewTable([]Tier{
		{ID: 1, Label: "a", BasePrice: decimal.NewFromInt(5)},
		{ID: 2, Label: "b", BasePrice: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)
}
