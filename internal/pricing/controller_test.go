package pricing

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/pageprice/internal/logger"
	pperrors "github.com/alexisbeaulieu97/pageprice/pkg/errors"
)

type recordingSurface struct {
	viewCount string
	price     string
	active    bool
	writes    int
}

func (s *recordingSurface) SetViewCount(label string) {
	s.viewCount = label
	s.writes++
}

func (s *recordingSurface) SetPrice(price string) {
	s.price = price
	s.writes++
}

func (s *recordingSurface) SetDiscountActive(active bool) {
	s.active = active
	s.writes++
}

type fakeSlider struct {
	handler func(int) error
}

func (f *fakeSlider) OnChange(handler func(int) error) { f.handler = handler }

type fakeToggle struct {
	handler func()
}

func (f *fakeToggle) OnActivate(handler func()) { f.handler = handler }

func newTestController(t *testing.T, opts ...Option) (*Controller, *recordingSurface) {
	t.Helper()
	surface := &recordingSurface{}
	c, err := NewController(DefaultTable(), surface, opts...)
	require.NoError(t, err)
	return c, surface
}

func TestNewControllerRendersInitialState(t *testing.T) {
	t.Parallel()

	c, surface := newTestController(t)

	require.Equal(t, 3, c.SelectedTier())
	require.False(t, c.IsYearly())
	require.Equal(t, Display{ViewCount: "100K", Price: "$16", DiscountActive: false}, c.CurrentDisplay())
	require.Equal(t, "100K", surface.viewCount)
	require.Equal(t, "$16", surface.price)
	require.False(t, surface.active)
	require.Equal(t, 3, surface.writes)
}

func TestNewControllerValidatesInputs(t *testing.T) {
	t.Parallel()

	_, err := NewController(nil, nil)
	require.Error(t, err)

	_, err = NewController(DefaultTable(), nil, WithInitialTier(9))
	require.ErrorIs(t, err, pperrors.ErrInvalidTier)

	_, err = NewController(DefaultTable(), nil, WithYearlyMultiplier(decimal.Zero))
	var validationErr *pperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	_, err = NewController(DefaultTable(), nil, WithYearlyMultiplier(decimal.RequireFromString("1.5")))
	require.ErrorAs(t, err, &validationErr)
}

func TestNewControllerWithoutSurface(t *testing.T) {
	t.Parallel()

	c, err := NewController(DefaultTable(), nil, WithInitialTier(1))
	require.NoError(t, err)
	c.ToggleBilling()
	require.Equal(t, Display{ViewCount: "10K", Price: "$6", DiscountActive: true}, c.CurrentDisplay())
}

func TestBoundaryTiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id      int
		label   string
		monthly string
		yearly  string
	}{
		{1, "10K", "$8", "$6"},
		{2, "50K", "$12", "$9"},
		{3, "100K", "$16", "$12"},
		{4, "500K", "$24", "$18"},
		{5, "1M", "$36", "$27"},
	}

	for _, tt := range tests {
		c, surface := newTestController(t)

		require.NoError(t, c.SetTier(tt.id))
		require.Equal(t, tt.label, surface.viewCount)
		require.Equal(t, tt.monthly, surface.price)

		c.ToggleBilling()
		require.Equal(t, tt.label, surface.viewCount)
		require.Equal(t, tt.yearly, surface.price)
		require.True(t, surface.active)
	}
}

func TestSetTierRejectsInvalidIDsWithoutRendering(t *testing.T) {
	t.Parallel()

	for _, id := range []int{0, 6} {
		c, surface := newTestController(t)
		require.NoError(t, c.SetTier(4))
		before := c.CurrentDisplay()
		writes := surface.writes

		err := c.SetTier(id)
		var tierErr *pperrors.InvalidTierError
		require.ErrorAs(t, err, &tierErr)
		require.Equal(t, id, tierErr.ID)

		require.Equal(t, 4, c.SelectedTier())
		require.Equal(t, before, c.CurrentDisplay())
		require.Equal(t, writes, surface.writes, "invalid tier must not trigger a render")
	}
}

func TestToggleBillingTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	for id := 1; id <= 5; id++ {
		c, _ := newTestController(t)
		require.NoError(t, c.SetTier(id))
		before := c.CurrentDisplay()

		c.ToggleBilling()
		require.True(t, c.IsYearly())
		c.ToggleBilling()

		require.False(t, c.IsYearly())
		require.Equal(t, before, c.CurrentDisplay())
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	c, surface := newTestController(t)
	c.ToggleBilling()

	first := c.CurrentDisplay()
	c.render()
	require.Equal(t, first, c.CurrentDisplay())
	require.Equal(t, first.ViewCount, surface.viewCount)
	require.Equal(t, first.Price, surface.price)
}

func TestDiscountMarkerFollowsBillingMode(t *testing.T) {
	t.Parallel()

	c, surface := newTestController(t)
	for i := 0; i < 4; i++ {
		c.ToggleBilling()
		require.Equal(t, c.IsYearly(), surface.active)
		require.Equal(t, c.IsYearly(), c.CurrentDisplay().DiscountActive)
	}
}

func TestAllStatesReachable(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t)
	seen := make(map[Display]struct{})
	for _, yearly := range []bool{false, true} {
		if c.IsYearly() != yearly {
			c.ToggleBilling()
		}
		for id := 1; id <= 5; id++ {
			require.NoError(t, c.SetTier(id))
			require.Equal(t, id, c.SelectedTier())
			require.Equal(t, yearly, c.IsYearly())
			seen[c.CurrentDisplay()] = struct{}{}
		}
	}
	require.Len(t, seen, 10)
}

func TestEndToEndScenario(t *testing.T) {
	t.Parallel()

	c, surface := newTestController(t)
	require.Equal(t, "100K", surface.viewCount)
	require.Equal(t, "$16", surface.price)

	require.NoError(t, c.SetTier(4))
	require.Equal(t, "500K", surface.viewCount)
	require.Equal(t, "$24", surface.price)

	c.ToggleBilling()
	require.Equal(t, "500K", surface.viewCount)
	require.Equal(t, "$18", surface.price)

	require.NoError(t, c.SetTier(2))
	require.Equal(t, "50K", surface.viewCount)
	require.Equal(t, "$9", surface.price)
	require.True(t, surface.active)
}

func TestBindRegistersOperations(t *testing.T) {
	t.Parallel()

	c, surface := newTestController(t)
	slider := &fakeSlider{}
	toggle := &fakeToggle{}
	c.Bind(slider, toggle)

	require.NotNil(t, slider.handler)
	require.NotNil(t, toggle.handler)

	require.NoError(t, slider.handler(5))
	require.Equal(t, "1M", surface.viewCount)

	toggle.handler()
	require.Equal(t, "$27", surface.price)

	require.ErrorIs(t, slider.handler(0), pperrors.ErrInvalidTier)
	require.Equal(t, 5, c.SelectedTier())

	require.NotPanics(t, func() { c.Bind(nil, nil) })
}

func TestCustomMultiplierRoundsPrices(t *testing.T) {
	t.Parallel()

	table, err := NewTable([]Tier{
		{ID: 1, Label: "starter", BasePrice: decimal.RequireFromString("9.99")},
		{ID: 2, Label: "pro", BasePrice: decimal.RequireFromString("19.99")},
	})
	require.NoError(t, err)

	multiplier, err := MultiplierFromDiscount(decimal.NewFromInt(20))
	require.NoError(t, err)

	c, err := NewController(table, nil, WithInitialTier(1), WithYearlyMultiplier(multiplier))
	require.NoError(t, err)
	require.Equal(t, "$9.99", c.CurrentDisplay().Price)

	c.ToggleBilling()
	require.Equal(t, "$7.99", c.CurrentDisplay().Price)

	require.NoError(t, c.SetTier(2))
	require.Equal(t, "$15.99", c.CurrentDisplay().Price)
}

func TestControllerLogsRejectedTier(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	c, err := NewController(DefaultTable(), nil, WithLogger(log))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "rendered pricing")

	require.Error(t, c.SetTier(7))
	require.Contains(t, buf.String(), "rejected tier selection")
}
