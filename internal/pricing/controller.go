package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/pageprice/internal/logger"
	pperrors "github.com/alexisbeaulieu97/pageprice/pkg/errors"
)

// Surface is the presentation layer the controller writes into: two text
// targets and the discount-active marker.
type Surface interface {
	SetViewCount(label string)
	SetPrice(price string)
	SetDiscountActive(active bool)
}

// RangeInput is a bounded discrete input that reports the new position on change.
type RangeInput interface {
	OnChange(handler func(id int) error)
}

// Trigger is a stateless control that reports each activation.
type Trigger interface {
	OnActivate(handler func())
}

// Display is the text most recently written to the surface.
type Display struct {
	ViewCount      string
	Price          string
	DiscountActive bool
}

// Controller owns the selected tier and billing mode. It is not safe for
// concurrent use; all calls are expected from a single event loop.
type Controller struct {
	table      *Table
	surface    Surface
	multiplier decimal.Decimal
	initial    int
	log        *logger.Logger

	tier    Tier
	yearly  bool
	display Display
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for render and error tracing.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithYearlyMultiplier overrides the multiplier applied under yearly billing.
func WithYearlyMultiplier(multiplier decimal.Decimal) Option {
	return func(c *Controller) {
		c.multiplier = multiplier
	}
}

// WithInitialTier overrides DefaultTier as the starting slider position.
func WithInitialTier(id int) Option {
	return func(c *Controller) {
		c.initial = id
	}
}

// NewController builds a controller in its initial state (initial tier,
// monthly billing) and renders it once. A nil surface is allowed; the
// rendered text is then only visible through CurrentDisplay.
func NewController(table *Table, surface Surface, opts ...Option) (*Controller, error) {
	if table == nil {
		return nil, errors.New("pricing table is required")
	}
	if surface == nil {
		surface = discardSurface{}
	}

	c := &Controller{
		table:      table,
		surface:    surface,
		multiplier: DefaultYearlyMultiplier,
		initial:    DefaultTier,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !c.multiplier.IsPositive() || c.multiplier.GreaterThan(decimal.NewFromInt(1)) {
		return nil, pperrors.NewValidationError("yearly_multiplier", "multiplier must be greater than 0 and at most 1", nil)
	}

	tier, err := table.Lookup(c.initial)
	if err != nil {
		return nil, err
	}
	c.tier = tier
	c.render()

	return c, nil
}

// SetTier selects a new tier and renders. An id outside the table fails with
// InvalidTierError and leaves both state and surface untouched.
func (c *Controller) SetTier(id int) error {
	tier, err := c.table.Lookup(id)
	if err != nil {
		c.log.Error(err, "rejected tier selection", "tier", id)
		return err
	}
	c.tier = tier
	c.render()
	return nil
}

// ToggleBilling flips between monthly and yearly billing and renders.
func (c *Controller) ToggleBilling() {
	c.yearly = !c.yearly
	c.render()
}

// Bind registers SetTier against the slider's change notifications and
// ToggleBilling against the toggle's activations.
func (c *Controller) Bind(slider RangeInput, toggle Trigger) {
	if slider != nil {
		slider.OnChange(c.SetTier)
	}
	if toggle != nil {
		toggle.OnActivate(c.ToggleBilling)
	}
}

// CurrentDisplay returns what the last render wrote to the surface.
func (c *Controller) CurrentDisplay() Display {
	return c.display
}

// SelectedTier returns the id of the selected tier.
func (c *Controller) SelectedTier() int {
	return c.tier.ID
}

// IsYearly reports whether yearly billing is active.
func (c *Controller) IsYearly() bool {
	return c.yearly
}

// Table returns the catalog the controller looks tiers up in.
func (c *Controller) Table() *Table {
	return c.table
}

// render is the only code path that writes to the surface. The discount
// marker is derived from yearly here and nowhere else.
func (c *Controller) render() {
	price := DisplayedPrice(c.tier.BasePrice, c.yearly, c.multiplier)
	c.display = Display{
		ViewCount:      c.tier.Label,
		Price:          FormatPrice(price),
		DiscountActive: c.yearly,
	}

	c.surface.SetViewCount(c.display.ViewCount)
	c.surface.SetPrice(c.display.Price)
	c.surface.SetDiscountActive(c.display.DiscountActive)

	c.log.Debug("rendered pricing", "tier", c.tier.ID, "yearly", c.yearly, "view_count", c.display.ViewCount, "price", c.display.Price)
}

type discardSurface struct{}

func (discardSurface) SetViewCount(string) {}
func (discardSurface) SetPrice(string) {}
func (discardSurface) SetDiscountActive(bool) {}
