package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/alexisbeaulieu97/pageprice/internal/config"
	"github.com/alexisbeaulieu97/pageprice/internal/logger"
	"github.com/alexisbeaulieu97/pageprice/internal/pricing"
	"github.com/alexisbeaulieu97/pageprice/internal/tui/components"
)

// board is the display surface the controller renders into. View reads it
// and nothing else writes it.
type board struct {
	viewCount      string
	price          string
	discountActive bool
}

func (b *board) SetViewCount(label string) { b.viewCount = label }
func (b *board) SetPrice(price string) { b.price = price }
func (b *board) SetDiscountActive(active bool) { b.discountActive = active }

// Model is the Bubbletea program hosting the pricing widget.
type Model struct {
	controller *pricing.Controller
	board      *board
	slider     *components.Slider
	toggle     *components.Toggle
	log        *logger.Logger

	keys     keyMap
	help     help.Model
	discount string

	width    int
	err      error
	quitting bool
}

// NewModel builds the widget for a resolved catalog and binds the
// controller's operations to the slider and toggle.
func NewModel(p *config.Pricing, log *logger.Logger) (Model, error) {
	if p == nil || p.Table == nil {
		return Model{}, errors.New("pricing catalog is required")
	}

	b := &board{}
	opts := append(p.Options(), pricing.WithLogger(log))
	controller, err := pricing.NewController(p.Table, b, opts...)
	if err != nil {
		return Model{}, err
	}

	slider := components.NewSlider(p.Table.Min(), p.Table.Max())
	toggle := components.NewToggle("Monthly", "Yearly")
	controller.Bind(slider, toggle)

	return Model{
		controller: controller,
		board:      b,
		slider:     slider,
		toggle:     toggle,
		log:        log,
		keys:       defaultKeyMap(),
		help:       help.New(),
		discount:   discountLabel(p.Multiplier),
	}, nil
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Err returns the error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Controller exposes the pricing controller driving the widget.
func (m Model) Controller() *pricing.Controller {
	return m.controller
}

func discountLabel(multiplier decimal.Decimal) string {
	return "-" + pricing.DiscountPercent(multiplier).String() + "%"
}
