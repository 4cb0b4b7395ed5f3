package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Slider is a bounded discrete range input. It does not store a position of
// its own: callers pass the current value in and receive change
// notifications through the registered handler.
type Slider struct {
	min      int
	max      int
	onChange func(int) error
	bar      progress.Model
}

// NewSlider creates a slider accepting integers in [min, max].
func NewSlider(min, max int) *Slider {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return &Slider{min: min, max: max, bar: bar}
}

// OnChange registers the handler invoked with each new value.
func (s *Slider) OnChange(handler func(int) error) {
	s.onChange = handler
}

// Contains reports whether value lies within the slider's bounds.
func (s *Slider) Contains(value int) bool {
	return value >= s.min && value <= s.max
}

// Set notifies the handler of value. Values outside the bounds are ignored,
// the way a range input never emits them.
func (s *Slider) Set(value int) error {
	if !s.Contains(value) || s.onChange == nil {
		return nil
	}
	return s.onChange(value)
}

// Step moves delta positions from current, stopping at the bounds. Nothing is
// emitted when the position would not change.
func (s *Slider) Step(current, delta int) error {
	next := current + delta
	if next < s.min {
		next = s.min
	}
	if next > s.max {
		next = s.max
	}
	if next == current {
		return nil
	}
	return s.Set(next)
}

// SetWidth resizes the track.
func (s *Slider) SetWidth(width int) {
	if width > 0 {
		s.bar.Width = width
	}
}

// View renders the track filled up to value.
func (s *Slider) View(value int) string {
	ratio := 1.0
	if s.max > s.min {
		ratio = float64(value-s.min) / float64(s.max-s.min)
	}
	if ratio < 0 {
		ratio = 0
	}
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", value, s.max))
	return lipgloss.JoinHorizontal(lipgloss.Left, s.bar.ViewAs(ratio), " ", label)
}
