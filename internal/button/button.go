// Package button debounces momentary switches on GPIO lines and classifies
// their activity into logical events.
package button

import (
	"time"

	"github.com/callebjorkell/keypad/internal/backend"
	"github.com/jonboulle/clockwork"
)

// Event classifies activity on a single line.
type Event int

const (
	// Press is the debounced physical press.
	Press Event = iota + 1
	// Release is the debounced physical release.
	Release
	// Click follows Release when the press stayed under the hold threshold.
	Click
	// Hold fires once when a press is sustained past the hold threshold.
	Hold
	// Repeat recurs at the repeat interval while a hold continues.
	Repeat
)

func (e Event) String() string {
	switch e {
	case Press:
		return "pressed"
	case Release:
		return "released"
	case Click:
		return "clicked"
	case Hold:
		return "held"
	case Repeat:
		return "repeated"
	default:
		return "unknown"
	}
}

// Pin describes one button input. The position of a pin in Config.Pins is
// its stable index in all emitted events.
type Pin struct {
	// GPIO is the line offset on the chip.
	GPIO int
	// ActiveLow marks a button wired to ground, where a press reads low.
	ActiveLow bool
	// Pull enables the internal bias resistor, pulled up for active-low
	// buttons and down otherwise.
	Pull bool
}

// Config is copied into the engine at creation and immutable afterwards.
type Config struct {
	Pins []Pin

	// Debounce suppresses edges arriving within the interval of the last
	// accepted one. 8-20ms works for most switches.
	Debounce time.Duration
	// Hold is the duration at which a sustained press becomes a Hold.
	Hold time.Duration
	// Repeat is the interval for Repeat events after Hold; zero disables.
	Repeat time.Duration
	// Poll is the sweep interval for hold/repeat detection, 10ms when zero.
	Poll time.Duration

	// OnEvent receives every classified event with the pin index and gpio.
	// Calls for a line are strictly ordered and never concurrent with each
	// other; the callback must not block and must not call back into the
	// engine.
	OnEvent func(ev Event, index, gpio int)

	// Backend delivers raw edges and owns the native line handles.
	Backend backend.Backend

	// Clock defaults to the wall clock; tests inject a fake.
	Clock clockwork.Clock
}
