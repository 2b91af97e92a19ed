// Package backend abstracts the line-request mechanism of a GPIO chip.
// The engine only depends on the Backend contract; the cdev implementation
// uses the Linux GPIO character device, the periph implementation uses
// periph.io pin handles, and the fake allows testing without hardware.
package backend

import "time"

// Pull selects the internal bias resistor for an input line.
type Pull int

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

func (p Pull) String() string {
	switch p {
	case PullUp:
		return "up"
	case PullDown:
		return "down"
	default:
		return "none"
	}
}

// AlertFunc is invoked from a backend-owned goroutine once per observed
// electrical transition on a registered line. Level is 0 for low, 1 for
// high. The timestamp is monotonic and backend-relative; implementations
// that cannot timestamp events pass the time since backend start.
type AlertFunc func(gpio, level int, timestamp time.Duration)

// Backend is the capability set a GPIO implementation must provide.
//
// After SetAlert registers a non-nil AlertFunc for a line, the backend
// delivers one callback per transition until the line is deregistered or
// Term is called. No callback is ever invoked after Term returns.
// Transient wait/read failures are retried internally and never surface.
type Backend interface {
	// Init opens the underlying chip. Setup failures are returned, never
	// partial success.
	Init() error

	// Term releases all registered lines and closes the chip. Safe to call
	// after a failed Init.
	Term()

	// SetInput configures the line as a digital input.
	SetInput(gpio int) error

	// SetPull applies the bias resistor preference for the line. Backends
	// that cannot apply bias until the line is requested record the
	// preference and apply it on SetAlert.
	SetPull(gpio int, pull Pull) error

	// SetGlitchFilter requests hardware debouncing of the line. A zero
	// period clears the filter. Implementations without hardware support
	// may treat this as a no-op; software debounce happens upstream.
	SetGlitchFilter(gpio int, period time.Duration) error

	// SetAlert registers fn for edge delivery on the line. A nil fn
	// deregisters the line and releases its native resources.
	SetAlert(gpio int, fn AlertFunc) error
}
