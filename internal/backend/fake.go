package backend

import (
	"sync"
	"time"
)

// Fake is a test double that records configuration calls and lets tests
// inject edges through registered alerts.
type Fake struct {
	// InitErr, if set, is returned by Init.
	InitErr error

	// AlertErrs maps a gpio to an error returned by SetAlert for it.
	AlertErrs map[int]error

	mu          sync.Mutex
	initialized bool
	terminated  bool
	inputs      []int
	pulls       map[int]Pull
	filters     map[int]time.Duration
	alerts      map[int]AlertFunc
}

func NewFake() *Fake {
	return &Fake{
		pulls:   make(map[int]Pull),
		filters: make(map[int]time.Duration),
		alerts:  make(map[int]AlertFunc),
	}
}

func (f *Fake) Init() error {
	if f.InitErr != nil {
		return f.InitErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initialized = true
	f.terminated = false
	return nil
}

func (f *Fake) Term() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = true
	f.alerts = make(map[int]AlertFunc)
}

func (f *Fake) SetInput(gpio int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, gpio)
	return nil
}

func (f *Fake) SetPull(gpio int, pull Pull) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulls[gpio] = pull
	return nil
}

func (f *Fake) SetGlitchFilter(gpio int, period time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters[gpio] = period
	return nil
}

func (f *Fake) SetAlert(gpio int, fn AlertFunc) error {
	if err := f.AlertErrs[gpio]; err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if fn == nil {
		delete(f.alerts, gpio)
		return nil
	}
	f.alerts[gpio] = fn
	return nil
}

// Inject delivers a synthetic edge to the alert registered for the gpio.
// Edges for deregistered lines are dropped, as a terminated backend would.
func (f *Fake) Inject(gpio, level int) {
	f.mu.Lock()
	fn := f.alerts[gpio]
	f.mu.Unlock()
	if fn != nil {
		fn(gpio, level, 0)
	}
}

// Initialized reports whether Init succeeded since the last Term.
func (f *Fake) Initialized() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.initialized && !f.terminated
}

// Terminated reports whether Term has been called.
func (f *Fake) Terminated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.terminated
}

// Registered reports whether an alert is currently registered for the gpio.
func (f *Fake) Registered(gpio int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.alerts[gpio] != nil
}

// Pull returns the recorded bias preference for the gpio.
func (f *Fake) Pull(gpio int) Pull {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pulls[gpio]
}

// GlitchFilter returns the recorded filter period for the gpio.
func (f *Fake) GlitchFilter(gpio int) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters[gpio]
}
