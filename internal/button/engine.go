package button

import (
	"fmt"
	"sync"
	"time"

	"github.com/callebjorkell/keypad/internal/backend"
	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPoll     = 10 * time.Millisecond
	defaultDebounce = 10 * time.Millisecond
)

// lineState holds the debounced state of one configured pin. It is only
// touched with the engine mutex held: both the backend delivery goroutines
// and the sweep goroutine go through it.
type lineState struct {
	gpio       int
	activeLow  bool
	pressed    bool
	lastEdge   time.Time
	pressedAt  time.Time
	holdFired  bool
	lastRepeat time.Time
}

// Engine consumes raw edges from the backend, debounces them per line and
// emits classified events to the configured callback. A periodic sweep
// detects holds and repeats independently of edge arrival.
type Engine struct {
	cfg    Config
	clock  clockwork.Clock
	byGPIO map[int]int

	mu    sync.Mutex
	lines []lineState

	done chan struct{}
	wg   sync.WaitGroup
}

// New configures every pin on the backend, registers edge delivery and
// starts the sweep. On any setup failure the registrations made so far and
// the backend itself are unwound and no engine is returned.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Pins) == 0 {
		return nil, fmt.Errorf("no pins configured")
	}
	if cfg.Backend == nil {
		return nil, fmt.Errorf("no backend configured")
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Poll <= 0 {
		cfg.Poll = defaultPoll
	}

	if err := cfg.Backend.Init(); err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}

	e := &Engine{
		cfg:    cfg,
		clock:  cfg.Clock,
		byGPIO: make(map[int]int, len(cfg.Pins)),
		lines:  make([]lineState, len(cfg.Pins)),
		done:   make(chan struct{}),
	}

	filter := cfg.Debounce
	if filter <= 0 {
		filter = defaultDebounce
	}

	for i, p := range cfg.Pins {
		e.lines[i] = lineState{gpio: p.GPIO, activeLow: p.ActiveLow}
		e.byGPIO[p.GPIO] = i

		if err := e.setup(p, filter); err != nil {
			e.unwind(i)
			return nil, err
		}
	}

	e.wg.Add(1)
	go e.sweep()

	log.Debugf("Button engine watching %d pins", len(cfg.Pins))
	return e, nil
}

func (e *Engine) setup(p Pin, filter time.Duration) error {
	b := e.cfg.Backend
	if err := b.SetInput(p.GPIO); err != nil {
		return fmt.Errorf("set gpio %d as input: %w", p.GPIO, err)
	}
	if p.Pull {
		pull := pullFor(p)
		if err := b.SetPull(p.GPIO, pull); err != nil {
			return fmt.Errorf("set gpio %d pull %v: %w", p.GPIO, pull, err)
		}
	}
	if err := b.SetGlitchFilter(p.GPIO, filter); err != nil {
		return fmt.Errorf("set gpio %d glitch filter: %w", p.GPIO, err)
	}
	if err := b.SetAlert(p.GPIO, e.handleEdge); err != nil {
		return fmt.Errorf("register gpio %d alert: %w", p.GPIO, err)
	}
	return nil
}

// pullFor picks the bias that parks the line in its released level.
func pullFor(p Pin) backend.Pull {
	if p.ActiveLow {
		return backend.PullUp
	}
	return backend.PullDown
}

// unwind deregisters the first n pins and terminates the backend.
func (e *Engine) unwind(n int) {
	for _, p := range e.cfg.Pins[:n] {
		e.cfg.Backend.SetAlert(p.GPIO, nil)
		e.cfg.Backend.SetGlitchFilter(p.GPIO, 0)
	}
	e.cfg.Backend.Term()
}

// Close stops the sweep, deregisters every line and terminates the
// backend. Call exactly once; events stop before Close returns.
func (e *Engine) Close() {
	close(e.done)
	e.wg.Wait()
	e.unwind(len(e.cfg.Pins))
}

// IsPressed reports the debounced state of the pin at the given index.
// Out-of-range indices read as released.
func (e *Engine) IsPressed(index int) bool {
	if index < 0 || index >= len(e.cfg.Pins) {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lines[index].pressed
}

// handleEdge is invoked by the backend per raw transition, possibly from
// several delivery goroutines.
func (e *Engine) handleEdge(gpio, level int, _ time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.byGPIO[gpio]
	if !ok {
		return
	}
	b := &e.lines[idx]
	now := e.clock.Now()

	// software debounce on top of any hardware filter
	if e.cfg.Debounce > 0 && now.Sub(b.lastEdge) < e.cfg.Debounce {
		return
	}
	b.lastEdge = now

	pressed := level == 1
	if b.activeLow {
		pressed = level == 0
	}

	switch {
	case pressed && !b.pressed:
		b.pressed = true
		b.pressedAt = now
		b.holdFired = false
		b.lastRepeat = now
		e.emit(Press, idx, b.gpio)
	case !pressed && b.pressed:
		held := now.Sub(b.pressedAt)
		b.pressed = false
		b.holdFired = false
		e.emit(Release, idx, b.gpio)
		if held < e.cfg.Hold {
			e.emit(Click, idx, b.gpio)
		}
	}
	// a repeated edge in the same direction is a no-op
}

// sweep wakes on the poll interval and fires Hold and Repeat for lines
// that stay pressed.
func (e *Engine) sweep() {
	defer e.wg.Done()
	for {
		select {
		case <-e.done:
			return
		case <-e.clock.After(e.cfg.Poll):
		}

		e.mu.Lock()
		now := e.clock.Now()
		for i := range e.lines {
			b := &e.lines[i]
			if !b.pressed {
				continue
			}
			if !b.holdFired && now.Sub(b.pressedAt) >= e.cfg.Hold {
				b.holdFired = true
				b.lastRepeat = now
				e.emit(Hold, i, b.gpio)
			} else if b.holdFired && e.cfg.Repeat > 0 && now.Sub(b.lastRepeat) >= e.cfg.Repeat {
				b.lastRepeat = now
				e.emit(Repeat, i, b.gpio)
			}
		}
		e.mu.Unlock()
	}
}

// emit is called with the engine mutex held, which serializes callbacks
// and keeps the per-line event order consistent with the state machine.
func (e *Engine) emit(ev Event, index, gpio int) {
	log.Debugf("Button %d (gpio %d) %v", index, gpio, ev)
	if e.cfg.OnEvent != nil {
		e.cfg.OnEvent(ev, index, gpio)
	}
}
