package backend

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// waitTimeout bounds the blocking edge wait so that deregistration and
// Term complete promptly.
const waitTimeout = time.Second

// Periph drives lines through periph.io pin handles. Each registered line
// gets its own goroutine blocking on WaitForEdge; spurious wakeups that do
// not change the observed level are suppressed so the one-callback-per-
// transition contract holds.
type Periph struct {
	mu      sync.Mutex
	started time.Time
	pulls   map[int]gpio.Pull
	lines   map[int]*periphLine
}

type periphLine struct {
	pin  gpio.PinIO
	done chan struct{}
	wg   sync.WaitGroup
}

func NewPeriph() *Periph {
	return &Periph{
		started: time.Now(),
		pulls:   make(map[int]gpio.Pull),
		lines:   make(map[int]*periphLine),
	}
}

func (p *Periph) Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("init periph host: %w", err)
	}
	return nil
}

func (p *Periph) Term() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for gpioNum, line := range p.lines {
		line.stop()
		delete(p.lines, gpioNum)
	}
}

// SetInput is a no-op: the pin is put into input mode when the alert is
// registered.
func (p *Periph) SetInput(gpioNum int) error {
	return nil
}

func (p *Periph) SetPull(gpioNum int, pull Pull) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch pull {
	case PullUp:
		p.pulls[gpioNum] = gpio.PullUp
	case PullDown:
		p.pulls[gpioNum] = gpio.PullDown
	default:
		p.pulls[gpioNum] = gpio.Float
	}
	return nil
}

// SetGlitchFilter is a no-op: periph.io has no hardware debounce, the
// engine debounces in software.
func (p *Periph) SetGlitchFilter(gpioNum int, period time.Duration) error {
	return nil
}

func (p *Periph) SetAlert(gpioNum int, fn AlertFunc) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if line, ok := p.lines[gpioNum]; ok {
		line.stop()
		delete(p.lines, gpioNum)
	}
	if fn == nil {
		return nil
	}

	pin := gpioreg.ByName(fmt.Sprintf("GPIO%d", gpioNum))
	if pin == nil {
		return fmt.Errorf("no pin registered for GPIO%d", gpioNum)
	}
	pull, ok := p.pulls[gpioNum]
	if !ok {
		pull = gpio.PullNoChange
	}
	if err := pin.In(pull, gpio.BothEdges); err != nil {
		return fmt.Errorf("configure GPIO%d as input: %w", gpioNum, err)
	}

	line := &periphLine{pin: pin, done: make(chan struct{})}
	line.wg.Add(1)
	go p.watch(line, gpioNum, fn)
	p.lines[gpioNum] = line
	log.Debugf("Watching GPIO%d", gpioNum)
	return nil
}

func (p *Periph) watch(line *periphLine, gpioNum int, fn AlertFunc) {
	defer line.wg.Done()

	last := line.pin.Read()
	for {
		select {
		case <-line.done:
			return
		default:
		}

		// wait for the edge, bounded so stop() is honoured
		if !line.pin.WaitForEdge(waitTimeout) {
			continue
		}

		l := line.pin.Read()
		if l == last {
			continue
		}
		last = l

		level := 0
		if l == gpio.High {
			level = 1
		}
		fn(gpioNum, level, time.Since(p.started))
	}
}

// stop signals the watch goroutine and waits for it to exit, so no
// callback is delivered after stop returns. Callers hold p.mu.
func (l *periphLine) stop() {
	close(l.done)
	l.wg.Wait()
}
