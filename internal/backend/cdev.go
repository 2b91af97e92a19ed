//go:build linux

package backend

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/warthog618/go-gpiocdev"
)

const consumer = "keypad"

// Cdev drives lines through the Linux GPIO character device using buffered
// edge-event delivery: each registered line gets an event handler that the
// library invokes from its own goroutine.
type Cdev struct {
	name string

	mu       sync.Mutex
	chip     *gpiocdev.Chip
	pulls    map[int]Pull
	debounce map[int]time.Duration
	lines    map[int]*gpiocdev.Line
}

// NewCdev creates a character-device backend for the named chip. The name
// may be a plain chip name like "gpiochip0" or an absolute device path.
func NewCdev(name string) *Cdev {
	return &Cdev{
		name:     name,
		pulls:    make(map[int]Pull),
		debounce: make(map[int]time.Duration),
		lines:    make(map[int]*gpiocdev.Line),
	}
}

func (c *Cdev) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	chip, err := gpiocdev.NewChip(c.name, gpiocdev.WithConsumer(consumer))
	if err != nil {
		return fmt.Errorf("open gpio chip %v: %w", c.name, err)
	}
	c.chip = chip
	log.Debugf("Opened gpio chip %v", c.name)
	return nil
}

func (c *Cdev) Term() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for gpio, line := range c.lines {
		if err := line.Close(); err != nil {
			log.Warnf("Closing line %d: %v", gpio, err)
		}
		delete(c.lines, gpio)
	}
	if c.chip != nil {
		if err := c.chip.Close(); err != nil {
			log.Warnf("Closing chip: %v", err)
		}
		c.chip = nil
	}
}

// SetInput is a no-op: the line is requested as input when the alert is
// registered.
func (c *Cdev) SetInput(gpio int) error {
	return nil
}

func (c *Cdev) SetPull(gpio int, pull Pull) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pulls[gpio] = pull
	return nil
}

func (c *Cdev) SetGlitchFilter(gpio int, period time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if period <= 0 {
		delete(c.debounce, gpio)
	} else {
		c.debounce[gpio] = period
	}
	return nil
}

func (c *Cdev) SetAlert(gpio int, fn AlertFunc) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[gpio]; ok {
		if err := line.Close(); err != nil {
			log.Warnf("Releasing line %d: %v", gpio, err)
		}
		delete(c.lines, gpio)
	}
	if fn == nil {
		return nil
	}
	if c.chip == nil {
		return fmt.Errorf("chip %v is not open", c.name)
	}

	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(func(evt gpiocdev.LineEvent) {
			level := 0
			if evt.Type == gpiocdev.LineEventRisingEdge {
				level = 1
			}
			fn(evt.Offset, level, evt.Timestamp)
		}),
	}
	switch c.pulls[gpio] {
	case PullUp:
		opts = append(opts, gpiocdev.WithPullUp)
	case PullDown:
		opts = append(opts, gpiocdev.WithPullDown)
	}
	if d, ok := c.debounce[gpio]; ok {
		opts = append(opts, gpiocdev.WithDebounce(d))
	}

	line, err := c.chip.RequestLine(gpio, opts...)
	if err != nil {
		return fmt.Errorf("request line %d: %w", gpio, err)
	}
	c.lines[gpio] = line
	log.Debugf("Watching line %d on %v", gpio, c.name)
	return nil
}
