package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	backendCdev   = "cdev"
	backendPeriph = "periph"

	defaultChip       = "gpiochip0"
	defaultDebounceMs = 12
	defaultHoldMs     = 600
)

type ButtonConfig struct {
	GPIO      int    `yaml:"gpio"`
	Key       string `yaml:"key"`
	ActiveLow bool   `yaml:"activeLow"`
	Pull      bool   `yaml:"pull"`
}

type Config struct {
	Chip        string         `yaml:"chip"`
	Backend     string         `yaml:"backend"`
	DebounceMs  int            `yaml:"debounceMs"`
	HoldMs      int            `yaml:"holdMs"`
	RepeatMs    int            `yaml:"repeatMs"`
	ShiftOnHold bool           `yaml:"shiftOnHold"`
	Buttons     []ButtonConfig `yaml:"buttons"`
}

func (c Config) debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

func (c Config) hold() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}

func (c Config) repeat() time.Duration {
	return time.Duration(c.RepeatMs) * time.Millisecond
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.Chip == "" {
		c.Chip = defaultChip
	}
	if c.Backend == "" {
		c.Backend = backendCdev
	}
	if c.Backend != backendCdev && c.Backend != backendPeriph {
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.DebounceMs <= 0 {
		c.DebounceMs = defaultDebounceMs
	}
	if c.HoldMs <= 0 {
		c.HoldMs = defaultHoldMs
	}
	if c.RepeatMs < 0 {
		return nil, fmt.Errorf("repeat interval must not be negative")
	}

	if len(c.Buttons) == 0 {
		return nil, fmt.Errorf("at least one button must be configured")
	}
	seen := make(map[int]bool)
	for i, b := range c.Buttons {
		if b.GPIO < 0 {
			return nil, fmt.Errorf("invalid gpio %d for button %d", b.GPIO, i)
		}
		if seen[b.GPIO] {
			return nil, fmt.Errorf("gpio %d is used by more than one button", b.GPIO)
		}
		seen[b.GPIO] = true
		if b.Key == "" {
			return nil, fmt.Errorf("key missing for button %d", i)
		}
	}

	return c, nil
}

func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(content)
}
