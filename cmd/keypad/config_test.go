package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	content := []byte(`
chip: gpiochip4
backend: periph
debounceMs: 15
holdMs: 700
repeatMs: 150
shiftOnHold: true
buttons:
  - gpio: 25
    key: KEY_UP
    activeLow: true
    pull: true
  - gpio: 6
    key: KEY_DOWN
    activeLow: true
    pull: true
`)
	c, err := parseConfig(content)
	require.NoError(t, err)

	assert.Equal(t, "gpiochip4", c.Chip)
	assert.Equal(t, backendPeriph, c.Backend)
	assert.Equal(t, 15, c.DebounceMs)
	assert.Equal(t, 700, c.HoldMs)
	assert.Equal(t, 150, c.RepeatMs)
	assert.True(t, c.ShiftOnHold)
	require.Len(t, c.Buttons, 2)
	assert.Equal(t, 25, c.Buttons[0].GPIO)
	assert.Equal(t, "KEY_UP", c.Buttons[0].Key)
	assert.True(t, c.Buttons[0].ActiveLow)
	assert.True(t, c.Buttons[0].Pull)
}

func TestParseConfigDefaults(t *testing.T) {
	content := []byte(`
buttons:
  - gpio: 25
    key: KEY_ENTER
`)
	c, err := parseConfig(content)
	require.NoError(t, err)

	assert.Equal(t, defaultChip, c.Chip)
	assert.Equal(t, backendCdev, c.Backend)
	assert.Equal(t, defaultDebounceMs, c.DebounceMs)
	assert.Equal(t, defaultHoldMs, c.HoldMs)
	assert.Equal(t, 0, c.RepeatMs, "repeat stays disabled by default")
	assert.False(t, c.ShiftOnHold)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no buttons",
			content: `chip: gpiochip0`,
		},
		{
			name: "unknown backend",
			content: `
backend: sysfs
buttons:
  - {gpio: 25, key: KEY_UP}
`,
		},
		{
			name: "missing key",
			content: `
buttons:
  - gpio: 25
`,
		},
		{
			name: "negative gpio",
			content: `
buttons:
  - {gpio: -3, key: KEY_UP}
`,
		},
		{
			name: "duplicate gpio",
			content: `
buttons:
  - {gpio: 25, key: KEY_UP}
  - {gpio: 25, key: KEY_DOWN}
`,
		},
		{
			name: "negative repeat",
			content: `
repeatMs: -10
buttons:
  - {gpio: 25, key: KEY_UP}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tt.content))
			assert.Error(t, err)
		})
	}
}
