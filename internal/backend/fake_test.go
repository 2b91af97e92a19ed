package backend

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFakeDeliversInjectedEdges(t *testing.T) {
	f := NewFake()
	require.NoError(t, f.Init())

	var got []int
	require.NoError(t, f.SetAlert(7, func(gpio, level int, _ time.Duration) {
		assert.Equal(t, 7, gpio)
		got = append(got, level)
	}))

	f.Inject(7, 0)
	f.Inject(7, 1)
	f.Inject(9, 1) // unregistered, dropped

	assert.Equal(t, []int{0, 1}, got)
}

func TestFakeDeregistration(t *testing.T) {
	f := NewFake()
	require.NoError(t, f.Init())

	calls := 0
	require.NoError(t, f.SetAlert(3, func(gpio, level int, _ time.Duration) {
		calls++
	}))
	f.Inject(3, 1)
	require.NoError(t, f.SetAlert(3, nil))
	f.Inject(3, 0)

	assert.Equal(t, 1, calls)
	assert.False(t, f.Registered(3))
}

func TestFakeTermDropsAlerts(t *testing.T) {
	f := NewFake()
	require.NoError(t, f.Init())

	calls := 0
	require.NoError(t, f.SetAlert(3, func(gpio, level int, _ time.Duration) {
		calls++
	}))
	f.Term()
	f.Inject(3, 1)

	assert.Equal(t, 0, calls)
	assert.True(t, f.Terminated())
}

func TestFakeSetupErrors(t *testing.T) {
	f := NewFake()
	f.InitErr = errors.New("no chip")
	assert.Error(t, f.Init())
	assert.False(t, f.Initialized())

	f = NewFake()
	f.AlertErrs = map[int]error{5: errors.New("busy")}
	require.NoError(t, f.Init())
	assert.Error(t, f.SetAlert(5, func(int, int, time.Duration) {}))
	assert.False(t, f.Registered(5))
}
