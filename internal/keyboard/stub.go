//go:build !linux

package keyboard

import "errors"

var errUnsupported = errors.New("virtual keyboard requires Linux uinput")

// LookupKey is not available without the evdev code tables.
func LookupKey(name string) (Key, error) {
	return 0, errUnsupported
}

// Keyboard is not available on non-Linux platforms.
type Keyboard struct{}

func New(name string, keys []Key) (*Keyboard, error) {
	return nil, errUnsupported
}

func (k *Keyboard) Press(key Key) error   { return errUnsupported }
func (k *Keyboard) Release(key Key) error { return errUnsupported }
func (k *Keyboard) Tap(key Key) error     { return errUnsupported }
func (k *Keyboard) Close() error          { return nil }
