//go:build linux

package keyboard

import (
	"fmt"

	evdev "github.com/holoplot/go-evdev"
	log "github.com/sirupsen/logrus"
)

// LookupKey resolves a key name like "KEY_UP" to its event code.
func LookupKey(name string) (Key, error) {
	code, ok := evdev.KEYFromString[name]
	if !ok {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return Key(code), nil
}

// Keyboard is a virtual keyboard backed by a uinput device.
type Keyboard struct {
	dev *evdev.InputDevice
}

// New creates the uinput device with exactly the given key capabilities.
func New(name string, keys []Key) (*Keyboard, error) {
	codes := make([]evdev.EvCode, 0, len(keys))
	for _, k := range keys {
		codes = append(codes, evdev.EvCode(k))
	}

	dev, err := evdev.CreateDevice(name, evdev.InputID{
		BusType: 0x03, // BUS_USB
		Vendor:  0x01,
		Product: 0x01,
		Version: 1,
	}, map[evdev.EvType][]evdev.EvCode{
		evdev.EV_KEY: codes,
	})
	if err != nil {
		return nil, fmt.Errorf("create uinput device (is /dev/uinput accessible?): %w", err)
	}

	log.Infof("Created virtual keyboard %q with %d keys", name, len(keys))
	return &Keyboard{dev: dev}, nil
}

func (k *Keyboard) Press(key Key) error {
	return k.write(key, 1)
}

func (k *Keyboard) Release(key Key) error {
	return k.write(key, 0)
}

func (k *Keyboard) Tap(key Key) error {
	if err := k.write(key, 1); err != nil {
		return err
	}
	return k.write(key, 0)
}

// write emits the key event followed by the report separator.
func (k *Keyboard) write(key Key, value int32) error {
	err := k.dev.WriteOne(&evdev.InputEvent{
		Type:  evdev.EV_KEY,
		Code:  evdev.EvCode(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("write key event: %w", err)
	}
	err = k.dev.WriteOne(&evdev.InputEvent{
		Type:  evdev.EV_SYN,
		Code:  evdev.SYN_REPORT,
		Value: 0,
	})
	if err != nil {
		return fmt.Errorf("write syn event: %w", err)
	}
	return nil
}

func (k *Keyboard) Close() error {
	return k.dev.Close()
}
