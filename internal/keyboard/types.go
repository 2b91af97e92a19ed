// Package keyboard emits key events through a virtual uinput keyboard.
// The real implementation requires Linux and /dev/uinput; the mock allows
// testing the event mapping without either.
package keyboard

// Key identifies a key using Linux input event codes.
type Key uint16

// ShiftLeft is KEY_LEFTSHIFT, used by the shift-on-hold mapping.
const ShiftLeft Key = 42

// Emitter produces key events on some keyboard-like device.
type Emitter interface {
	// Press pushes the key down.
	Press(k Key) error
	// Release lets the key up.
	Release(k Key) error
	// Tap presses and releases the key.
	Tap(k Key) error
	// Close destroys the device.
	Close() error
}
