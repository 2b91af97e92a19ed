package main

import (
	"testing"

	"github.com/callebjorkell/keypad/internal/button"
	"github.com/callebjorkell/keypad/internal/keyboard"
	"github.com/stretchr/testify/assert"
)

const (
	keyUp   = keyboard.Key(103)
	keyDown = keyboard.Key(108)
)

func TestHandlerShortPress(t *testing.T) {
	kb := keyboard.NewMock()
	h := newKeyHandler(kb, []keyboard.Key{keyUp, keyDown}, true)

	h.handle(button.Press, 1, 6)
	h.handle(button.Release, 1, 6)
	h.handle(button.Click, 1, 6)

	assert.Equal(t, []keyboard.MockAction{
		{Op: "press", Key: keyDown},
		{Op: "release", Key: keyDown},
	}, kb.Actions(), "click adds nothing on top of press/release")
}

func TestHandlerShiftOnHold(t *testing.T) {
	kb := keyboard.NewMock()
	h := newKeyHandler(kb, []keyboard.Key{keyUp}, true)

	h.handle(button.Press, 0, 25)
	h.handle(button.Hold, 0, 25)
	h.handle(button.Repeat, 0, 25)
	h.handle(button.Release, 0, 25)

	assert.Equal(t, []keyboard.MockAction{
		{Op: "press", Key: keyUp},
		{Op: "press", Key: keyboard.ShiftLeft},
		{Op: "release", Key: keyUp},
		{Op: "release", Key: keyboard.ShiftLeft},
	}, kb.Actions())
}

func TestHandlerHoldWithoutShift(t *testing.T) {
	kb := keyboard.NewMock()
	h := newKeyHandler(kb, []keyboard.Key{keyUp}, false)

	h.handle(button.Press, 0, 25)
	h.handle(button.Hold, 0, 25)
	h.handle(button.Release, 0, 25)

	assert.Equal(t, []keyboard.MockAction{
		{Op: "press", Key: keyUp},
		{Op: "release", Key: keyUp},
	}, kb.Actions())
}

func TestHandlerIgnoresUnmappedIndex(t *testing.T) {
	kb := keyboard.NewMock()
	h := newKeyHandler(kb, []keyboard.Key{keyUp}, true)

	h.handle(button.Press, 3, 12)
	h.handle(button.Press, -1, 12)

	assert.Empty(t, kb.Actions())
}
