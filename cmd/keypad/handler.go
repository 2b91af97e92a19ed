package main

import (
	"github.com/callebjorkell/keypad/internal/button"
	"github.com/callebjorkell/keypad/internal/keyboard"
	log "github.com/sirupsen/logrus"
)

// keyHandler maps button events to virtual keyboard actions. Press and
// release mirror directly onto the mapped key, a hold can engage left
// shift, and click/repeat are left to the OS auto-repeat.
type keyHandler struct {
	kb          keyboard.Emitter
	keys        []keyboard.Key
	shiftOnHold bool
	shiftHeld   []bool
}

func newKeyHandler(kb keyboard.Emitter, keys []keyboard.Key, shiftOnHold bool) *keyHandler {
	return &keyHandler{
		kb:          kb,
		keys:        keys,
		shiftOnHold: shiftOnHold,
		shiftHeld:   make([]bool, len(keys)),
	}
}

// handle runs on the engine callback, which already serializes calls.
func (h *keyHandler) handle(ev button.Event, index, gpio int) {
	if index < 0 || index >= len(h.keys) {
		return
	}
	key := h.keys[index]

	var err error
	switch ev {
	case button.Press:
		err = h.kb.Press(key)
	case button.Hold:
		if h.shiftOnHold && !h.shiftHeld[index] {
			err = h.kb.Press(keyboard.ShiftLeft)
			h.shiftHeld[index] = true
		}
	case button.Release:
		err = h.kb.Release(key)
		if h.shiftHeld[index] {
			if serr := h.kb.Release(keyboard.ShiftLeft); err == nil {
				err = serr
			}
			h.shiftHeld[index] = false
		}
	case button.Click, button.Repeat:
		// the OS auto-repeat covers these
	}

	if err != nil {
		log.Warnf("Emitting %v for button %d (gpio %d): %v", ev, index, gpio, err)
	}
}
