package keyboard

import "sync"

// MockAction records one emitter call for assertions.
type MockAction struct {
	Op  string // "press", "release" or "tap"
	Key Key
}

// Mock is an Emitter that records instead of writing to uinput.
type Mock struct {
	mu      sync.Mutex
	actions []MockAction
	closed  bool
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Press(k Key) error {
	m.record("press", k)
	return nil
}

func (m *Mock) Release(k Key) error {
	m.record("release", k)
	return nil
}

func (m *Mock) Tap(k Key) error {
	m.record("tap", k)
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) record(op string, k Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, MockAction{Op: op, Key: k})
}

// Actions returns a copy of everything recorded so far.
func (m *Mock) Actions() []MockAction {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockAction(nil), m.actions...)
}

// Closed reports whether Close was called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
