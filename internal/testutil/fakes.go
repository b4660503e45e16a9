// Package testutil provides recording fakes for pipeline tests.
package testutil

import (
	"sync"

	"github.com/frudas24/joykeys/internal/hostinput"
	"github.com/frudas24/joykeys/internal/stick"
)

// KeyEvent records a single key transition.
type KeyEvent struct {
	Key  hostinput.Key
	Down bool
}

// FakeKeySink implements hostinput.KeySink and records transitions in order.
type FakeKeySink struct {
	Events []KeyEvent
}

// Ensure FakeKeySink implements the interface.
var _ hostinput.KeySink = (*FakeKeySink)(nil)

// KeyDown records a key press.
func (f *FakeKeySink) KeyDown(k hostinput.Key) error {
	f.Events = append(f.Events, KeyEvent{Key: k, Down: true})
	return nil
}

// KeyUp records a key release.
func (f *FakeKeySink) KeyUp(k hostinput.Key) error {
	f.Events = append(f.Events, KeyEvent{Key: k, Down: false})
	return nil
}

// Reset clears recorded events.
func (f *FakeKeySink) Reset() {
	f.Events = nil
}

// AxisReport records one SetAxis call.
type AxisReport struct {
	Channel int
	Value   int
}

// FakeAxisSink implements hostinput.AxisSink and records reports in order.
type FakeAxisSink struct {
	Reports []AxisReport
}

// Ensure FakeAxisSink implements the interface.
var _ hostinput.AxisSink = (*FakeAxisSink)(nil)

// SetAxis records an axis report.
func (f *FakeAxisSink) SetAxis(channel, value int) error {
	f.Reports = append(f.Reports, AxisReport{Channel: channel, Value: value})
	return nil
}

// Last returns the most recent value reported for a channel and whether any
// report exists for it.
func (f *FakeAxisSink) Last(channel int) (int, bool) {
	for i := len(f.Reports) - 1; i >= 0; i-- {
		if f.Reports[i].Channel == channel {
			return f.Reports[i].Value, true
		}
	}
	return 0, false
}

// ScriptedSource implements stick.Source from fixed per-axis values that
// tests mutate between ticks.
type ScriptedSource struct {
	mu sync.Mutex
	X  int
	Y  int
}

// Ensure ScriptedSource implements the interface.
var _ stick.Source = (*ScriptedSource)(nil)

// Set updates both axis values.
func (s *ScriptedSource) Set(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.X, s.Y = x, y
}

// ReadAxis returns the scripted value for one axis.
func (s *ScriptedSource) ReadAxis(a stick.Axis) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a == stick.AxisX {
		return s.X
	}
	return s.Y
}

// MemoryBlockStore is an in-memory stickcfg.BlockStore recording writes.
type MemoryBlockStore struct {
	Block  []byte
	Writes int
}

// ReadBlock returns the stored block.
func (m *MemoryBlockStore) ReadBlock() ([]byte, error) {
	return m.Block, nil
}

// WriteBlock replaces the stored block.
func (m *MemoryBlockStore) WriteBlock(data []byte) error {
	m.Block = append([]byte(nil), data...)
	m.Writes++
	return nil
}
