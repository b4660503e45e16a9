// Package status holds the latest pipeline output for concurrent readers.
package status

import (
	"sync"

	"github.com/frudas24/joykeys/internal/stick"
)

// Snapshot is a read-only view of the last processed tick.
type Snapshot struct {
	X         int
	Y         int
	Angle     int
	Direction stick.Direction
}

// Status is updated by the polling loop and read by the control surface.
type Status struct {
	mu        sync.RWMutex
	x, y      int
	angle     int
	direction stick.Direction
}

// New returns a status at rest.
func New() *Status {
	return &Status{angle: -1, direction: stick.DirNone}
}

// Update stores the output of one tick.
func (s *Status) Update(c stick.Coordinate, angle int, dir stick.Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x, s.y = c.X, c.Y
	s.angle = angle
	s.direction = dir
}

// Snapshot returns a copy of the current state.
func (s *Status) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{X: s.x, Y: s.y, Angle: s.angle, Direction: s.direction}
}
