// Package hostinput defines the host-side key and axis sinks fed by the
// stick pipeline.
package hostinput

// Key identifies a logical key the stick can press.
type Key uint8

// Keys used by the WASD and arrow stick modes.
const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowLeft
	KeyArrowDown
	KeyArrowRight
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyW:
		return "w"
	case KeyA:
		return "a"
	case KeyS:
		return "s"
	case KeyD:
		return "d"
	case KeyArrowUp:
		return "arrow_up"
	case KeyArrowLeft:
		return "arrow_left"
	case KeyArrowDown:
		return "arrow_down"
	case KeyArrowRight:
		return "arrow_right"
	default:
		return "unknown"
	}
}

// KeySink receives discrete key transitions. Callers guarantee balanced
// down/up pairs per key.
type KeySink interface {
	KeyDown(k Key) error
	KeyUp(k Key) error
}

// AxisSink receives continuous two-axis reports in analog mode.
type AxisSink interface {
	SetAxis(channel int, value int) error
}

// NullAxisSink discards axis reports, for hosts without a virtual gamepad.
type NullAxisSink struct{}

// SetAxis discards the report.
func (NullAxisSink) SetAxis(channel, value int) error {
	_ = channel
	_ = value
	return nil
}
