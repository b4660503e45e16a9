package stick

import "github.com/frudas24/joykeys/internal/hostinput"

// Mode selects how processed coordinates are turned into host input.
type Mode uint8

// Stick modes, in cycling order.
const (
	ModeAnalog Mode = iota // continuous two-axis reports
	ModeWASD               // discrete W/A/S/D key presses
	ModeArrows             // discrete arrow key presses

	// ModeCount is the number of valid modes.
	ModeCount = 3
)

// Valid reports whether the mode is one of the three defined modes.
func (m Mode) Valid() bool {
	return m < ModeCount
}

// Next returns the next mode in the cycle.
func (m Mode) Next() Mode {
	return (m + 1) % ModeCount
}

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeAnalog:
		return "analog"
	case ModeWASD:
		return "wasd"
	case ModeArrows:
		return "arrows"
	default:
		return "invalid"
	}
}

// Dispatcher routes a processed coordinate to the handler for the active
// mode. The discrete modes keep independent edge state so a mode switch
// starts from neutral.
type Dispatcher struct {
	keys   hostinput.KeySink
	axes   hostinput.AxisSink
	wasd   *EdgeMapper
	arrows *EdgeMapper
}

// NewDispatcher returns a dispatcher wired to the given sinks.
func NewDispatcher(p Profile, keys hostinput.KeySink, axes hostinput.AxisSink) *Dispatcher {
	return &Dispatcher{
		keys: keys,
		axes: axes,
		wasd: NewEdgeMapper(p.ActuationPoint, KeyPad{
			Up:    hostinput.KeyW,
			Left:  hostinput.KeyA,
			Down:  hostinput.KeyS,
			Right: hostinput.KeyD,
		}),
		arrows: NewEdgeMapper(p.ActuationPoint, KeyPad{
			Up:    hostinput.KeyArrowUp,
			Left:  hostinput.KeyArrowLeft,
			Down:  hostinput.KeyArrowDown,
			Right: hostinput.KeyArrowRight,
		}),
	}
}

// Dispatch processes one coordinate under the given mode.
func (d *Dispatcher) Dispatch(mode Mode, c Coordinate) error {
	switch mode {
	case ModeAnalog:
		if err := d.axes.SetAxis(0, c.X); err != nil {
			return err
		}
		return d.axes.SetAxis(1, c.Y)
	case ModeWASD:
		return d.wasd.Update(c, d.keys)
	case ModeArrows:
		return d.arrows.Update(c, d.keys)
	default:
		return nil
	}
}

// Reset zeroes the analog axes and releases any keys held by the discrete
// modes. Run before a mode change becomes live so stale edge state cannot
// emit key-ups for a mode that is no longer active.
func (d *Dispatcher) Reset() error {
	if err := d.axes.SetAxis(0, 0); err != nil {
		return err
	}
	if err := d.axes.SetAxis(1, 0); err != nil {
		return err
	}
	if err := d.wasd.Release(d.keys); err != nil {
		return err
	}
	return d.arrows.Release(d.keys)
}
