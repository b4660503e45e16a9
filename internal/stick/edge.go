package stick

import "github.com/frudas24/joykeys/internal/hostinput"

// KeyPad names the four keys an edge mapper drives.
type KeyPad struct {
	Up    hostinput.Key
	Left  hostinput.Key
	Down  hostinput.Key
	Right hostinput.Key
}

// EdgeMapper converts continuous axis values into discrete key transitions.
// Each axis is a tri-state machine (negative, neutral, positive) over the
// actuation point; events fire only on state changes, so steady input is a
// no-op. A direct negative-to-positive crossing releases the old key and
// presses the new one in the same tick, never holding both.
type EdgeMapper struct {
	actuation int
	keys      KeyPad
	xState    int
	yState    int
}

// NewEdgeMapper returns a mapper in the neutral state for both axes.
func NewEdgeMapper(actuation int, keys KeyPad) *EdgeMapper {
	return &EdgeMapper{actuation: actuation, keys: keys}
}

// Update feeds one coordinate through both axis state machines.
func (m *EdgeMapper) Update(c Coordinate, sink hostinput.KeySink) error {
	var err error
	m.yState, err = m.handleAxis(c.Y, m.yState, m.keys.Up, m.keys.Down, sink)
	if err != nil {
		return err
	}
	m.xState, err = m.handleAxis(c.X, m.xState, m.keys.Right, m.keys.Left, sink)
	return err
}

// handleAxis advances one axis state machine, emitting the key-up for the
// previous state before the key-down for the new one.
func (m *EdgeMapper) handleAxis(curr, prevState int, pos, neg hostinput.Key, sink hostinput.KeySink) (int, error) {
	state := 0
	if curr > m.actuation {
		state = 1
	} else if curr < -m.actuation {
		state = -1
	}
	if state == prevState {
		return state, nil
	}

	if prevState > 0 {
		if err := sink.KeyUp(pos); err != nil {
			return state, err
		}
	} else if prevState < 0 {
		if err := sink.KeyUp(neg); err != nil {
			return state, err
		}
	}

	if state > 0 {
		if err := sink.KeyDown(pos); err != nil {
			return state, err
		}
	} else if state < 0 {
		if err := sink.KeyDown(neg); err != nil {
			return state, err
		}
	}
	return state, nil
}

// Release emits key-ups for any held keys and resets both axes to neutral.
// Called on mode changes so a retired mode cannot leave keys stuck down.
func (m *EdgeMapper) Release(sink hostinput.KeySink) error {
	if err := m.Update(Coordinate{}, sink); err != nil {
		return err
	}
	m.xState, m.yState = 0, 0
	return nil
}
