package stick

// Axis identifies one analog input channel.
type Axis int

// The two channels of a two-axis stick.
const (
	AxisX Axis = iota
	AxisY
)

// Source reads raw samples from an analog stick channel.
type Source interface {
	ReadAxis(a Axis) int
}

// RawSample holds one raw two-axis reading in the profile's raw range.
type RawSample struct {
	X int
	Y int
}

// ReadRaw samples both channels of a source.
func ReadRaw(src Source) RawSample {
	return RawSample{
		X: src.ReadAxis(AxisX),
		Y: src.ReadAxis(AxisY),
	}
}

// Coordinate holds processed axis values in the profile's output range.
type Coordinate struct {
	X int
	Y int
}

// Orientation names the electrical stick direction that is installed facing
// physical "up". Each value corresponds to an angle of index*90 degrees.
type Orientation int

// Installed orientations, counter-clockwise from the positive x-axis.
const (
	OrientRight Orientation = iota // electrical right faces up (0 degrees)
	OrientUp                       // electrical up faces up (90 degrees)
	OrientLeft                     // electrical left faces up (180 degrees)
	OrientDown                     // electrical down faces up (270 degrees)

	// OrientationCount is the number of valid orientations.
	OrientationCount = 4
)

// Valid reports whether the orientation is one of the four installed values.
func (o Orientation) Valid() bool {
	return o >= OrientRight && o < OrientationCount
}

// UpAngle returns the angle in degrees of the electrical direction that
// faces physical up.
func (o Orientation) UpAngle() int {
	return int(o) * 90
}

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case OrientRight:
		return "right"
	case OrientUp:
		return "up"
	case OrientLeft:
		return "left"
	case OrientDown:
		return "down"
	default:
		return "invalid"
	}
}

// Direction is a quantized stick direction. The numeric values mirror
// Orientation so rotating a direction is index arithmetic modulo four.
type Direction int

// Quantized directions; DirNone marks a stick at rest.
const (
	DirNone  Direction = -1
	DirRight Direction = 0
	DirUp    Direction = 1
	DirLeft  Direction = 2
	DirDown  Direction = 3
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Rotated returns the direction corrected for the installed orientation.
// OrientUp is the identity; other orientations shift by their quarter-turn
// offset from it, matching the coordinate rotation in Rotate.
func (d Direction) Rotated(o Orientation) Direction {
	if d == DirNone {
		return DirNone
	}
	shift := (int(OrientUp) - int(o) + OrientationCount) % OrientationCount
	return Direction((int(d) + shift) % OrientationCount)
}

// clamp bounds a value to [min, max].
func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// abs returns the absolute value of an integer.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
