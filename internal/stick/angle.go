package stick

import "math"

// Quantizer converts a coordinate into an angle in degrees within [0, 360),
// or -1 when the coordinate has zero magnitude. When rotate is true the
// configured up angle is subtracted before normalizing, so the result is
// relative to the installed orientation. The two implementations trade
// precision against floating-point cost; callers hold the interface and the
// variant is chosen at wiring time.
type Quantizer interface {
	Angle(c Coordinate, rotate bool) int
}

// TrigQuantizer computes angles with atan2. Most precise; needs floating
// point.
type TrigQuantizer struct {
	upAngle func() int
}

// NewTrigQuantizer returns a trigonometric quantizer. upAngle reports the
// installed orientation's angle in degrees.
func NewTrigQuantizer(upAngle func() int) *TrigQuantizer {
	return &TrigQuantizer{upAngle: upAngle}
}

// Angle implements Quantizer.
func (q *TrigQuantizer) Angle(c Coordinate, rotate bool) int {
	if c.X == 0 && c.Y == 0 {
		return -1
	}
	deg := math.Atan2(float64(c.Y), float64(c.X)) * 180 / math.Pi
	if rotate {
		deg -= float64(q.upAngle())
	}
	deg = math.Mod(deg+360, 360)
	if deg < 0 {
		deg += 360
	}
	return int(math.Round(deg)) % 360
}

// angleBuckets are the sixteen quantized angles, 22.5 degrees apart, rounded
// to whole degrees.
var angleBuckets = [16]int{
	0, 23, 45, 68,
	90, 113, 135, 158,
	180, 203, 225, 248,
	270, 293, 315, 338,
}

// Fixed-point tangents (scaled by 256) of the bucket midpoints 11.25, 33.75,
// 56.25, and 78.75 degrees. A ratio below a threshold falls into the bucket
// before that midpoint.
const (
	tanMid0 = 51   // tan(11.25) * 256
	tanMid1 = 171  // tan(33.75) * 256
	tanMid2 = 383  // tan(56.25) * 256
	tanMid3 = 1287 // tan(78.75) * 256
)

// TableQuantizer classifies coordinates into the sixteen angle buckets with
// integer arithmetic only, for targets where trigonometric calls are too
// expensive. Resolution is one bucket (22.5 degrees).
type TableQuantizer struct {
	upAngle func() int
}

// NewTableQuantizer returns a lookup-table quantizer. upAngle reports the
// installed orientation's angle in degrees.
func NewTableQuantizer(upAngle func() int) *TableQuantizer {
	return &TableQuantizer{upAngle: upAngle}
}

// Angle implements Quantizer.
func (q *TableQuantizer) Angle(c Coordinate, rotate bool) int {
	if c.X == 0 && c.Y == 0 {
		return -1
	}

	// Reduce to a quadrant plus the in-quadrant legs: adj along the
	// quadrant's start axis, opp perpendicular to it. adj is strictly
	// positive in every branch.
	var quadrant, adj, opp int
	switch {
	case c.X > 0 && c.Y >= 0:
		quadrant, adj, opp = 0, c.X, c.Y
	case c.X <= 0 && c.Y > 0:
		quadrant, adj, opp = 1, c.Y, -c.X
	case c.X < 0 && c.Y <= 0:
		quadrant, adj, opp = 2, -c.X, -c.Y
	default:
		quadrant, adj, opp = 3, -c.Y, c.X
	}

	ratio := opp << 8 / adj
	sub := 0
	switch {
	case ratio < tanMid0:
		sub = 0
	case ratio < tanMid1:
		sub = 1
	case ratio < tanMid2:
		sub = 2
	case ratio < tanMid3:
		sub = 3
	default:
		sub = 4 // rounds up into the next quadrant's start bucket
	}

	angle := angleBuckets[(quadrant*4+sub)%16]
	if rotate {
		angle = (angle - q.upAngle() + 360) % 360
	}
	return angle
}

// Direction-sector boundaries: 45-degree-wide sectors centered on the four
// cardinals, expressed on the 16-bucket grid.
const (
	sectorUpStart    = 68
	sectorUpEnd      = 113
	sectorLeftStart  = 158
	sectorLeftEnd    = 203
	sectorDownStart  = 248
	sectorDownEnd    = 293
	sectorRightStart = 338
	sectorRightEnd   = 23
)

// DirectionForAngle maps an angle to the cardinal direction whose sector
// contains it, or DirNone for the -1 sentinel and for diagonal sectors.
func DirectionForAngle(angle int) Direction {
	switch {
	case angle < 0:
		return DirNone
	case angle >= sectorUpStart && angle < sectorUpEnd:
		return DirUp
	case angle >= sectorLeftStart && angle < sectorLeftEnd:
		return DirLeft
	case angle >= sectorDownStart && angle < sectorDownEnd:
		return DirDown
	case angle >= sectorRightStart || angle < sectorRightEnd:
		return DirRight
	default:
		return DirNone
	}
}

// DirectionFor classifies a coordinate into a cardinal direction using the
// quantizer's unrotated angle.
func DirectionFor(q Quantizer, c Coordinate) Direction {
	return DirectionForAngle(q.Angle(c, false))
}
