package stick

// Transform converts one raw sample into an output-range coordinate:
// center, radial deadzone, fixed-point scale, clamp, orientation rotation,
// re-clamp, in that order. It is deterministic for identical inputs.
func Transform(raw RawSample, cal Calibration, p Profile, o Orientation) Coordinate {
	c := scaleAndDeadzone(raw, cal, p)
	c = Rotate(c, o)
	// Quarter-turn rotations preserve magnitude, so this re-clamp cannot
	// change the value today; it keeps the pipeline safe for any future
	// orientation that is not a multiple of 90 degrees.
	c.X = clamp(c.X, p.OutMin, p.OutMax)
	c.Y = clamp(c.Y, p.OutMin, p.OutMax)
	return c
}

// scaleAndDeadzone centers a raw sample on the calibrated neutral, zeroes it
// inside the inner deadzone, and projects it onto the output range.
func scaleAndDeadzone(raw RawSample, cal Calibration, p Profile) Coordinate {
	x := raw.X - cal.XNeutral
	y := raw.Y - cal.YNeutral

	// Squared-distance comparison keeps the radial deadzone integer-only.
	distSq := x*x + y*y
	if distSq < cal.DeadzoneInner*cal.DeadzoneInner {
		x, y = 0, 0
	} else {
		x = x * cal.ScaleFactor / FixedPointScale
		y = y * cal.ScaleFactor / FixedPointScale
	}

	return Coordinate{
		X: clamp(x, p.OutMin, p.OutMax),
		Y: clamp(y, p.OutMin, p.OutMax),
	}
}

// Rotate corrects a coordinate for the installed orientation. The stick's
// electrical "orientation" direction faces physical up, so the correction
// rotates by (90 degrees - up angle): OrientUp is the identity, OrientLeft
// maps (x, y) to (y, -x), OrientDown negates both axes, and OrientRight maps
// (x, y) to (-y, x). The four transforms form a cyclic group of order four.
func Rotate(c Coordinate, o Orientation) Coordinate {
	switch o {
	case OrientLeft:
		return Coordinate{X: c.Y, Y: -c.X}
	case OrientDown:
		return Coordinate{X: -c.X, Y: -c.Y}
	case OrientRight:
		return Coordinate{X: -c.Y, Y: c.X}
	default:
		return c
	}
}
