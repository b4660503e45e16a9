package stick

import "time"

// Calibration holds the neutral centers, deadzones, and fixed-point scale
// computed for one stick at startup. Immutable once returned.
type Calibration struct {
	XNeutral      int
	YNeutral      int
	DeadzoneInner int
	DeadzoneOuter int
	ScaleFactor   int
}

// Calibrate samples the stick at rest and derives its calibration. It blocks
// for SampleCount*PollInterval (about half a second with the default
// profile), a one-time startup cost before normal input processing begins.
// The sleep function is injectable so tests run without real delays.
func Calibrate(src Source, p Profile, sleep func(time.Duration)) Calibration {
	idealNeutral := (p.RawMin + p.RawMax) / 2
	var totalX, totalY, maxX, maxY int

	for i := 0; i < p.SampleCount; i++ {
		x := src.ReadAxis(AxisX)
		y := src.ReadAxis(AxisY)
		totalX += x
		totalY += y
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
		sleep(p.PollInterval())
	}

	cal := Calibration{
		XNeutral:      totalX / p.SampleCount,
		YNeutral:      totalY / p.SampleCount,
		DeadzoneOuter: p.DeadzoneOuter,
	}

	maxNeutral := maxX
	if maxY > maxNeutral {
		maxNeutral = maxY
	}
	cal.ScaleFactor = scaleFor(p, maxNeutral)

	// Widen the inner deadzone to cover the observed electrical drift so a
	// stick that rests off-center cannot trigger false inputs.
	drift := abs(cal.XNeutral - idealNeutral)
	if yDrift := abs(cal.YNeutral - idealNeutral); yDrift > drift {
		drift = yDrift
	}
	cal.DeadzoneInner = p.DeadzoneInner
	if drift > cal.DeadzoneInner {
		cal.DeadzoneInner = drift
	}

	return cal
}

// scaleFor maps the largest observed excursion onto the output bound. A
// collapsed observed range falls back to the nominal scale for half the raw
// span so the divisor can never be zero.
func scaleFor(p Profile, maxObserved int) int {
	span := p.RawMax - maxObserved
	if span <= 0 {
		span = (p.RawMax - p.RawMin) / 2
	}
	return FixedPointScale * p.OutMax / span
}

// NominalCalibration returns a calibration centered on the ideal neutral with
// the profile's own deadzones, for callers that skip the sampling pass.
func NominalCalibration(p Profile) Calibration {
	center := (p.RawMin + p.RawMax) / 2
	return Calibration{
		XNeutral:      center,
		YNeutral:      center,
		DeadzoneInner: p.DeadzoneInner,
		DeadzoneOuter: p.DeadzoneOuter,
		ScaleFactor:   scaleFor(p, center),
	}
}
