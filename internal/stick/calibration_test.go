package stick_test

import (
	"testing"
	"time"

	"github.com/frudas24/joykeys/internal/stick"
	"github.com/frudas24/joykeys/internal/testutil"
)

// noSleep is the injectable sleep used by calibration tests.
func noSleep(time.Duration) {}

// TestCalibrate_MeasuresNeutral verifies the sample mean becomes the
// neutral center.
func TestCalibrate_MeasuresNeutral(t *testing.T) {
	p := stick.DefaultProfile()
	src := &testutil.ScriptedSource{}
	src.Set(530, 500)

	cal := stick.Calibrate(src, p, noSleep)
	if cal.XNeutral != 530 || cal.YNeutral != 500 {
		t.Fatalf("expected neutral (530,500), got (%d,%d)", cal.XNeutral, cal.YNeutral)
	}
	if cal.DeadzoneInner != p.DeadzoneInner {
		t.Fatalf("expected profile deadzone %d for small drift, got %d", p.DeadzoneInner, cal.DeadzoneInner)
	}
	if cal.ScaleFactor <= 0 {
		t.Fatalf("expected positive scale factor, got %d", cal.ScaleFactor)
	}
}

// TestCalibrate_WidensDeadzoneForDrift verifies a stick resting far off
// center gets a deadzone covering the drift.
func TestCalibrate_WidensDeadzoneForDrift(t *testing.T) {
	p := stick.DefaultProfile()
	src := &testutil.ScriptedSource{}
	src.Set(600, 512)

	cal := stick.Calibrate(src, p, noSleep)
	drift := 600 - (p.RawMin+p.RawMax)/2
	if cal.DeadzoneInner != drift {
		t.Fatalf("expected deadzone widened to %d, got %d", drift, cal.DeadzoneInner)
	}

	// The resting reading sits on the measured neutral and stays silent.
	got := stick.Transform(stick.RawSample{X: 600, Y: 512}, cal, p, stick.OrientUp)
	if got != (stick.Coordinate{}) {
		t.Fatalf("expected resting position to map to zero, got %+v", got)
	}
}

// TestCalibrate_SleepsOncePerSample verifies the sampling pace follows the
// profile's poll interval.
func TestCalibrate_SleepsOncePerSample(t *testing.T) {
	p := stick.DefaultProfile()
	src := &testutil.ScriptedSource{}
	src.Set(512, 512)

	var calls int
	stick.Calibrate(src, p, func(d time.Duration) {
		if d != p.PollInterval() {
			t.Fatalf("expected sleep of %v, got %v", p.PollInterval(), d)
		}
		calls++
	})
	if calls != p.SampleCount {
		t.Fatalf("expected %d sleeps, got %d", p.SampleCount, calls)
	}
}

// TestCalibrate_CollapsedRangeFallsBack verifies a stick pinned at the raw
// maximum cannot produce a zero scale divisor.
func TestCalibrate_CollapsedRangeFallsBack(t *testing.T) {
	p := stick.DefaultProfile()
	src := &testutil.ScriptedSource{}
	src.Set(p.RawMax, p.RawMax)

	cal := stick.Calibrate(src, p, noSleep)
	if cal.ScaleFactor <= 0 {
		t.Fatalf("expected positive fallback scale factor, got %d", cal.ScaleFactor)
	}
}

// TestNominalCalibration_CentersOnIdealNeutral verifies the no-sampling
// calibration uses the midpoint of the raw range.
func TestNominalCalibration_CentersOnIdealNeutral(t *testing.T) {
	p := stick.DefaultProfile()
	cal := stick.NominalCalibration(p)

	center := (p.RawMin + p.RawMax) / 2
	if cal.XNeutral != center || cal.YNeutral != center {
		t.Fatalf("expected neutral (%d,%d), got (%d,%d)", center, center, cal.XNeutral, cal.YNeutral)
	}
	if cal.DeadzoneInner != p.DeadzoneInner || cal.DeadzoneOuter != p.DeadzoneOuter {
		t.Fatalf("expected profile deadzones, got %+v", cal)
	}
}

// TestCalibrate_FullDeflectionReachesOutMax verifies the measured scale maps
// a full raw deflection onto the output bound, within one count of
// fixed-point truncation.
func TestCalibrate_FullDeflectionReachesOutMax(t *testing.T) {
	p := stick.DefaultProfile()
	src := &testutil.ScriptedSource{}
	src.Set(512, 512)

	cal := stick.Calibrate(src, p, noSleep)
	got := stick.Transform(stick.RawSample{X: p.RawMax, Y: 512}, cal, p, stick.OrientUp)
	if got.X < p.OutMax-1 || got.X > p.OutMax {
		t.Fatalf("expected full deflection near %d, got %+v", p.OutMax, got)
	}
}
