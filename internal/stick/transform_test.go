package stick_test

import (
	"testing"

	"github.com/frudas24/joykeys/internal/stick"
)

// TestTransform_NeutralMapsToZero verifies a centered stick produces (0, 0).
func TestTransform_NeutralMapsToZero(t *testing.T) {
	p := stick.DefaultProfile()
	cal := stick.NominalCalibration(p)

	got := stick.Transform(stick.RawSample{X: 512, Y: 512}, cal, p, stick.OrientUp)
	if got != (stick.Coordinate{}) {
		t.Fatalf("expected (0,0), got %+v", got)
	}
}

// TestTransform_InsideDeadzoneMapsToZero verifies small excursions are
// filtered out.
func TestTransform_InsideDeadzoneMapsToZero(t *testing.T) {
	p := stick.DefaultProfile()
	cal := stick.NominalCalibration(p)

	got := stick.Transform(stick.RawSample{X: 512 + 40, Y: 512 + 40}, cal, p, stick.OrientUp)
	if got != (stick.Coordinate{}) {
		t.Fatalf("expected (0,0) inside deadzone, got %+v", got)
	}
}

// TestTransform_DeadzoneIsRadial verifies the deadzone uses the euclidean
// distance, not per-axis thresholds.
func TestTransform_DeadzoneIsRadial(t *testing.T) {
	p := stick.DefaultProfile()
	cal := stick.NominalCalibration(p)

	// Each component is below the 60-count deadzone, but the vector
	// magnitude (~64) is outside it.
	got := stick.Transform(stick.RawSample{X: 512 + 50, Y: 512 + 40}, cal, p, stick.OrientUp)
	if got == (stick.Coordinate{}) {
		t.Fatalf("expected non-zero output outside radial deadzone")
	}
}

// TestTransform_DeflectionScales verifies a deflection past the deadzone is
// projected onto the output range.
func TestTransform_DeflectionScales(t *testing.T) {
	p := stick.DefaultProfile()
	cal := stick.NominalCalibration(p)

	got := stick.Transform(stick.RawSample{X: 700, Y: 512}, cal, p, stick.OrientUp)
	if got.X <= p.ActuationPoint {
		t.Fatalf("expected X past the actuation point, got %+v", got)
	}
	if got.Y != 0 {
		t.Fatalf("expected Y to stay zero, got %+v", got)
	}
}

// TestTransform_IsDeterministic verifies identical inputs produce identical
// outputs.
func TestTransform_IsDeterministic(t *testing.T) {
	p := stick.DefaultProfile()
	cal := stick.NominalCalibration(p)
	raw := stick.RawSample{X: 800, Y: 300}

	first := stick.Transform(raw, cal, p, stick.OrientLeft)
	for i := 0; i < 10; i++ {
		if got := stick.Transform(raw, cal, p, stick.OrientLeft); got != first {
			t.Fatalf("expected %+v on repeat, got %+v", first, got)
		}
	}
}

// TestTransform_ClampsToOutputRange verifies an oversized scale cannot push
// values past the output bounds.
func TestTransform_ClampsToOutputRange(t *testing.T) {
	p := stick.DefaultProfile()
	cal := stick.NominalCalibration(p)
	cal.ScaleFactor = stick.FixedPointScale * 4

	got := stick.Transform(stick.RawSample{X: 1023, Y: 0}, cal, p, stick.OrientUp)
	if got.X != p.OutMax {
		t.Fatalf("expected X clamped to %d, got %+v", p.OutMax, got)
	}
	if got.Y != p.OutMin {
		t.Fatalf("expected Y clamped to %d, got %+v", p.OutMin, got)
	}
}

// TestRotate_OrientationTable verifies each orientation's quarter-turn
// mapping.
func TestRotate_OrientationTable(t *testing.T) {
	c := stick.Coordinate{X: 3, Y: 7}
	cases := []struct {
		o    stick.Orientation
		want stick.Coordinate
	}{
		{stick.OrientUp, stick.Coordinate{X: 3, Y: 7}},
		{stick.OrientLeft, stick.Coordinate{X: 7, Y: -3}},
		{stick.OrientDown, stick.Coordinate{X: -3, Y: -7}},
		{stick.OrientRight, stick.Coordinate{X: -7, Y: 3}},
	}
	for _, tc := range cases {
		if got := stick.Rotate(c, tc.o); got != tc.want {
			t.Fatalf("orientation %v: expected %+v, got %+v", tc.o, tc.want, got)
		}
	}
}

// TestRotate_FourQuarterTurnsAreIdentity verifies the rotations form a
// cyclic group of order four.
func TestRotate_FourQuarterTurnsAreIdentity(t *testing.T) {
	c := stick.Coordinate{X: -13, Y: 42}
	got := c
	for i := 0; i < 4; i++ {
		got = stick.Rotate(got, stick.OrientLeft)
	}
	if got != c {
		t.Fatalf("expected identity after four quarter turns, got %+v", got)
	}

	// Applying the same quarter turn twice equals the half turn.
	twice := stick.Rotate(stick.Rotate(c, stick.OrientLeft), stick.OrientLeft)
	if want := stick.Rotate(c, stick.OrientDown); twice != want {
		t.Fatalf("expected doubled rotation %+v, got %+v", want, twice)
	}
}

// TestRotate_PreservesMagnitude verifies quarter turns never change the
// squared magnitude.
func TestRotate_PreservesMagnitude(t *testing.T) {
	c := stick.Coordinate{X: 5, Y: -12}
	want := c.X*c.X + c.Y*c.Y
	for _, o := range []stick.Orientation{stick.OrientRight, stick.OrientUp, stick.OrientLeft, stick.OrientDown} {
		r := stick.Rotate(c, o)
		if got := r.X*r.X + r.Y*r.Y; got != want {
			t.Fatalf("orientation %v: expected magnitude %d, got %d", o, want, got)
		}
	}
}

// TestDirectionRotated_MatchesCoordinateRotation verifies direction
// rotation agrees with the coordinate rotation table.
func TestDirectionRotated_MatchesCoordinateRotation(t *testing.T) {
	// Electrical right, stick installed a quarter turn counter-clockwise
	// (its right facing up), reads as physical up.
	if got := stick.DirRight.Rotated(stick.OrientRight); got != stick.DirUp {
		t.Fatalf("expected %v, got %v", stick.DirUp, got)
	}
	if got := stick.DirUp.Rotated(stick.OrientUp); got != stick.DirUp {
		t.Fatalf("expected identity for up orientation, got %v", got)
	}
	if got := stick.DirUp.Rotated(stick.OrientDown); got != stick.DirDown {
		t.Fatalf("expected %v, got %v", stick.DirDown, got)
	}
	if got := stick.DirNone.Rotated(stick.OrientLeft); got != stick.DirNone {
		t.Fatalf("expected none to stay none, got %v", got)
	}
}
