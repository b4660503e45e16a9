package stick

import "time"

// ConfigProvider reports the persisted stick mode and installed orientation.
// Reads happen once at the top of each tick, so mutations from other
// goroutines take effect at the next tick boundary.
type ConfigProvider interface {
	Mode() Mode
	Orientation() Orientation
}

// LayerRouter lets the host's layer system take over the stick: when the
// active layer is not the base layer (0), the tick hands the rotated
// direction to the router instead of dispatching movement.
type LayerRouter interface {
	ActiveLayer() int
	HandleDirection(layer int, dir Direction)
}

// Stick runs the full signal pipeline once per poll interval: read raw,
// transform, then either dispatch movement or route a direction, in that
// order. It owns the calibration and edge state; exactly one goroutine may
// call Tick.
type Stick struct {
	profile  Profile
	cal      Calibration
	source   Source
	cfg      ConfigProvider
	quant    Quantizer
	disp     *Dispatcher
	layers   LayerRouter
	observe  func(c Coordinate, angle int, dir Direction)
	now      func() time.Time
	lastTick time.Time
	lastMode Mode
}

// New returns a stick processor. The calibration is fixed for the stick's
// lifetime unless recalibrated via SetCalibration.
func New(p Profile, cal Calibration, src Source, cfg ConfigProvider, quant Quantizer, disp *Dispatcher) *Stick {
	return &Stick{
		profile:  p,
		cal:      cal,
		source:   src,
		cfg:      cfg,
		quant:    quant,
		disp:     disp,
		now:      time.Now,
		lastMode: cfg.Mode(),
	}
}

// SetNowFunc overrides the clock used for tick gating.
func (s *Stick) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		s.now = fn
	}
}

// SetLayerRouter installs the non-base-layer direction router.
func (s *Stick) SetLayerRouter(r LayerRouter) {
	s.layers = r
}

// SetObserver installs a callback invoked with the processed coordinate,
// its unrotated angle, and direction after each base-layer tick.
func (s *Stick) SetObserver(fn func(c Coordinate, angle int, dir Direction)) {
	s.observe = fn
}

// SetCalibration replaces the active calibration.
func (s *Stick) SetCalibration(cal Calibration) {
	s.cal = cal
}

// Calibration returns the active calibration.
func (s *Stick) Calibration() Calibration {
	return s.cal
}

// Tick runs one pipeline pass. Calls arriving before the poll interval has
// elapsed are no-ops, so callers may invoke it as often as they like.
func (s *Stick) Tick() error {
	now := s.now()
	if !s.lastTick.IsZero() && now.Sub(s.lastTick) < s.profile.PollInterval() {
		return nil
	}
	s.lastTick = now

	mode := s.cfg.Mode()
	if mode != s.lastMode {
		s.lastMode = mode
		if err := s.disp.Reset(); err != nil {
			return err
		}
	}

	raw := ReadRaw(s.source)
	o := s.cfg.Orientation()

	if s.layers != nil {
		if layer := s.layers.ActiveLayer(); layer != 0 {
			c := scaleAndDeadzone(raw, s.cal, s.profile)
			s.layers.HandleDirection(layer, DirectionFor(s.quant, c).Rotated(o))
			return nil
		}
	}

	c := Transform(raw, s.cal, s.profile, o)
	if s.observe != nil {
		angle := s.quant.Angle(c, false)
		s.observe(c, angle, DirectionForAngle(angle))
	}
	return s.disp.Dispatch(mode, c)
}

// Direction samples the stick and classifies its direction from the
// unrotated coordinate; when rotate is true the result is corrected for the
// installed orientation.
func (s *Stick) Direction(rotate bool) Direction {
	c := scaleAndDeadzone(ReadRaw(s.source), s.cal, s.profile)
	d := DirectionFor(s.quant, c)
	if rotate {
		d = d.Rotated(s.cfg.Orientation())
	}
	return d
}
