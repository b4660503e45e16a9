// Package app wires the stick pipeline, control surface, and HTTP state
// endpoints together.
package app

import (
	"context"
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/frudas24/joykeys/internal/config"
	"github.com/frudas24/joykeys/internal/control"
	"github.com/frudas24/joykeys/internal/hostinput"
	"github.com/frudas24/joykeys/internal/status"
	"github.com/frudas24/joykeys/internal/stick"
	"github.com/frudas24/joykeys/internal/stickcfg"
)

// App coordinates the polling loop, the websocket control server, and the
// persisted configuration store.
type App struct {
	cfg     config.Config
	profile stick.Profile
	source  stick.Source
	store   *stickcfg.Store
	status  *status.Status
	stick   *stick.Stick
	control *control.Server
}

// New creates an application with its dependencies wired. The stick starts
// with a nominal calibration; call Calibrate before Run for the real one.
func New(cfg config.Config, profile stick.Profile, src stick.Source, keys hostinput.KeySink, axes hostinput.AxisSink, store *stickcfg.Store) (*App, error) {
	if src == nil {
		return nil, errors.New("analog source is required")
	}
	if keys == nil {
		return nil, errors.New("key sink is required")
	}
	if axes == nil {
		return nil, errors.New("axis sink is required")
	}
	if store == nil {
		return nil, errors.New("config store is required")
	}

	a := &App{
		cfg:     cfg,
		profile: profile,
		source:  src,
		store:   store,
		status:  status.New(),
	}

	var quant stick.Quantizer
	if cfg.Quantizer == "trig" {
		quant = stick.NewTrigQuantizer(store.UpAngle)
	} else {
		quant = stick.NewTableQuantizer(store.UpAngle)
	}

	disp := stick.NewDispatcher(profile, keys, axes)
	a.stick = stick.New(profile, stick.NominalCalibration(profile), src, store, quant, disp)
	a.stick.SetObserver(a.status.Update)
	a.control = control.NewServer(store, a.status)

	return a, nil
}

// SetLayerRouter installs the direction-to-effect router for non-base
// layers.
func (a *App) SetLayerRouter(r stick.LayerRouter) {
	a.stick.SetLayerRouter(r)
}

// Calibrate samples the resting stick and installs the measured calibration.
// Blocks for roughly SampleCount times the poll interval.
func (a *App) Calibrate() {
	if a.cfg.SkipCalib {
		log.Printf("calibration skipped, using nominal values")
		return
	}
	log.Printf("calibrating stick (%d samples)...", a.profile.SampleCount)
	cal := stick.Calibrate(a.source, a.profile, time.Sleep)
	a.stick.SetCalibration(cal)
	log.Printf("calibration done: neutral=(%d,%d) deadzone=%d scale=%d",
		cal.XNeutral, cal.YNeutral, cal.DeadzoneInner, cal.ScaleFactor)
}

// StepMode advances the stick mode, for the tray menu.
func (a *App) StepMode() {
	mode, err := a.store.StepMode()
	if err != nil {
		log.Printf("step mode: %v", err)
		return
	}
	log.Printf("stick mode now %v", mode)
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// Run drives the polling loop until the context is canceled. It owns the
// calling goroutine and locks it to its OS thread for the analog source's
// sake.
func (a *App) Run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ticker := time.NewTicker(a.profile.PollInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.stick.Tick(); err != nil {
				log.Printf("stick tick: %v", err)
			}
		}
	}
}
