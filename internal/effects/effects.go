// Package effects routes quantized stick directions to host-side effect
// controls while an upper input layer is active.
package effects

import "github.com/frudas24/joykeys/internal/stick"

// Layer indexes the host's input layers. LayerBase is normal movement; the
// upper layers hand the stick over to effect control.
type Layer int

// Known layers, lowest first.
const (
	LayerBase Layer = iota
	LayerLower
	LayerRaise
	LayerAdjust
)

// Provider reports the currently active input layer.
type Provider interface {
	ActiveLayer() Layer
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() Layer

// ActiveLayer implements Provider.
func (f ProviderFunc) ActiveLayer() Layer {
	return f()
}

// Sink receives effect commands. The implementations behind it (lighting
// hardware, host IPC) are outside this module.
type Sink interface {
	StepEffect()
	StepEffectReverse()
	IncreaseVal()
	DecreaseVal()
	IncreaseSat()
	DecreaseSat()
	IncreaseHue()
	DecreaseHue()
	Enable()
	Disable()
	IncreaseSpeed()
	DecreaseSpeed()
}

// Router implements stick.LayerRouter, mapping each upper layer's four
// directions onto effect commands.
type Router struct {
	layers Provider
	sink   Sink
}

// NewRouter returns a router over the given layer provider and effect sink.
func NewRouter(layers Provider, sink Sink) *Router {
	return &Router{layers: layers, sink: sink}
}

// ActiveLayer implements stick.LayerRouter.
func (r *Router) ActiveLayer() int {
	return int(r.layers.ActiveLayer())
}

// HandleDirection implements stick.LayerRouter. A resting stick is a no-op.
func (r *Router) HandleDirection(layer int, dir stick.Direction) {
	if dir == stick.DirNone {
		return
	}
	switch Layer(layer) {
	case LayerLower:
		r.handleLower(dir)
	case LayerRaise:
		r.handleRaise(dir)
	case LayerAdjust:
		r.handleAdjust(dir)
	}
}

// handleLower maps directions to effect stepping and brightness.
func (r *Router) handleLower(dir stick.Direction) {
	switch dir {
	case stick.DirUp:
		r.sink.StepEffect()
	case stick.DirDown:
		r.sink.StepEffectReverse()
	case stick.DirRight:
		r.sink.IncreaseVal()
	case stick.DirLeft:
		r.sink.DecreaseVal()
	}
}

// handleRaise maps directions to saturation and hue.
func (r *Router) handleRaise(dir stick.Direction) {
	switch dir {
	case stick.DirUp:
		r.sink.IncreaseSat()
	case stick.DirDown:
		r.sink.DecreaseSat()
	case stick.DirRight:
		r.sink.IncreaseHue()
	case stick.DirLeft:
		r.sink.DecreaseHue()
	}
}

// handleAdjust maps directions to enable state and speed.
func (r *Router) handleAdjust(dir stick.Direction) {
	switch dir {
	case stick.DirUp:
		r.sink.Enable()
	case stick.DirDown:
		r.sink.Disable()
	case stick.DirRight:
		r.sink.IncreaseSpeed()
	case stick.DirLeft:
		r.sink.DecreaseSpeed()
	}
}
