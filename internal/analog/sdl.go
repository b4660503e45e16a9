// Package analog provides analog sample sources for the stick pipeline.
package analog

import (
	"fmt"
	"log"

	"github.com/jupiterrider/purego-sdl3/sdl"

	"github.com/frudas24/joykeys/internal/stick"
)

const sdlAxisMin, sdlAxisMax = -32768, 32767

// SDLSource reads the first two axes of an SDL3 joystick and projects them
// onto the profile's raw range. ReadAxis must stay on the goroutine that
// opened the source; the polling loop locks its OS thread for SDL's sake.
type SDLSource struct {
	joystick *sdl.Joystick
	id       sdl.JoystickID
	name     string
	rawMin   int
	rawMax   int
}

// OpenSDL initializes the SDL joystick subsystem and opens the first
// connected joystick.
func OpenSDL(rawMin, rawMax int) (*SDLSource, error) {
	if !sdl.Init(sdl.InitJoystick) {
		return nil, fmt.Errorf("sdl init: %s", sdl.GetError())
	}

	s := &SDLSource{rawMin: rawMin, rawMax: rawMax}
	for _, id := range sdl.GetJoysticks() {
		if s.open(id) {
			break
		}
	}
	if s.joystick == nil {
		sdl.Quit()
		return nil, fmt.Errorf("no joystick connected")
	}
	return s, nil
}

// Name returns the name of the opened joystick.
func (s *SDLSource) Name() string {
	return s.name
}

// open attaches to one joystick instance.
func (s *SDLSource) open(id sdl.JoystickID) bool {
	js := sdl.OpenJoystick(id)
	if js == nil {
		log.Printf("open joystick %d: %s", id, sdl.GetError())
		return false
	}
	s.joystick = js
	s.id = sdl.GetJoystickID(js)
	s.name = sdl.GetJoystickName(js)
	log.Printf("joystick connected: %s (ID=%d)", s.name, s.id)
	return true
}

// processEvents drains the SDL event queue, tracking hotplug so a yanked
// stick reads as resting at the ideal center instead of a stale extreme.
func (s *SDLSource) processEvents() {
	var event sdl.Event
	for sdl.PollEvent(&event) {
		switch event.Type() {
		case sdl.EventJoystickAdded:
			if s.joystick == nil {
				s.open(event.JDevice().Which)
			}
		case sdl.EventJoystickRemoved:
			if s.joystick != nil && event.JDevice().Which == s.id {
				log.Printf("joystick disconnected: %s", s.name)
				sdl.CloseJoystick(s.joystick)
				s.joystick = nil
			}
		}
	}
}

// ReadAxis implements stick.Source. Axis X is SDL axis 0 and axis Y is SDL
// axis 1, inverted so positive y points up.
func (s *SDLSource) ReadAxis(a stick.Axis) int {
	s.processEvents()
	center := (s.rawMin + s.rawMax) / 2
	if s.joystick == nil || !sdl.JoystickConnected(s.joystick) {
		return center
	}

	var v int
	switch a {
	case stick.AxisX:
		v = int(sdl.GetJoystickAxis(s.joystick, 0))
	case stick.AxisY:
		v = -int(sdl.GetJoystickAxis(s.joystick, 1))
	default:
		return center
	}
	if v < sdlAxisMin {
		v = sdlAxisMin
	}
	if v > sdlAxisMax {
		v = sdlAxisMax
	}
	return s.rawMin + (v-sdlAxisMin)*(s.rawMax-s.rawMin)/(sdlAxisMax-sdlAxisMin)
}

// Close releases the joystick and shuts the SDL subsystem down.
func (s *SDLSource) Close() {
	if s.joystick != nil {
		sdl.CloseJoystick(s.joystick)
		s.joystick = nil
	}
	sdl.Quit()
}
