//go:build !windows

// Package hostinput defines the host-side key and axis sinks fed by the
// stick pipeline.
package hostinput

import "log"

// LogKeySink logs key transitions instead of injecting them, for platforms
// without a SendInput equivalent wired up.
type LogKeySink struct{}

// NewKeySink returns a logging key sink on non-Windows platforms.
func NewKeySink() (KeySink, error) {
	return &LogKeySink{}, nil
}

// KeyDown logs a key press.
func (l *LogKeySink) KeyDown(k Key) error {
	log.Printf("key down: %v", k)
	return nil
}

// KeyUp logs a key release.
func (l *LogKeySink) KeyUp(k Key) error {
	log.Printf("key up: %v", k)
	return nil
}
