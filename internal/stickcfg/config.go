// Package stickcfg persists the stick mode and installed orientation.
package stickcfg

import (
	"github.com/frudas24/joykeys/internal/stick"
)

// BlockSize is the exact size of the persisted configuration record.
const BlockSize = 4

// blockVersion marks a block written by the current layout. Version zero is
// the uninitialized pattern.
const blockVersion = 1

// Config is the persisted stick configuration.
type Config struct {
	Mode          stick.Mode
	UpOrientation stick.Orientation
}

// DefaultConfig returns the hard-coded defaults used to repair an invalid or
// uninitialized store.
func DefaultConfig() Config {
	return Config{
		Mode:          stick.ModeArrows,
		UpOrientation: stick.OrientUp,
	}
}

// Valid reports whether every field is within its legal domain.
func (c Config) Valid() bool {
	return c.Mode.Valid() && c.UpOrientation.Valid()
}

// encode packs the configuration into its fixed-size record. The array
// return type pins the record to BlockSize at compile time.
func (c Config) encode() [BlockSize]byte {
	return [BlockSize]byte{
		blockVersion,
		byte(c.Mode),
		byte(c.UpOrientation),
		0, // reserved
	}
}

// decode unpacks a record. It reports false for a short block, an
// uninitialized (all-zero or wrong-version) block, or out-of-domain fields.
func decode(data []byte) (Config, bool) {
	if len(data) != BlockSize || data[0] != blockVersion {
		return Config{}, false
	}
	c := Config{
		Mode:          stick.Mode(data[1]),
		UpOrientation: stick.Orientation(data[2]),
	}
	return c, c.Valid()
}
