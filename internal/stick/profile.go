// Package stick implements the analog joystick signal pipeline.
package stick

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FixedPointScale is the multiplier used for fixed-point scale factors.
const FixedPointScale = 1024

// Profile describes the static characteristics of an analog stick.
type Profile struct {
	ActuationPoint int `yaml:"actuation_point"`
	DeadzoneInner  int `yaml:"deadzone_inner"`
	DeadzoneOuter  int `yaml:"deadzone_outer"`
	OutMin         int `yaml:"out_min"`
	OutMax         int `yaml:"out_max"`
	RawMin         int `yaml:"raw_min"`
	RawMax         int `yaml:"raw_max"`
	PollIntervalMs int `yaml:"poll_interval_ms"`
	SampleCount    int `yaml:"sample_count"`
}

// DefaultProfile returns the profile for a 10-bit thumb stick with a
// symmetrical 8-bit output range.
func DefaultProfile() Profile {
	return Profile{
		ActuationPoint: 40,
		DeadzoneInner:  60,
		DeadzoneOuter:  60,
		OutMin:         -127,
		OutMax:         127,
		RawMin:         0,
		RawMax:         1023,
		PollIntervalMs: 5,
		SampleCount:    100,
	}
}

// PollInterval returns the poll interval as a duration.
func (p Profile) PollInterval() time.Duration {
	return time.Duration(p.PollIntervalMs) * time.Millisecond
}

// Validate checks the profile for values the pipeline cannot work with.
func (p Profile) Validate() error {
	if p.RawMax <= p.RawMin {
		return fmt.Errorf("raw_max (%d) must be greater than raw_min (%d)", p.RawMax, p.RawMin)
	}
	if p.OutMin >= 0 || p.OutMax <= 0 {
		return fmt.Errorf("output range [%d, %d] must straddle zero", p.OutMin, p.OutMax)
	}
	if p.ActuationPoint <= 0 || p.ActuationPoint >= p.OutMax {
		return fmt.Errorf("actuation_point (%d) must be within (0, %d)", p.ActuationPoint, p.OutMax)
	}
	if p.DeadzoneInner < 0 || p.DeadzoneOuter < 0 {
		return fmt.Errorf("deadzones must not be negative")
	}
	if p.PollIntervalMs <= 0 {
		return fmt.Errorf("poll_interval_ms must be > 0")
	}
	if p.SampleCount <= 0 {
		return fmt.Errorf("sample_count must be > 0")
	}
	return nil
}

// LoadProfile reads a profile from a YAML file. A missing file returns the
// default profile; present fields override the defaults.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse profile %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}
