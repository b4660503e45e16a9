package stickcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/frudas24/joykeys/internal/stick"
)

// BlockStore reads and writes the fixed-size configuration record. A write
// overwrites the prior value; no further durability is guaranteed.
type BlockStore interface {
	ReadBlock() ([]byte, error)
	WriteBlock(data []byte) error
}

// FileStore keeps the configuration record in a single file on disk.
// A missing file reads as an empty block.
type FileStore struct {
	path string
}

// NewFileStore returns a file-backed block store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ReadBlock reads the record. Missing files return a nil block.
func (f *FileStore) ReadBlock() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// WriteBlock writes the record, creating parent directories as needed.
func (f *FileStore) WriteBlock(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

// Store holds the validated configuration and writes every mutation through
// to its block store immediately.
type Store struct {
	mu    sync.RWMutex
	block BlockStore
	cfg   Config
}

// Open loads and validates the persisted configuration. An uninitialized or
// out-of-domain record is silently replaced with the defaults and persisted;
// only real I/O failures surface as errors.
func Open(block BlockStore) (*Store, error) {
	data, err := block.ReadBlock()
	if err != nil {
		return nil, fmt.Errorf("read config block: %w", err)
	}

	s := &Store{block: block}
	cfg, ok := decode(data)
	if !ok {
		cfg = DefaultConfig()
		if err := s.writeLocked(cfg); err != nil {
			return nil, err
		}
	}
	s.cfg = cfg
	return s, nil
}

// writeLocked persists a configuration. Callers hold the write path.
func (s *Store) writeLocked(cfg Config) error {
	record := cfg.encode()
	if err := s.block.WriteBlock(record[:]); err != nil {
		return fmt.Errorf("write config block: %w", err)
	}
	return nil
}

// Config returns a copy of the current configuration.
func (s *Store) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Mode returns the persisted stick mode.
func (s *Store) Mode() stick.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Mode
}

// Orientation returns the persisted installed orientation.
func (s *Store) Orientation() stick.Orientation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.UpOrientation
}

// UpAngle returns the installed orientation's angle in degrees.
func (s *Store) UpAngle() int {
	return s.Orientation().UpAngle()
}

// SetMode sets and persists the stick mode.
func (s *Store) SetMode(m stick.Mode) error {
	if !m.Valid() {
		return fmt.Errorf("invalid mode %d", m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg
	cfg.Mode = m
	if err := s.writeLocked(cfg); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// StepMode advances the mode circularly and persists it, returning the new
// mode.
func (s *Store) StepMode() (stick.Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg
	cfg.Mode = cfg.Mode.Next()
	if err := s.writeLocked(cfg); err != nil {
		return s.cfg.Mode, err
	}
	s.cfg = cfg
	return cfg.Mode, nil
}

// SetOrientation sets and persists the installed orientation.
func (s *Store) SetOrientation(o stick.Orientation) error {
	if !o.Valid() {
		return fmt.Errorf("invalid orientation %d", o)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg
	cfg.UpOrientation = o
	if err := s.writeLocked(cfg); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// SetUpAngle sets the orientation from its angle, which must be a multiple
// of 90 degrees within [0, 360).
func (s *Store) SetUpAngle(angle int) error {
	if angle < 0 || angle >= 360 || angle%90 != 0 {
		return fmt.Errorf("up angle %d must be a multiple of 90 in [0, 360)", angle)
	}
	return s.SetOrientation(stick.Orientation(angle / 90))
}

// StepOrientation advances the orientation by step quarter-turns (negative
// steps turn the other way) and persists it, returning the new orientation.
func (s *Store) StepOrientation(step int) (stick.Orientation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg
	n := stick.OrientationCount
	cfg.UpOrientation = stick.Orientation(((int(cfg.UpOrientation)+step)%n + n) % n)
	if err := s.writeLocked(cfg); err != nil {
		return s.cfg.UpOrientation, err
	}
	s.cfg = cfg
	return cfg.UpOrientation, nil
}
