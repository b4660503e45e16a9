// Package control exposes the stick configuration commands over websocket.
package control

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/frudas24/joykeys/internal/status"
	"github.com/frudas24/joykeys/internal/stick"
	"github.com/frudas24/joykeys/internal/stickcfg"
)

// statePushInterval is how often the server pushes unsolicited state
// snapshots to the connected client.
const statePushInterval = 500 * time.Millisecond

// Server handles websocket control connections. One client at a time.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	cfg      *stickcfg.Store
	status   *status.Status
	conn     *websocket.Conn
}

// NewServer creates a control websocket server over the given configuration
// store and pipeline status.
func NewServer(cfg *stickcfg.Store, st *status.Status) *Server {
	return &Server{
		cfg:    cfg,
		status: st,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	done := make(chan struct{})
	defer close(done)
	go s.pushLoop(conn, done)

	_ = s.writeState(conn)
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if err := s.handleMessage(msg); err != nil {
			return
		}
		if err := s.writeState(conn); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// pushLoop periodically pushes state snapshots until the connection ends.
func (s *Server) pushLoop(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(statePushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := s.writeState(conn); err != nil {
				return
			}
		}
	}
}

// handleMessage dispatches a single control message. Every mutation writes
// through the configuration store immediately.
func (s *Server) handleMessage(msg Message) error {
	switch msg.T {
	case "stepMode":
		_, err := s.cfg.StepMode()
		return err
	case "stepOrientation":
		step := msg.Step
		if step == 0 {
			step = 1
		}
		_, err := s.cfg.StepOrientation(step)
		return err
	case "setMode":
		if msg.Mode == nil {
			return fmt.Errorf("setMode requires a mode")
		}
		return s.cfg.SetMode(stick.Mode(*msg.Mode))
	case "setOrientation":
		if msg.Orientation == nil {
			return fmt.Errorf("setOrientation requires an orientation")
		}
		return s.cfg.SetOrientation(stick.Orientation(*msg.Orientation))
	case "setAngle":
		if msg.Angle == nil {
			return fmt.Errorf("setAngle requires an angle")
		}
		return s.cfg.SetUpAngle(*msg.Angle)
	case "getState":
		return nil
	default:
		return nil
	}
}

// State returns the snapshot the server would push to a client.
func (s *Server) State() StateMessage {
	cfg := s.cfg.Config()
	snap := s.status.Snapshot()
	return StateMessage{
		T:           "state",
		Mode:        cfg.Mode.String(),
		Orientation: cfg.UpOrientation.String(),
		UpAngle:     cfg.UpOrientation.UpAngle(),
		X:           snap.X,
		Y:           snap.Y,
		Angle:       snap.Angle,
		Direction:   snap.Direction.String(),
	}
}

// writeState pushes the current state snapshot over the connection.
func (s *Server) writeState(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != conn {
		return fmt.Errorf("connection no longer active")
	}
	return conn.WriteJSON(s.State())
}
