// Package control exposes the stick configuration commands over websocket.
package control

// Message is a control websocket payload sent by a client.
type Message struct {
	T           string `json:"t"`
	Step        int    `json:"step,omitempty"`
	Orientation *int   `json:"orientation,omitempty"`
	Mode        *int   `json:"mode,omitempty"`
	Angle       *int   `json:"angle,omitempty"`
}

// StateMessage is the state snapshot pushed to the client.
type StateMessage struct {
	T           string `json:"t"`
	Mode        string `json:"mode"`
	Orientation string `json:"orientation"`
	UpAngle     int    `json:"upAngle"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Angle       int    `json:"angle"`
	Direction   string `json:"direction"`
}
