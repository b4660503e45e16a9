//go:build windows

// Package hostinput defines the host-side key and axis sinks fed by the
// stick pipeline.
package hostinput

import (
	"fmt"

	"github.com/lxn/win"
)

// WinKeySink injects key events using the WinAPI SendInput call.
type WinKeySink struct{}

// NewKeySink returns a Windows key sink.
func NewKeySink() (KeySink, error) {
	return &WinKeySink{}, nil
}

// virtualKey maps a logical key to its Windows virtual-key code.
func virtualKey(k Key) (uint16, error) {
	switch k {
	case KeyW:
		return uint16('W'), nil
	case KeyA:
		return uint16('A'), nil
	case KeyS:
		return uint16('S'), nil
	case KeyD:
		return uint16('D'), nil
	case KeyArrowUp:
		return win.VK_UP, nil
	case KeyArrowLeft:
		return win.VK_LEFT, nil
	case KeyArrowDown:
		return win.VK_DOWN, nil
	case KeyArrowRight:
		return win.VK_RIGHT, nil
	default:
		return 0, fmt.Errorf("no virtual key for %v", k)
	}
}

// KeyDown presses a key.
func (w *WinKeySink) KeyDown(k Key) error {
	vk, err := virtualKey(k)
	if err != nil {
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk})
}

// KeyUp releases a key.
func (w *WinKeySink) KeyUp(k Key) error {
	vk, err := virtualKey(k)
	if err != nil {
		return err
	}
	return sendKeyboardInput(win.KEYBDINPUT{WVk: vk, DwFlags: win.KEYEVENTF_KEYUP})
}

// sendKeyboardInput dispatches a single keyboard input event.
func sendKeyboardInput(key win.KEYBDINPUT) error {
	input := win.INPUT{
		Type: win.INPUT_KEYBOARD,
		Ki:   key,
	}
	if win.SendInput(1, &input, int32(sizeofInput)) != 1 {
		return win.GetLastError()
	}
	return nil
}

var sizeofInput = uintptr(win.SizeofINPUT)
