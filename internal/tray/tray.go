// Package tray provides the system tray menu for the daemon.
package tray

import (
	"log"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
)

// Tray manages the system tray icon and menu.
type Tray struct {
	onCycleMode  func()
	onQuit       func()
	once         sync.Once
	shuttingDown atomic.Bool
	menuCycle    *systray.MenuItem
	menuQuit     *systray.MenuItem
}

// New creates a tray. onCycleMode advances the stick mode; onQuit requests
// daemon shutdown.
func New(onCycleMode, onQuit func()) *Tray {
	return &Tray{onCycleMode: onCycleMode, onQuit: onQuit}
}

// Run initializes and runs the system tray. Blocks until Quit.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the tray is ready.
func (t *Tray) onReady() {
	systray.SetTitle("joykeys")
	systray.SetTooltip("joykeys stick daemon")

	t.menuCycle = systray.AddMenuItem("Cycle stick mode", "Advance analog/WASD/arrows")
	t.menuQuit = systray.AddMenuItem("Quit", "Stop the daemon")

	go t.handleMenuClicks()

	log.Println("system tray initialized")
}

// handleMenuClicks processes menu item clicks without blocking the tray.
func (t *Tray) handleMenuClicks() {
	for {
		select {
		case <-t.menuCycle.ClickedCh:
			if !t.shuttingDown.Load() && t.onCycleMode != nil {
				t.onCycleMode()
			}
		case <-t.menuQuit.ClickedCh:
			if t.shuttingDown.CompareAndSwap(false, true) {
				t.once.Do(t.onQuit)
				systray.Quit()
				return
			}
		}
	}
}

// onExit is called when the tray is exiting.
func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	log.Println("system tray exiting")
}
