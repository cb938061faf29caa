//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow needs a cgo window backend; use RunHeadless instead.
func RunWindow(HostConfig, func(HAL) func() error) error {
	return errors.New("hal: window mode requires cgo (CGO_ENABLED=1)")
}

// hostKeyboard never produces events without a window.
type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }
