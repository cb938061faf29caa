package app

import "quarkcube/hal"

// keyInput drains pending key events once per frame without blocking.
// Escape or q ends the run; F1 or h toggles the HUD.
type keyInput struct {
	kbd hal.Keyboard
	hud bool
}

func (k *keyInput) ShouldStop() bool {
	if k.kbd == nil {
		return false
	}
	ch := k.kbd.Events()
	stop := false
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return stop
			}
			if !ev.Press {
				continue
			}
			switch {
			case ev.Code == hal.KeyEscape, ev.Rune == 'q', ev.Rune == 'Q':
				stop = true
			case ev.Code == hal.KeyF1, ev.Rune == 'h', ev.Rune == 'H':
				k.hud = !k.hud
			}
		default:
			return stop
		}
	}
}
