//go:build !tinygo

package hal

import "time"

type hostClock struct {
	start time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func newHostClock() *hostClock {
	return &hostClock{start: time.Now(), now: time.Now, sleep: time.Sleep}
}

// NowMillis returns milliseconds since the clock was created.
func (c *hostClock) NowMillis() uint64 {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return uint64(d / time.Millisecond)
}

func (c *hostClock) Sleep(ms uint64) {
	if ms == 0 {
		return
	}
	c.sleep(time.Duration(ms) * time.Millisecond)
}
