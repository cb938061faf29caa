package spincube

// Clock supplies monotonic milliseconds and a blocking sleep.
type Clock interface {
	NowMillis() uint64
	Sleep(ms uint64)
}

// Pacer caps the loop at one frame per TargetMillis.
type Pacer struct {
	TargetMillis uint64

	last uint64
}

// Wait sleeps for whatever is left of the frame budget since the previous
// call, then records the current time as the start of the next frame.
// It returns the requested sleep in milliseconds.
func (p *Pacer) Wait(c Clock) uint64 {
	target := int64(p.TargetMillis)
	wait := target - (int64(c.NowMillis()) - int64(p.last))

	var slept uint64
	if wait > 0 && wait <= target {
		slept = uint64(wait)
		c.Sleep(slept)
	}
	p.last = c.NowMillis()
	return slept
}

// Last returns the timestamp recorded by the previous Wait.
func (p *Pacer) Last() uint64 { return p.last }
