package buildctx

import "time"

// timer accumulates wall-clock time for one Phase across possibly several
// start/stop spans, mirroring the teacher's per-label accumulator
// (arl-go-detour's timers were keyed by rcTimerLabel; here by Phase).
type timer struct {
	running  bool
	started  time.Time
	accumMus int64
}

// StartTimer begins timing phase p if timers are enabled.
func (c *Context) StartTimer(p Phase) {
	if !c.timerEnabled {
		return
	}
	c.timers[p].running = true
	c.timers[p].started = nowFunc()
}

// StopTimer ends timing phase p, adding the elapsed span to its
// accumulated total.
func (c *Context) StopTimer(p Phase) {
	if !c.timerEnabled || !c.timers[p].running {
		return
	}
	c.timers[p].accumMus += nowFunc().Sub(c.timers[p].started).Microseconds()
	c.timers[p].running = false
}

// AccumulatedTime returns the total microseconds spent in phase p, or -1 if
// timers are disabled.
func (c *Context) AccumulatedTime(p Phase) int64 {
	if !c.timerEnabled {
		return -1
	}
	return c.timers[p].accumMus
}

// nowFunc is a seam for deterministic timer tests.
var nowFunc = time.Now
