package buildctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContextLogging(t *testing.T) {
	c := New(true)
	c.Progressf("starting phase %d", 1)
	c.Warningf("refine budget exhausted")
	assert.Equal(t, []string{"starting phase 1"}, c.Logs(LogProgress))
	assert.Equal(t, []string{"refine budget exhausted"}, c.Logs(LogWarning))

	c.ResetLog()
	assert.Empty(t, c.Logs(LogProgress))
}

func TestContextDisabledLogging(t *testing.T) {
	c := New(false)
	c.Progressf("should not be recorded")
	assert.Empty(t, c.Logs(LogProgress))
}

func TestContextTimers(t *testing.T) {
	c := New(true)
	t0 := time.Unix(0, 0)
	nowFunc = func() time.Time { return t0 }
	c.StartTimer(PhaseRefinement)
	nowFunc = func() time.Time { return t0.Add(5 * time.Millisecond) }
	c.StopTimer(PhaseRefinement)

	assert.Equal(t, int64(5000), c.AccumulatedTime(PhaseRefinement))
	nowFunc = time.Now
}

func TestContextTimersDisabled(t *testing.T) {
	c := New(false)
	c.StartTimer(PhaseRefinement)
	c.StopTimer(PhaseRefinement)
	assert.Equal(t, int64(-1), c.AccumulatedTime(PhaseRefinement))
}
