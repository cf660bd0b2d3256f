// Package buildctx provides the scheduler's progress/log/timer context:
// an optional, never-blocking facility threaded through schedule.Run calls
// for diagnostics (spec.md §5, §9). Adapted from the teacher's
// rcContext/BuildContext pair (arl-go-detour's rccontext.go,
// buildcontext.go): the same enable-by-flag shape and named-timer
// accumulation, repurposed from recast's voxelization phases to the
// scheduler's own phases (group composition, bounding-box search,
// refinement, zone building).
package buildctx

import "fmt"

// LogCategory classifies a logged message.
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota
	LogWarning
	LogError
)

// Phase names a timed section of scheduling work.
type Phase int

const (
	PhaseZoneBuild Phase = iota
	PhaseGroupComposition
	PhaseBoundingBoxSearch
	PhaseRefinement
	PhasePrintabilityCheck
	numPhases
)

func (p Phase) String() string {
	switch p {
	case PhaseZoneBuild:
		return "zone_build"
	case PhaseGroupComposition:
		return "group_composition"
	case PhaseBoundingBoxSearch:
		return "bounding_box_search"
	case PhaseRefinement:
		return "refinement"
	case PhasePrintabilityCheck:
		return "printability_check"
	default:
		return "unknown"
	}
}

type logEntry struct {
	category LogCategory
	msg      string
}

// Context carries optional logging and timer state through one call to
// schedule.Run. The zero value is usable and disabled; New switches both
// facilities on or off from one flag, same as the teacher's single on/off
// constructor.
type Context struct {
	logEnabled   bool
	timerEnabled bool
	logs         []logEntry
	timers       [numPhases]timer
}

// New returns a Context with logging and timing both enabled or both
// disabled per state.
func New(state bool) *Context {
	return &Context{logEnabled: state, timerEnabled: state}
}

// EnableLog toggles logging at runtime.
func (c *Context) EnableLog(state bool) { c.logEnabled = state }

// EnableTimer toggles timers at runtime.
func (c *Context) EnableTimer(state bool) { c.timerEnabled = state }

// ResetLog discards all accumulated log entries.
func (c *Context) ResetLog() { c.logs = nil }

// Logf appends a formatted message under category if logging is enabled.
func (c *Context) Logf(category LogCategory, format string, args ...interface{}) {
	if !c.logEnabled {
		return
	}
	c.logs = append(c.logs, logEntry{category: category, msg: fmt.Sprintf(format, args...)})
}

func (c *Context) Progressf(format string, args ...interface{}) { c.Logf(LogProgress, format, args...) }
func (c *Context) Warningf(format string, args ...interface{})  { c.Logf(LogWarning, format, args...) }
func (c *Context) Errorf(format string, args ...interface{})    { c.Logf(LogError, format, args...) }

// Logs returns every log entry recorded in category, in order.
func (c *Context) Logs(category LogCategory) []string {
	var out []string
	for _, e := range c.logs {
		if e.category == category {
			out = append(out, e.msg)
		}
	}
	return out
}
