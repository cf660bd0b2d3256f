package buildctx

import (
	"fmt"
	"strings"
)

// Report renders the accumulated logs and phase timers as a
// human-readable multi-line string, the equivalent of the teacher's
// BuildContext.dumpLog. Intended for optional diagnostics only — schedule
// never parses its own Report output.
func (c *Context) Report() string {
	var b strings.Builder
	fmt.Fprintln(&b, "schedule report:")
	for p := Phase(0); p < numPhases; p++ {
		if t := c.AccumulatedTime(p); t >= 0 {
			fmt.Fprintf(&b, "  %-20s %dus\n", p, t)
		}
	}
	for _, cat := range []LogCategory{LogProgress, LogWarning, LogError} {
		for _, msg := range c.Logs(cat) {
			fmt.Fprintln(&b, "  "+msg)
		}
	}
	return b.String()
}
