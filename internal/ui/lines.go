package ui

import (
	"fmt"
	"strings"
	"time"

	"orbitfx/internal/core"
)

// Title returns the panel heading for a scene name.
func Title(name string) string {
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " parameters"
}

// ParameterLines flattens a snapshot into display lines: a header per group
// followed by indented key/value rows.
func ParameterLines(snapshot core.ParameterSnapshot) []string {
	var lines []string
	for _, group := range snapshot.Groups {
		if len(group.Params) == 0 {
			continue
		}
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-22s %s", p.Key, p.Value))
		}
	}
	return lines
}

// StatusLine summarises host state for the bottom of the view.
func StatusLine(scene string, paused bool, elapsed time.Duration, seed int64) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s | %s | t=%s | seed=%d", scene, state, elapsed.Truncate(100*time.Millisecond), seed)
}
