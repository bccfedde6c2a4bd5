package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// State classifies the script occupying a hook slot.
type State int

const (
	// StateMissing means no file occupies the slot.
	StateMissing State = iota
	// StateCurrent means the slot holds a script from this husk version.
	StateCurrent
	// StateStale means the slot holds a script from another husk
	// version. Stale hooks are never upgraded in place; reinstalling
	// requires deleting the file first.
	StateStale
	// StateForeign means the slot holds content husk did not write.
	StateForeign
)

func (s State) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateCurrent:
		return "installed"
	case StateStale:
		return "stale"
	case StateForeign:
		return "foreign"
	default:
		return "unknown"
	}
}

// Status describes one hook slot.
type Status struct {
	Hook     string
	Path     string
	State    State
	Version  string // husk version found in the marker, if any
	Homepage string // homepage recorded in the marker, if any
}

// InspectHook classifies the file occupying one hook slot against the
// current provenance marker.
func InspectHook(hooksDir, name, marker string) Status {
	path := filepath.Join(hooksDir, name)
	st := Status{Hook: name, Path: path}

	line, ok, err := thirdLine(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		st.State = StateMissing
	case err != nil, !ok:
		st.State = StateForeign
	case !strings.Contains(line, markerPrefix):
		st.State = StateForeign
	default:
		if m := markerRe.FindStringSubmatch(line); m != nil {
			st.Version = m[1]
			st.Homepage = m[2]
		}
		if line == marker {
			st.State = StateCurrent
		} else {
			st.State = StateStale
		}
	}
	return st
}

// InspectAll reports the state of every fixed hook slot, followed by
// any other hooks found in the hooks directory (adopted user hooks,
// scripts from other tools). git's *.sample files are ignored.
func InspectAll(controlDir, version, homepage string) ([]Status, error) {
	hooksDir := filepath.Join(controlDir, "hooks")
	marker := markerLine(version, homepage)

	statuses := make([]Status, 0, len(FixedHooks))
	for _, name := range FixedHooks {
		statuses = append(statuses, InspectHook(hooksDir, name, marker))
	}

	entries, err := os.ReadDir(hooksDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return statuses, nil
		}
		return nil, fmt.Errorf("read %s: %w", hooksDir, err)
	}
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || slices.Contains(FixedHooks, name) || strings.HasSuffix(name, ".sample") {
			continue
		}
		statuses = append(statuses, InspectHook(hooksDir, name, marker))
	}
	return statuses, nil
}
