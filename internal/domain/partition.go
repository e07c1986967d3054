package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/fnpack/internal/model"
)

// ErrUnknownEnvironment is returned for an entry point whose environment
// is neither isolate nor extended.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Partition groups entry points by environment, keeping discovery order
// within each group.
func Partition(entryPoints []m.EntryPoint) (m.EnvironmentSet, error) {
	set := m.EnvironmentSet{
		Isolate:  []m.EntryPoint{},
		Extended: []m.EntryPoint{},
	}

	for _, ep := range entryPoints {
		switch ep.Environment {
		case m.EnvironmentIsolate:
			set.Isolate = append(set.Isolate, ep)
		case m.EnvironmentExtended:
			set.Extended = append(set.Extended, ep)
		default:
			return m.EnvironmentSet{}, fmt.Errorf("%w %q for entry point %s", ErrUnknownEnvironment, ep.Environment, ep.Path)
		}
	}

	return set, nil
}
