package dotcomponents

import (
	"fmt"

	"dotcomponents/internal/switches"
)

// NormalizeSwitches builds the client-facing switch map from a registry
// snapshot. Switches not flagged as exposed never appear, whatever their
// state. Hyphenated registry names become camel-styled keys; two exposed
// switches normalizing to the same key is a configuration defect and
// fails the build of the map rather than silently dropping a state.
func NormalizeSwitches(snapshot *switches.Snapshot) (map[string]bool, error) {
	out := make(map[string]bool)
	sources := make(map[string]string)

	for _, sw := range snapshot.All() {
		if !sw.Exposed {
			continue
		}

		key := CamelCase(sw.Name)
		if prev, ok := sources[key]; ok {
			return nil, fmt.Errorf("switch name collision: %q and %q both normalize to %q", prev, sw.Name, key)
		}
		sources[key] = sw.Name
		out[key] = sw.On
	}

	return out, nil
}
