package switches

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Switch is one feature flag. Exposed marks it as surfaced to the
// rendering client; server-only switches stay out of the wire model.
type Switch struct {
	Name    string `yaml:"name"`
	Exposed bool   `yaml:"exposed"`
	On      bool   `yaml:"on"`
}

// Snapshot is an immutable, ordered view of the switch registry, captured
// once and safe for concurrent reads. Tests supply their own fixtures
// instead of touching any process-wide state.
type Snapshot struct {
	switches []Switch
}

func NewSnapshot(sw []Switch) *Snapshot {
	cp := make([]Switch, len(sw))
	copy(cp, sw)
	return &Snapshot{switches: cp}
}

// Load reads a switches file: a yaml list of {name, exposed, on} entries.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read switches file: %w", err)
	}

	var sw []Switch
	if err := yaml.Unmarshal(data, &sw); err != nil {
		return nil, fmt.Errorf("parse switches file: %w", err)
	}

	return NewSnapshot(sw), nil
}

// All returns the switches in registry order. The returned slice is a
// copy; callers cannot mutate the snapshot through it.
func (s *Snapshot) All() []Switch {
	cp := make([]Switch, len(s.switches))
	copy(cp, s.switches)
	return cp
}
