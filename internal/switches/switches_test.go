package switches

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switches.yaml")
	content := `
- name: related-content
  exposed: true
  on: true
- name: internal-tooling
  exposed: false
  on: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	snapshot, err := Load(path)
	require.NoError(t, err)

	all := snapshot.All()
	require.Len(t, all, 2)
	assert.Equal(t, Switch{Name: "related-content", Exposed: true, On: true}, all[0])
	assert.Equal(t, Switch{Name: "internal-tooling", Exposed: false, On: true}, all[1])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read switches file")
}

func TestSnapshot_AllIsACopy(t *testing.T) {
	src := []Switch{{Name: "feature-x", Exposed: true, On: true}}
	snapshot := NewSnapshot(src)

	// Mutating either the source or the returned slice must not leak
	// into the snapshot.
	src[0].On = false
	got := snapshot.All()
	assert.True(t, got[0].On)

	got[0].Name = "mutated"
	assert.Equal(t, "feature-x", snapshot.All()[0].Name)
}
