package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greetingsYAML = `
package: greetings
output: ./out
formats:
  - name: Greeting
    format: "Hello %s, you are %3d"
    capacity: 48
    args: [string, "int|int64"]
    hook: describe
    doc: Greeting renders the welcome banner.
  - name: Ratio
    format: "%.2f%%"
    args:
      - [float32, float64]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(greetingsYAML))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "greetings", f.Package)
	assert.Equal(t, DefaultRuntime, f.Runtime)
	assert.True(t, f.AppendEnabled())
	require.Len(t, f.Formats, 2)

	g := f.Formats[0]
	assert.Equal(t, "Greeting", g.Name)
	assert.Equal(t, "greetings", g.Namespace)
	assert.Equal(t, "Hello %s, you are %3d", g.Format)
	assert.Equal(t, []KindNames{{"string"}, {"int", "int64"}}, g.Args)
	assert.Equal(t, "describe", g.Hook)

	capacity, ok := g.CapacityHint()
	assert.True(t, ok)
	assert.Equal(t, 48, capacity)

	r := f.Formats[1]
	assert.Equal(t, []KindNames{{"float32", "float64"}}, r.Args)

	_, ok = r.CapacityHint()
	assert.False(t, ok)

	d, ok := f.Lookup("Ratio")
	require.True(t, ok)
	assert.Same(t, &f.Formats[1], d)

	_, ok = f.Lookup("Missing")
	assert.False(t, ok)
}

func TestParseAppendDisabled(t *testing.T) {
	f, err := Parse([]byte("package: p\nappend: false\nruntime: example.com/rt\nformats: []\n"))
	require.NoError(t, err)

	assert.False(t, f.AppendEnabled())
	assert.Equal(t, "example.com/rt", f.Runtime)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(""))
	assert.ErrorContains(t, err, "empty document")

	_, err = Parse([]byte("package: p\nformatz: []\n"))
	assert.ErrorContains(t, err, "formatz")

	_, err = Parse([]byte("package: p\nformats:\n  - name: A\n    args: [{a: b}]\n"))
	assert.ErrorContains(t, err, "expected kind name")
}

func TestLoadFileAndOutputDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fmtgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(greetingsYAML), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, f.Dir)
	assert.Equal(t, filepath.Join(dir, "out"), f.OutputDir())

	f.Output = ""
	assert.Equal(t, dir, f.OutputDir())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshalRoundTrip(t *testing.T) {
	f, err := Parse([]byte(greetingsYAML))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(f, path))

	again, err := LoadFile(path)
	require.NoError(t, err)

	again.Dir = f.Dir
	assert.Equal(t, f, again)
}

func TestKindNamesYAML(t *testing.T) {
	assert.Equal(t, KindNames{"int", "int64"}, ParseKindNames(" int | int64 |"))
	assert.Equal(t, KindNames{}, ParseKindNames(""))
	assert.Equal(t, "int|int64", KindNames{"int", "int64"}.String())

	v, err := KindNames{"bool"}.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "bool", v)
}
