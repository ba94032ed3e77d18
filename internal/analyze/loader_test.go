package analyze

import (
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fmtgen/internal/manifest"
)

func loadTestdata(t *testing.T, name string) ([]*manifest.File, error) {
	t.Helper()

	analyzer := NewAnalyzer()
	analyzer.Dir = filepath.Join("testdata", name)

	return analyzer.LoadPackages(".")
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	files, err := loadTestdata(t, "annotated")
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "annotated", f.Package)
	assert.True(t, filepath.IsAbs(f.OutputDir()), f.OutputDir())
	assert.Equal(t, "annotated", filepath.Base(f.OutputDir()))
	assert.Equal(t, manifest.DefaultRuntime, f.Runtime)
	assert.True(t, f.AppendEnabled())

	names := make([]string, len(f.Formats))
	for i, d := range f.Formats {
		names[i] = d.Name
	}

	if !assert.Equal(t, []string{"Greeting", "First", "Second", "Table"}, names) {
		spew.Dump(f.Formats)
	}

	greeting := f.Formats[0]
	assert.Equal(t, "fmtgen/internal/analyze/testdata/annotated", greeting.Namespace)
	assert.Equal(t, "Hello %s, you are %3d", greeting.Format)
	assert.Equal(t, "describe", greeting.Hook)
	assert.Equal(t, []manifest.KindNames{{"string"}, {"int", "int64"}}, greeting.Args)

	hint, ok := greeting.CapacityHint()
	assert.True(t, ok)
	assert.Equal(t, 48, hint)

	assert.Equal(t, "%s!", f.Formats[1].Format)
	assert.Equal(t, "%d?", f.Formats[2].Format)
	assert.Nil(t, f.Formats[1].Capacity)

	table := f.Formats[3]
	assert.Equal(t, "%-8s %6.2f", table.Format)
	require.Len(t, table.Args, 2)
	assert.Empty(t, table.Args[0])
	assert.Equal(t, manifest.KindNames{"float64"}, table.Args[1])
}

func TestAnalyzer_LoadPackages_NoDirectives(t *testing.T) {
	files, err := loadTestdata(t, "plain")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestAnalyzer_LoadPackages_Errors(t *testing.T) {
	_, err := loadTestdata(t, "notstring")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a string constant")

	_, err = loadTestdata(t, "multiname")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name= cannot be used on a multi-constant spec")
}

func TestIsDirective(t *testing.T) {
	assert.True(t, IsDirective("//fmtgen:format"))
	assert.True(t, IsDirective("//fmtgen:format name=X"))
	assert.False(t, IsDirective("// fmtgen:format"))
	assert.False(t, IsDirective("//fmtgen:formats"))
	assert.False(t, IsDirective("//go:generate stringer"))
}

func TestParseDirective(t *testing.T) {
	d, err := ParseDirective("//fmtgen:format name=Greeting capacity=48 args=string,int|int64,,any hook=describe")
	require.NoError(t, err)
	assert.Equal(t, "Greeting", d.Name)
	require.NotNil(t, d.Capacity)
	assert.Equal(t, 48, *d.Capacity)
	assert.Equal(t, "describe", d.Hook)
	require.Len(t, d.Args, 4)
	assert.Equal(t, manifest.KindNames{"int", "int64"}, d.Args[1])
	assert.Empty(t, d.Args[2])

	d, err = ParseDirective("//fmtgen:format")
	require.NoError(t, err)
	assert.Equal(t, Directive{}, d)

	for _, bad := range []string{
		"//fmtgen:format name",
		"//fmtgen:format name=",
		"//fmtgen:format capacity=lots",
		"//fmtgen:format color=red",
		"// not a directive",
	} {
		_, err := ParseDirective(bad)
		assert.Error(t, err, bad)
	}
}

func TestDefaultName(t *testing.T) {
	assert.Equal(t, "Greeting", DefaultName("greetingFormat"))
	assert.Equal(t, "Greeting", DefaultName("GreetingFormat"))
	assert.Equal(t, "Layout", DefaultName("layout"))
	assert.Equal(t, "Format", DefaultName("Format"))
}
