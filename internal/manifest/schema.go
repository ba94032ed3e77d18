package manifest

import "path/filepath"

// DefaultRuntime is the import path of the runtime generated code calls.
const DefaultRuntime = "fmtgen/fastfmt"

// File is one manifest: a Go package worth of format declarations.
type File struct {
	Version string `yaml:"version"`
	// Package is the Go package name of the generated files.
	Package string `yaml:"package"`
	// Output is the directory generated files go to, relative to Dir.
	Output string `yaml:"output,omitempty"`
	// Runtime is the import path of the fastfmt runtime.
	Runtime string `yaml:"runtime,omitempty"`
	// Append enables the AppendXxx variant of every routine.
	Append  *bool         `yaml:"append,omitempty"`
	Formats []Declaration `yaml:"formats"`

	// Dir is the directory relative paths are resolved against. LoadFile
	// sets it to the manifest's directory.
	Dir string `yaml:"-"`
}

// Declaration is one format: a template plus the name of the functions
// generated from it.
type Declaration struct {
	Name string `yaml:"name"`
	// Namespace is the Go package path or manifest package owning it.
	Namespace string `yaml:"namespace,omitempty"`
	Format    string `yaml:"format"`
	// Capacity overrides the estimated output length.
	Capacity *int `yaml:"capacity,omitempty"`
	// Args restricts the kinds of each specifier slot, in slot order.
	Args []KindNames `yaml:"args,omitempty"`
	// Hook names a func(any) string used to render %s of KindAny.
	Hook string `yaml:"hook,omitempty"`
	Doc  string `yaml:"doc,omitempty"`
}

// KindNames lists the kind names allowed for one slot.
type KindNames []string

// AppendEnabled reports whether AppendXxx variants are generated.
func (f *File) AppendEnabled() bool {
	return f.Append == nil || *f.Append
}

// OutputDir returns the output directory with Dir applied.
func (f *File) OutputDir() string {
	out := f.Output
	if out == "" {
		out = "."
	}

	if filepath.IsAbs(out) || f.Dir == "" {
		return filepath.Clean(out)
	}

	return filepath.Join(f.Dir, out)
}

// Lookup returns the declaration called name.
func (f *File) Lookup(name string) (*Declaration, bool) {
	for i := range f.Formats {
		if f.Formats[i].Name == name {
			return &f.Formats[i], true
		}
	}

	return nil, false
}

// CapacityHint returns the explicit capacity and whether one was given.
func (d *Declaration) CapacityHint() (int, bool) {
	if d.Capacity == nil {
		return 0, false
	}

	return *d.Capacity, true
}
