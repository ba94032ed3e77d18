package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Dir = filepath.Dir(path)

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse manifest YAML: empty document")
		}

		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	ApplyDefaults(&f)

	return &f, nil
}

// ApplyDefaults fills in default values for optional fields.
func ApplyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Runtime == "" {
		f.Runtime = DefaultRuntime
	}

	if f.Append == nil {
		enabled := true
		f.Append = &enabled
	}

	for i := range f.Formats {
		d := &f.Formats[i]
		if d.Namespace == "" {
			d.Namespace = f.Package
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
