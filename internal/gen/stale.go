package gen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"fmtgen/internal/manifest"
)

// StaleReason says why a generated file is out of date.
type StaleReason string

const (
	// StaleMissing means the file of a declaration does not exist.
	StaleMissing StaleReason = "missing"
	// StaleChanged means the declaration changed since generation.
	StaleChanged StaleReason = "changed"
	// StaleForeign means the file exists but was not written by fmtgen.
	StaleForeign StaleReason = "not generated"
	// StaleOrphan means a generated file has no declaration anymore.
	StaleOrphan StaleReason = "orphan"
)

// StaleFile is one out-of-date file.
type StaleFile struct {
	Filename    string
	Declaration string
	Reason      StaleReason
	// Want and Have are the fingerprints of the declaration and the file.
	Want string
	Have string
}

func (s StaleFile) String() string {
	if s.Declaration == "" {
		return fmt.Sprintf("%s: %s", s.Filename, s.Reason)
	}

	return fmt.Sprintf("%s (%s): %s", s.Filename, s.Declaration, s.Reason)
}

// ReadFingerprint returns the fingerprint recorded in the header of a
// generated file.
func ReadFingerprint(content []byte) (string, bool) {
	scanner := bufio.NewScanner(bytes.NewReader(content))

	if !scanner.Scan() || scanner.Text() != Header {
		return "", false
	}

	if !scanner.Scan() {
		return "", false
	}

	fp, ok := strings.CutPrefix(scanner.Text(), FingerprintPrefix)
	if !ok {
		return "", false
	}

	return strings.TrimSpace(fp), true
}

// Stale compares the files in dir with the declarations of f and lists the
// ones that need regenerating, followed by orphaned generated files.
func Stale(f *manifest.File, dir string) ([]StaleFile, error) {
	var stale []StaleFile

	expected := make(map[string]bool, len(f.Formats))

	for i := range f.Formats {
		decl := &f.Formats[i]
		name := manifest.FileName(decl.Name)
		expected[name] = true

		want, err := manifest.Fingerprint(f, decl)
		if err != nil {
			return nil, err
		}

		entry := StaleFile{Filename: name, Declaration: decl.Name, Want: want}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			entry.Reason = StaleMissing
			stale = append(stale, entry)

			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		have, ok := ReadFingerprint(content)
		switch {
		case !ok:
			entry.Reason = StaleForeign
		case have != want:
			entry.Reason = StaleChanged
			entry.Have = have
		default:
			continue
		}

		stale = append(stale, entry)
	}

	orphans, err := findOrphans(dir, expected)
	if err != nil {
		return nil, err
	}

	return append(stale, orphans...), nil
}

func findOrphans(dir string, expected map[string]bool) ([]StaleFile, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var orphans []StaleFile

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || expected[name] || !strings.HasSuffix(name, manifest.FileSuffix) {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}

		if have, ok := ReadFingerprint(content); ok {
			orphans = append(orphans, StaleFile{Filename: name, Reason: StaleOrphan, Have: have})
		}
	}

	slices.SortFunc(orphans, func(a, b StaleFile) int {
		return strings.Compare(a.Filename, b.Filename)
	})

	return orphans, nil
}
