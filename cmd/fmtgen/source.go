package main

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"fmtgen/internal/analyze"
	"fmtgen/internal/manifest"
	"fmtgen/internal/plan"
)

// sourceFlags selects where declarations come from.
type sourceFlags struct {
	manifests   []string
	packages    []string
	maxRoutines int
}

func (s *sourceFlags) register(flagSet *pflag.FlagSet) {
	flagSet.StringArrayVarP(&s.manifests, "manifest", "m", nil, "YAML manifest (repeatable)")
	flagSet.StringArrayVarP(&s.packages, "package", "p", nil, "package pattern scanned for //fmtgen:format directives (repeatable)")
	flagSet.IntVar(&s.maxRoutines, "max-routines", plan.DefaultConfig().MaxRoutines, "routine limit per declaration")
}

// load reads every selected manifest and scans every selected package.
func (s *sourceFlags) load(e *env) ([]*manifest.File, error) {
	if len(s.manifests) == 0 && len(s.packages) == 0 {
		return nil, errors.New("no declarations selected: pass --manifest or --package")
	}

	var files []*manifest.File

	for _, path := range s.manifests {
		f, err := manifest.LoadFile(path)
		if err != nil {
			return nil, err
		}

		e.logger.Debug("loaded manifest", "path", path, "declarations", len(f.Formats))
		files = append(files, f)
	}

	if len(s.packages) > 0 {
		found, err := analyze.NewAnalyzer().LoadPackages(s.packages...)
		if err != nil {
			return nil, err
		}

		for _, f := range found {
			e.logger.Debug("found directives", "package", f.Package, "dir", f.Dir, "declarations", len(f.Formats))
		}

		if len(found) == 0 {
			e.logger.Warn("no //fmtgen:format directives found", "patterns", s.packages)
		}

		files = append(files, found...)
	}

	return files, nil
}

func (s *sourceFlags) compiler() *plan.Compiler {
	config := plan.DefaultConfig()
	config.MaxRoutines = s.maxRoutines

	return plan.NewCompiler(nil, config)
}

// compileAll compiles every file. Programs are returned even when they
// fail so diagnostics can be reported; the error says how many failed.
func (s *sourceFlags) compileAll(e *env) ([]*plan.Program, error) {
	files, err := s.load(e)
	if err != nil {
		return nil, err
	}

	compiler := s.compiler()
	progs := make([]*plan.Program, 0, len(files))
	failed := 0

	for _, f := range files {
		prog, err := compiler.Compile(f)
		if err != nil {
			failed++
		}

		progs = append(progs, prog)
	}

	if failed > 0 {
		return progs, fmt.Errorf("%d of %d sources failed to compile", failed, len(files))
	}

	return progs, nil
}

// sourceName identifies a manifest in output.
func sourceName(f *manifest.File) string {
	return f.Package + " (" + f.OutputDir() + ")"
}
