package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"fmtgen/internal/gen"
	"fmtgen/internal/plan"
)

func runGen(e *env, args []string) error {
	var (
		src        sourceFlags
		outputDir  string
		dryRun     bool
		noComments bool
	)

	flagSet := newCommandFlags(e, "gen")
	src.register(flagSet)
	flagSet.StringVarP(&outputDir, "output", "o", "", "output directory (overrides the manifest's)")
	flagSet.BoolVar(&dryRun, "dry-run", false, "print generated files instead of writing them")
	flagSet.BoolVar(&noComments, "no-comments", false, "omit doc comments on generated functions")

	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	progs, err := src.compileAll(e)
	if err != nil {
		printProgramDiagnostics(e.stderr, progs, true)
		return err
	}

	if outputDir != "" && len(progs) > 1 {
		return errors.New("--output needs a single manifest or package")
	}

	for _, prog := range progs {
		dir := prog.Manifest.OutputDir()
		if outputDir != "" {
			dir = outputDir
		}

		if err := generateProgram(e, prog, dir, dryRun, !noComments); err != nil {
			return err
		}
	}

	return nil
}

func generateProgram(e *env, prog *plan.Program, dir string, dryRun, comments bool) error {
	config := gen.DefaultGeneratorConfig()
	config.GenerateComments = comments

	if !dryRun {
		config.DebugDir = dir
	}

	files, err := gen.NewGenerator(config).Generate(prog)
	if err != nil {
		return fmt.Errorf("%s: %w", prog.Package, err)
	}

	logger := e.logger.With("package", prog.Package, "dir", dir)

	if dryRun {
		for _, f := range files {
			fmt.Fprintf(e.stdout, "// %s\n%s\n", filepath.Join(dir, f.Filename), f.Content)
		}

		logger.Info("dry run", "files", len(files), "routines", prog.RoutineCount())

		return nil
	}

	written, err := gen.WriteFiles(files, dir)
	if err != nil {
		return err
	}

	for _, name := range written {
		logger.Debug("wrote file", "file", name)
	}

	logger.Info("generated",
		"files", len(files),
		"written", len(written),
		"unchanged", len(files)-len(written),
		"routines", prog.RoutineCount(),
	)

	return nil
}
