package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"fmtgen/internal/gen"
	"fmtgen/internal/plan"
	"fmtgen/primitive"
)

func runPreview(e *env, args []string) error {
	var (
		src      sourceFlags
		name     string
		rawArgs  []string
		showCode bool
	)

	flagSet := newCommandFlags(e, "preview")
	src.register(flagSet)
	flagSet.StringVarP(&name, "name", "n", "", "declaration to render (required)")
	flagSet.StringArrayVar(&rawArgs, "arg", nil, "argument as kind:value, or a bare string (repeatable)")
	flagSet.BoolVar(&showCode, "code", false, "also print the generated code of the selected routine")

	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	if name == "" {
		return errors.New("preview: --name is required")
	}

	progs, err := src.compileAll(e)
	if err != nil {
		printProgramDiagnostics(e.stderr, progs, false)
		return err
	}

	prog, fp, err := findFormat(progs, name)
	if err != nil {
		return err
	}

	kinds, values, err := parseArgs(rawArgs)
	if err != nil {
		return err
	}

	routine, err := fp.Routine(kinds...)
	if err != nil {
		return err
	}

	var opts plan.RenderOptions

	if hook := fp.Declaration.Hook; hook != "" {
		e.logger.Warn("hook is not callable in preview, using fmt.Sprint", "hook", hook)
		opts.Hook = func(v any) string { return fmt.Sprint(v) }
	}

	out, err := routine.RenderWith(opts, values...)
	if err != nil {
		return err
	}

	e.logger.Debug("rendered", "routine", routine.Name, "capacity", routine.Capacity, "length", len(out))
	fmt.Fprintln(e.stdout, out)

	if !showCode {
		return nil
	}

	code, err := routineSource(prog, fp, routine)
	if err != nil {
		return err
	}

	formatter := "noop"
	if isTerminal(e.stdout) {
		formatter = "terminal256"
	}

	fmt.Fprintln(e.stdout)

	return quick.Highlight(e.stdout, code, "go", formatter, "monokai")
}

func findFormat(progs []*plan.Program, name string) (*plan.Program, *plan.FormatPlan, error) {
	var known []string

	for _, prog := range progs {
		if fp, ok := prog.Lookup(name); ok {
			return prog, fp, nil
		}

		for _, fp := range prog.Formats {
			known = append(known, fp.Declaration.Name)
		}
	}

	return nil, nil, fmt.Errorf("no declaration %q (have %s)", name, strings.Join(known, ", "))
}

// parseArgs turns kind:value pairs into argument kinds and values. Text
// without a known kind prefix is a string.
func parseArgs(raw []string) ([]primitive.KindEnum, []any, error) {
	kinds := make([]primitive.KindEnum, len(raw))
	values := make([]any, len(raw))

	for i, r := range raw {
		kind, text := primitive.KindString, r

		if prefix, rest, ok := strings.Cut(r, ":"); ok {
			if k, known := primitive.ParseKind(prefix); known {
				kind, text = k, rest
			}
		}

		v, err := kind.ParseValue(text)
		if err != nil {
			return nil, nil, fmt.Errorf("--arg %s: %w", strconv.Quote(r), err)
		}

		kinds[i], values[i] = kind, v
	}

	return kinds, values, nil
}

// routineSource generates the file of fp and cuts out the functions of r.
func routineSource(prog *plan.Program, fp *plan.FormatPlan, r *plan.Routine) (string, error) {
	file, err := gen.NewGenerator(gen.DefaultGeneratorConfig()).GenerateFormat(prog.Manifest, fp)
	if err != nil {
		return "", err
	}

	fset := token.NewFileSet()

	parsed, err := parser.ParseFile(fset, file.Filename, file.Content, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parsing generated %s: %w", file.Filename, err)
	}

	var parts []string

	for _, decl := range parsed.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || (fn.Name.Name != r.Name && fn.Name.Name != "Append"+r.Name) {
			continue
		}

		start := fn.Pos()
		if fn.Doc != nil {
			start = fn.Doc.Pos()
		}

		parts = append(parts, string(file.Content[fset.Position(start).Offset:fset.Position(fn.End()).Offset]))
	}

	return strings.Join(parts, "\n\n") + "\n", nil
}
