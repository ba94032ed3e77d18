package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fmtgen/internal/diagnostic"
	"fmtgen/internal/gen"
	"fmtgen/internal/plan"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle    = lipgloss.NewStyle().Faint(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func runCheck(e *env, args []string) error {
	var (
		src     sourceFlags
		verbose bool
	)

	flagSet := newCommandFlags(e, "check")
	src.register(flagSet)
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "also print informational diagnostics")

	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	progs, compileErr := src.compileAll(e)
	if compileErr != nil && len(progs) == 0 {
		return compileErr
	}

	printProgramDiagnostics(e.stdout, progs, verbose)

	problems := 0

	for _, prog := range progs {
		if prog.Diagnostics.HasErrors() {
			problems++
			continue
		}

		stale, err := gen.Stale(prog.Manifest, prog.Manifest.OutputDir())
		if err != nil {
			return err
		}

		if len(stale) == 0 {
			fmt.Fprintf(e.stdout, "%s %s: %d declarations, %d routines\n",
				okStyle.Render("ok"), sourceName(prog.Manifest), len(prog.Formats), prog.RoutineCount())

			continue
		}

		problems++

		fmt.Fprintln(e.stdout, headingStyle.Render(sourceName(prog.Manifest)))

		for _, s := range stale {
			fmt.Fprintf(e.stdout, "  %s [%s] %s\n", warningStyle.Render("stale"), diagnostic.CodeStale, s)
		}
	}

	if problems > 0 {
		e.logger.Debug("check failed", "sources", len(progs), "failing", problems)
		return &exitError{code: 1}
	}

	return nil
}

// printProgramDiagnostics writes the diagnostics of every program, grouped
// by source. Errors pointing into a template get a caret line.
func printProgramDiagnostics(w io.Writer, progs []*plan.Program, verbose bool) {
	for _, prog := range progs {
		if prog == nil {
			continue
		}

		diags := prog.Diagnostics.All()
		if !verbose {
			diags = diags[:len(prog.Diagnostics.Errors)+len(prog.Diagnostics.Warnings)]
		}

		if len(diags) == 0 {
			continue
		}

		name := "<nil manifest>"
		if prog.Manifest != nil {
			name = sourceName(prog.Manifest)
		}

		fmt.Fprintln(w, headingStyle.Render(name))

		for _, d := range diags {
			fmt.Fprintf(w, "  %s %s\n", severityLabel(d.Severity), d)

			if line, ok := caretLine(prog, d); ok {
				fmt.Fprint(w, line)
			}
		}
	}
}

func severityLabel(s diagnostic.DiagnosticSeverity) string {
	label := fmt.Sprintf("%-7s", s)

	switch s {
	case diagnostic.DiagnosticError:
		return errorStyle.Render(label)
	case diagnostic.DiagnosticWarning:
		return warningStyle.Render(label)
	default:
		return infoStyle.Render(label)
	}
}

// caretLine renders the quoted template with a caret under the offset of d.
func caretLine(prog *plan.Program, d diagnostic.Diagnostic) (string, bool) {
	if d.Offset < 0 || d.Declaration == "" || prog.Manifest == nil {
		return "", false
	}

	decl, ok := prog.Manifest.Lookup(d.Declaration)
	if !ok || d.Offset > len(decl.Format) {
		return "", false
	}

	// Offsets count bytes of the raw template; the quoted form shifts them
	// by the opening quote and any escapes before the offset.
	shift := len(strconv.Quote(decl.Format[:d.Offset])) - 1
	indent := strings.Repeat(" ", 10)

	return fmt.Sprintf("%s%s\n%s%s%s\n",
		indent, strconv.Quote(decl.Format),
		indent, strings.Repeat(" ", shift), caretStyle.Render("^")), true
}
