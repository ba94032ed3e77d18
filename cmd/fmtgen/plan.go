package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fmtgen/internal/plan"
)

func runPlan(e *env, args []string) error {
	var (
		src    sourceFlags
		asYAML bool
		name   string
	)

	flagSet := newCommandFlags(e, "plan")
	src.register(flagSet)
	flagSet.BoolVar(&asYAML, "yaml", false, "print the plan as YAML")
	flagSet.StringVarP(&name, "name", "n", "", "only this declaration")

	if ok, err := parseFlags(flagSet, args); !ok {
		return err
	}

	progs, err := src.compileAll(e)
	if err != nil {
		printProgramDiagnostics(e.stderr, progs, false)
		return err
	}

	for _, prog := range progs {
		if name != "" {
			fp, ok := prog.Lookup(name)
			if !ok {
				continue
			}

			filtered := *prog
			filtered.Formats = []*plan.FormatPlan{fp}
			prog = &filtered
		}

		if asYAML {
			data, err := plan.ExportYAML(prog)
			if err != nil {
				return err
			}

			if _, err := e.stdout.Write(data); err != nil {
				return err
			}

			continue
		}

		writePlan(e.stdout, prog)
	}

	return nil
}

func writePlan(w io.Writer, prog *plan.Program) {
	fmt.Fprintf(w, "%s: %d routines\n", headingStyle.Render(sourceName(prog.Manifest)), prog.RoutineCount())

	for _, fp := range prog.Formats {
		fmt.Fprintf(w, "  %s %s capacity=%d\n", fp.Declaration.Name, strconv.Quote(fp.Declaration.Format), fp.Capacity)

		for _, s := range fp.Slots {
			kinds := make([]string, len(s.Kinds))
			for i, k := range s.Kinds {
				kinds[i] = k.Name()
			}

			fmt.Fprintf(w, "    slot %d %-8s %s\n", s.Index, s.Token.Spec.String(), strings.Join(kinds, "|"))
		}

		for _, r := range fp.Routines {
			params := make([]string, len(r.Kinds))
			for i, k := range r.Kinds {
				params[i] = k.Name()
			}

			fmt.Fprintf(w, "    %s(%s)\n", r.Name, strings.Join(params, ", "))
		}
	}
}
