package plan

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"fmtgen/internal/common"
	"fmtgen/primitive"
)

// ExportedProgram is the YAML view of a Program.
type ExportedProgram struct {
	Package  string           `yaml:"package"`
	Routines int              `yaml:"routines"`
	Formats  []ExportedFormat `yaml:"formats"`
}

// ExportedFormat is the YAML view of a FormatPlan.
type ExportedFormat struct {
	Name     string            `yaml:"name"`
	Format   string            `yaml:"format"`
	Capacity int               `yaml:"capacity"`
	Slots    []ExportedSlot    `yaml:"slots,omitempty"`
	Routines []ExportedRoutine `yaml:"routines"`
}

// ExportedSlot is the YAML view of a Slot.
type ExportedSlot struct {
	Specifier string   `yaml:"specifier"`
	Offset    int      `yaml:"offset"`
	Kinds     []string `yaml:"kinds,flow"`
}

// ExportedRoutine is the YAML view of a Routine.
type ExportedRoutine struct {
	Name  string   `yaml:"name"`
	Kinds []string `yaml:"kinds,flow,omitempty"`
}

// Export builds the YAML view of prog.
func Export(prog *Program) *ExportedProgram {
	res := &ExportedProgram{
		Package:  prog.Package,
		Routines: prog.RoutineCount(),
		Formats:  make([]ExportedFormat, 0, len(prog.Formats)),
	}

	for _, fp := range prog.Formats {
		ef := ExportedFormat{
			Name:     fp.Declaration.Name,
			Format:   fp.Declaration.Format,
			Capacity: fp.Capacity,
		}

		for _, s := range fp.Slots {
			ef.Slots = append(ef.Slots, ExportedSlot{
				Specifier: s.Token.Spec.String(),
				Offset:    s.Token.Start,
				Kinds:     kindNames(s.Kinds),
			})
		}

		for _, r := range fp.Routines {
			ef.Routines = append(ef.Routines, ExportedRoutine{Name: r.Name, Kinds: kindNames(r.Kinds)})
		}

		res.Formats = append(res.Formats, ef)
	}

	return res
}

// ExportYAML lists the routines, kinds and capacities of prog as YAML.
func ExportYAML(prog *Program) ([]byte, error) {
	data, err := yaml.Marshal(Export(prog))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan: %w", err)
	}

	return data, nil
}

func kindNames(kinds []primitive.KindEnum) []string {
	if common.IsEmpty(kinds) {
		return nil
	}

	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.Name()
	}

	return names
}
