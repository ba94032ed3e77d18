package plan

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fmtgen/internal/common"
	"fmtgen/internal/diagnostic"
	"fmtgen/internal/format"
	"fmtgen/internal/manifest"
	"fmtgen/internal/match"
	"fmtgen/internal/registry"
	"fmtgen/primitive"
)

// Config controls compilation.
type Config struct {
	// MaxRoutines caps the routines generated for one declaration
	// (0 = unlimited).
	MaxRoutines int
	// MaxSuggestions is the number of kind names suggested for a misspelt one.
	MaxSuggestions int
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return Config{
		MaxRoutines:    4096,
		MaxSuggestions: 3,
	}
}

// Compiler turns declarations into plans using one registry.
type Compiler struct {
	registry *registry.Registry
	config   Config
}

// NewCompiler creates a compiler. A nil registry means registry.Default().
func NewCompiler(reg *registry.Registry, config Config) *Compiler {
	if reg == nil {
		reg = registry.Default()
	}

	return &Compiler{registry: reg, config: config}
}

// Compile compiles every declaration of f. Failures are collected as
// diagnostics; if any error is found the returned program has no plans and
// the error joins all of them.
func (c *Compiler) Compile(f *manifest.File) (*Program, error) {
	prog := &Program{Manifest: f}
	prog.Diagnostics.Merge(*manifest.Validate(f))

	if f == nil {
		return prog, prog.Diagnostics.Error()
	}

	prog.Package = f.Package
	owners := map[string]string{}

	for i := range f.Formats {
		decl := &f.Formats[i]

		fp, err := c.CompileOne(decl)
		if err != nil {
			addCompileError(&prog.Diagnostics, decl.Name, err)
			continue
		}

		for _, r := range fp.Routines {
			names := []string{r.Name}
			if f.AppendEnabled() {
				names = append(names, "Append"+r.Name)
			}

			for _, name := range names {
				if owner, ok := owners[name]; ok {
					prog.Diagnostics.AddError(diagnostic.CodeDuplicateRoutine,
						fmt.Sprintf("function %s is also generated for %s", name, owner), decl.Name, diagnostic.NoOffset)

					continue
				}

				owners[name] = decl.Name
			}
		}

		prog.Formats = append(prog.Formats, fp)
	}

	if prog.Diagnostics.HasErrors() {
		prog.Formats = nil
		return prog, prog.Diagnostics.Error()
	}

	return prog, nil
}

func addCompileError(diags *diagnostic.Diagnostics, name string, err error) {
	var (
		parseErr   *format.ParseError
		convErr    *format.UnknownConversionError
		typeErr    *TypeMismatchError
		unknownErr *UnknownKindError
	)

	switch {
	case errors.As(err, &parseErr):
		diags.AddErr(diagnostic.CodeParse, name, parseErr.Offset, err)
	case errors.As(err, &convErr):
		diags.AddErr(diagnostic.CodeUnknownConversion, name, convErr.Offset, err)
	case errors.As(err, &typeErr):
		offset := typeErr.Offset
		if typeErr.Slot < 0 {
			offset = diagnostic.NoOffset
		}

		diags.AddErr(diagnostic.CodeTypeMismatch, name, offset, err)
	case errors.As(err, &unknownErr):
		diags.AddErr(diagnostic.CodeUnknownKind, name, diagnostic.NoOffset, err, unknownErr.Suggestions...)
	case errors.Is(err, ErrTooManyRoutines):
		diags.AddErr(diagnostic.CodeTooManyRoutines, name, diagnostic.NoOffset, err)
	default:
		diags.AddErr(diagnostic.CodeInvalidDeclaration, name, diagnostic.NoOffset, err)
	}
}

// CompileOne compiles a single declaration.
func (c *Compiler) CompileOne(decl *manifest.Declaration) (*FormatPlan, error) {
	tokens, err := format.ParseDeclaration(decl.Name, decl.Format, c.registry)
	if err != nil {
		return nil, err
	}

	slots, err := c.resolveSlots(decl, tokens)
	if err != nil {
		return nil, err
	}

	count, err := c.routineCount(decl, slots)
	if err != nil {
		return nil, err
	}

	fp := &FormatPlan{
		Declaration: *decl,
		Tokens:      tokens,
		Slots:       slots,
		Capacity:    estimateCapacity(decl, tokens, slots),
	}

	fp.Routines = make([]*Routine, 0, count)
	for kinds := range kindProduct(slots) {
		fp.Routines = append(fp.Routines, &Routine{
			Kinds:    kinds,
			Steps:    buildSteps(tokens, slots, kinds),
			Capacity: fp.Capacity,
		})
	}

	single := common.IsSingle(fp.Routines)
	for _, r := range fp.Routines {
		r.Name = routineName(decl.Name, r.Kinds, single)
	}

	return fp, nil
}

// resolveSlots looks up the rule of every specifier and narrows its kinds
// to the declaration's Args.
func (c *Compiler) resolveSlots(decl *manifest.Declaration, tokens []format.Token) ([]Slot, error) {
	specs := format.Specifiers(tokens)

	if decl.Args != nil && len(decl.Args) != len(specs) {
		return nil, &TypeMismatchError{Declaration: decl.Name, Slot: -1, Want: len(specs), Have: len(decl.Args)}
	}

	slots := make([]Slot, 0, len(specs))

	for i, tok := range specs {
		rule, err := c.registry.Lookup(tok.Spec.Conversion)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", decl.Name, err)
		}

		kinds := rule.Kinds
		if decl.Args != nil && len(decl.Args[i]) > 0 {
			kinds, err = c.narrowKinds(decl, i, tok, rule, decl.Args[i])
			if err != nil {
				return nil, err
			}
		}

		slots = append(slots, Slot{Index: i, Token: tok, Rule: rule, Kinds: kinds})
	}

	return slots, nil
}

func (c *Compiler) narrowKinds(
	decl *manifest.Declaration,
	slot int,
	tok format.Token,
	rule *registry.Rule,
	names manifest.KindNames,
) ([]primitive.KindEnum, error) {
	var kinds []primitive.KindEnum

	for _, name := range names {
		k, ok := primitive.ParseKind(strings.ToLower(name))
		if !ok {
			return nil, &UnknownKindError{
				Declaration: decl.Name,
				Slot:        slot,
				Name:        name,
				Suggestions: match.Suggest(name, primitive.KindNames(), c.config.MaxSuggestions),
			}
		}

		if !rule.AcceptsKind(k) {
			return nil, &TypeMismatchError{
				Declaration: decl.Name,
				Slot:        slot,
				Offset:      tok.Start,
				Conversion:  tok.Spec.Verb(),
				Got:         k,
				Accepted:    rule.Kinds,
			}
		}

		if !slices.Contains(kinds, k) {
			kinds = append(kinds, k)
		}
	}

	return kinds, nil
}

// routineCount returns the size of the kind product, failing as soon as it
// passes the configured ceiling.
func (c *Compiler) routineCount(decl *manifest.Declaration, slots []Slot) (int, error) {
	count := 1

	for _, s := range slots {
		count *= len(s.Kinds)
		if c.config.MaxRoutines > 0 && count > c.config.MaxRoutines {
			return 0, fmt.Errorf("%s: more than %d routines: %w", decl.Name, c.config.MaxRoutines, ErrTooManyRoutines)
		}
	}

	return count, nil
}

func estimateCapacity(decl *manifest.Declaration, tokens []format.Token, slots []Slot) int {
	if hint, ok := decl.CapacityHint(); ok {
		return hint
	}

	n := 0
	for _, t := range tokens {
		if t.IsLiteral() {
			n += len(t.Text)
		}
	}

	for _, s := range slots {
		n += s.Rule.EstimateFor(s.Token.Spec)
	}

	return n
}

func buildSteps(tokens []format.Token, slots []Slot, kinds []primitive.KindEnum) []Step {
	steps := make([]Step, 0, len(tokens))
	slot := 0

	for _, t := range tokens {
		if t.IsLiteral() {
			steps = append(steps, Step{Kind: StepLiteral, Literal: t.Text})
			continue
		}

		steps = append(steps, Step{
			Kind:    StepSpecifier,
			Slot:    slot,
			Offset:  t.Start,
			ArgKind: kinds[slot],
			Spec:    t.Spec,
			Rule:    slots[slot].Rule,
		})
		slot++
	}

	return steps
}

func routineName(name string, kinds []primitive.KindEnum, single bool) string {
	if single {
		return name
	}

	var sb strings.Builder

	sb.WriteString(name)

	for _, k := range kinds {
		sb.WriteString(k.Suffix())
	}

	return sb.String()
}
