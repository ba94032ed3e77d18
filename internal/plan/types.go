package plan

import (
	"fmtgen/internal/diagnostic"
	"fmtgen/internal/format"
	"fmtgen/internal/manifest"
	"fmtgen/internal/registry"
	"fmtgen/primitive"
)

// Program is the compiled form of one manifest.
type Program struct {
	// Package is the Go package name of the generated code.
	Package string
	// Manifest is the compiled manifest.
	Manifest *manifest.File
	// Formats holds one plan per declaration, in manifest order.
	Formats []*FormatPlan
	// Diagnostics contains all warnings and errors from compilation.
	Diagnostics diagnostic.Diagnostics
}

// FormatPlan is one compiled declaration.
type FormatPlan struct {
	Declaration manifest.Declaration
	Tokens      []format.Token
	Slots       []Slot
	// Routines are ordered like the Cartesian product of slot kinds.
	Routines []*Routine
	// Capacity is the initial buffer size of every routine.
	Capacity int
}

// Slot is one specifier position of a template.
type Slot struct {
	Index int
	Token format.Token
	Rule  *registry.Rule
	// Kinds are the kinds routines are generated for, in product order.
	Kinds []primitive.KindEnum
}

// StepKind distinguishes routine steps.
type StepKind int

const (
	StepLiteral StepKind = iota
	StepSpecifier
)

// Step is one straight-line action of a routine.
type Step struct {
	Kind StepKind
	// Literal is the text copied by a StepLiteral.
	Literal string

	// Slot is the argument index of a StepSpecifier.
	Slot int
	// Offset is the byte offset of the specifier in the template.
	Offset  int
	ArgKind primitive.KindEnum
	Spec    format.Specifier
	Rule    *registry.Rule
}

// Routine is the specialization of a declaration for one kind tuple.
type Routine struct {
	// Name is the Go identifier of the generated function.
	Name string
	// Kinds holds the argument kind of every slot.
	Kinds    []primitive.KindEnum
	Steps    []Step
	Capacity int
}

// Params returns the number of arguments the routine takes.
func (r *Routine) Params() int {
	return len(r.Kinds)
}

// Lookup returns the plan of the declaration called name.
func (p *Program) Lookup(name string) (*FormatPlan, bool) {
	for _, fp := range p.Formats {
		if fp.Declaration.Name == name {
			return fp, true
		}
	}

	return nil, false
}

// RoutineCount returns the number of routines across all plans.
func (p *Program) RoutineCount() int {
	n := 0
	for _, fp := range p.Formats {
		n += len(fp.Routines)
	}

	return n
}
