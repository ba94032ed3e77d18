package plan

import (
	"reflect"
	"slices"

	"fmtgen/internal/registry"
	"fmtgen/primitive"
)

// RenderOptions supplies what generated code gets from its package.
type RenderOptions struct {
	// Hook stands in for the declaration's hook function.
	Hook func(any) string
}

// Routine returns the routine generated for the given kind tuple.
func (p *FormatPlan) Routine(kinds ...primitive.KindEnum) (*Routine, error) {
	if len(kinds) != len(p.Slots) {
		return nil, &TypeMismatchError{Declaration: p.Declaration.Name, Slot: -1, Want: len(p.Slots), Have: len(kinds)}
	}

	index := 0

	for i, s := range p.Slots {
		pos := slices.Index(s.Kinds, kinds[i])
		if pos < 0 {
			return nil, p.slotMismatch(i, kinds[i])
		}

		index = index*len(s.Kinds) + pos
	}

	return p.Routines[index], nil
}

// Select returns the routine a call with args would resolve to. Each
// argument takes the kind of its Go type when the slot has it, otherwise
// the first slot kind accepting the value (KindAny accepts everything).
func (p *FormatPlan) Select(args ...any) (*Routine, error) {
	if len(args) != len(p.Slots) {
		return nil, &TypeMismatchError{Declaration: p.Declaration.Name, Slot: -1, Want: len(p.Slots), Have: len(args)}
	}

	kinds := make([]primitive.KindEnum, len(args))

	for i, arg := range args {
		s := &p.Slots[i]

		k := primitive.FromReflectType(reflect.TypeOf(arg))
		if !slices.Contains(s.Kinds, k) {
			idx := slices.IndexFunc(s.Kinds, func(candidate primitive.KindEnum) bool {
				return candidate.Accepts(arg)
			})
			if idx < 0 {
				return nil, p.slotMismatch(i, k)
			}

			k = s.Kinds[idx]
		}

		kinds[i] = k
	}

	return p.Routine(kinds...)
}

func (p *FormatPlan) slotMismatch(slot int, got primitive.KindEnum) error {
	s := &p.Slots[slot]

	return &TypeMismatchError{
		Declaration: p.Declaration.Name,
		Slot:        slot,
		Offset:      s.Token.Start,
		Conversion:  s.Token.Spec.Verb(),
		Got:         got,
		Accepted:    s.Kinds,
	}
}

// Render evaluates the routine in-process. The output is what the
// generated function returns for the same arguments.
func (r *Routine) Render(args ...any) (string, error) {
	return r.RenderWith(RenderOptions{}, args...)
}

// RenderWith is Render with options.
func (r *Routine) RenderWith(opts RenderOptions, args ...any) (string, error) {
	buf, err := r.AppendRender(make([]byte, 0, r.Capacity), opts, args...)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

// AppendRender appends the routine's output to dst, like the generated
// AppendXxx function.
func (r *Routine) AppendRender(dst []byte, opts RenderOptions, args ...any) ([]byte, error) {
	if len(args) != len(r.Kinds) {
		return dst, &TypeMismatchError{Declaration: r.Name, Slot: -1, Want: len(r.Kinds), Have: len(args)}
	}

	for _, st := range r.Steps {
		if st.Kind == StepLiteral {
			dst = append(dst, st.Literal...)
			continue
		}

		arg := args[st.Slot]
		if !st.ArgKind.Accepts(arg) {
			return dst, &TypeMismatchError{
				Declaration: r.Name,
				Slot:        st.Slot,
				Offset:      st.Offset,
				Conversion:  st.Spec.Verb(),
				Got:         primitive.FromReflectType(reflect.TypeOf(arg)),
				Accepted:    []primitive.KindEnum{st.ArgKind},
			}
		}

		dst = st.Rule.Eval(dst, arg, registry.EvalInput{Kind: st.ArgKind, Spec: st.Spec, Hook: opts.Hook})
	}

	return dst, nil
}
