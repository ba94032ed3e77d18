package registry

import (
	"errors"
	"fmt"
	"fmtgen/fastfmt"
	"fmtgen/internal/format"
	"fmtgen/primitive"
	"slices"
	"sync"
)

// ErrSealed is returned by Register after Build was called.
var ErrSealed = errors.New("registry builder is sealed")

// EmitInput describes one specifier occurrence in a generated routine.
type EmitInput struct {
	// Dst is the name of the []byte variable being appended to.
	Dst string
	// Arg is the Go expression of the argument.
	Arg string
	// Runtime is the package alias fastfmt is imported under.
	Runtime string
	// Hook is the name of a func(any) string used for KindAny, if any.
	Hook string
	Kind primitive.KindEnum
	Spec format.Specifier
}

// EvalInput describes one specifier occurrence evaluated in-process.
type EvalInput struct {
	Kind primitive.KindEnum
	Spec format.Specifier
	Hook func(any) string
}

// Rule describes one conversion character.
type Rule struct {
	// Conversion is the lower-case conversion character.
	Conversion byte
	// UpperCase reports whether the upper-case character is accepted too;
	// it then sets fastfmt.UpperCase on the specifier.
	UpperCase bool
	// Kinds lists the accepted argument kinds in routine order.
	Kinds []primitive.KindEnum
	// Emit returns Go statements appending the argument to the buffer.
	Emit func(in EmitInput) ([]string, error)
	// Eval appends the argument to dst with the same output Emit'd code
	// would produce.
	Eval func(dst []byte, arg any, in EvalInput) []byte
	// Estimate returns the expected output length; nil means the width or
	// 16 bytes, whichever is larger.
	Estimate func(spec format.Specifier) int
	Doc      string
}

// AcceptsKind reports whether k is one of the rule's kinds.
func (r *Rule) AcceptsKind(k primitive.KindEnum) bool {
	return slices.Contains(r.Kinds, k)
}

// EstimateFor returns the capacity estimate for spec.
func (r *Rule) EstimateFor(spec format.Specifier) int {
	if r.Estimate == nil {
		return max(spec.Width, 16)
	}

	return r.Estimate(spec)
}

// Registry is a sealed conversion table.
type Registry struct {
	rules map[byte]*Rule
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return Builtin().Build()
})

// Default returns the registry holding the built-in conversions.
func Default() *Registry {
	return defaultRegistry()
}

// Accepts reports whether c is a known conversion character. Upper-case
// characters are known only if their rule allows it.
func (r *Registry) Accepts(c byte) bool {
	rule, upper := r.rule(c)
	if rule == nil {
		return false
	}

	return !upper || rule.UpperCase
}

// Lookup returns the rule for c, either case.
func (r *Registry) Lookup(c byte) (*Rule, error) {
	if !r.Accepts(c) {
		return nil, &format.UnknownConversionError{Conversion: c}
	}

	rule, _ := r.rule(c)

	return rule, nil
}

// Rules returns all rules ordered by conversion character.
func (r *Registry) Rules() []*Rule {
	res := make([]*Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		res = append(res, rule)
	}

	slices.SortFunc(res, func(a, b *Rule) int {
		return int(a.Conversion) - int(b.Conversion)
	})

	return res
}

func (r *Registry) rule(c byte) (*Rule, bool) {
	upper := c >= 'A' && c <= 'Z'
	if upper {
		c += 'a' - 'A'
	}

	return r.rules[c], upper
}

// Builder collects rules until Build seals it.
type Builder struct {
	rules  map[byte]*Rule
	sealed bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{rules: map[byte]*Rule{}}
}

// Builtin returns a builder preloaded with the built-in conversions.
func Builtin() *Builder {
	b := NewBuilder()
	for _, rule := range builtinRules() {
		if err := b.Register(rule); err != nil {
			panic(err)
		}
	}

	return b
}

// Register adds rule. The conversion character must be a lower-case ASCII
// letter not registered yet, and the rule must accept at least one kind and
// know how to emit and evaluate.
func (b *Builder) Register(rule Rule) error {
	if b.sealed {
		return ErrSealed
	}

	c := rule.Conversion
	if c < 'a' || c > 'z' {
		return fmt.Errorf("conversion %q: must be a lower-case ASCII letter", rune(c))
	}

	if _, ok := b.rules[c]; ok {
		return fmt.Errorf("conversion %q: already registered", rune(c))
	}

	if len(rule.Kinds) == 0 {
		return fmt.Errorf("conversion %q: no accepted kinds", rune(c))
	}

	for i, k := range rule.Kinds {
		if !k.IsValid() {
			return fmt.Errorf("conversion %q: invalid kind %s", rune(c), k)
		}

		if slices.Contains(rule.Kinds[:i], k) {
			return fmt.Errorf("conversion %q: duplicate kind %s", rune(c), k.Name())
		}
	}

	if rule.Emit == nil || rule.Eval == nil {
		return fmt.Errorf("conversion %q: missing emitter or evaluator", rune(c))
	}

	rule.Kinds = slices.Clone(rule.Kinds)
	b.rules[c] = &rule

	return nil
}

// Build seals the builder and returns the registry. Later Register calls
// fail with ErrSealed.
func (b *Builder) Build() *Registry {
	b.sealed = true

	rules := make(map[byte]*Rule, len(b.rules))
	for c, rule := range b.rules {
		rules[c] = rule
	}

	return &Registry{rules: rules}
}

// runtimeFlags returns the flags a routine passes to fastfmt for spec.
func runtimeFlags(spec format.Specifier) fastfmt.Flags {
	return spec.Flags.Resolve()
}
