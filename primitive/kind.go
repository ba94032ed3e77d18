package primitive

import (
	"fmt"
	"fmtgen/fastfmt"
	"reflect"
	"strings"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the static kind of one format argument. Each generated routine
// is keyed by a tuple of kinds, one per specifier.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBool
	KindRune
	KindInt
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindString
	KindFormattable // any value implementing fastfmt.Formattable
	KindAny         // arbitrary value, rendered by a hook or fmt.Sprint

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = [KindTotal]string{
	KindBool:        "bool",
	KindRune:        "rune",
	KindInt:         "int",
	KindInt16:       "int16",
	KindInt32:       "int32",
	KindInt64:       "int64",
	KindFloat32:     "float32",
	KindFloat64:     "float64",
	KindString:      "string",
	KindFormattable: "formattable",
	KindAny:         "any",
}

var formattableType = reflect.TypeFor[fastfmt.Formattable]()

// Kinds returns every valid kind in declaration order.
func Kinds() []KindEnum {
	kinds := make([]KindEnum, 0, KindTotal-1)
	for k := KindBool; int(k) < KindTotal; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// KindNames returns the lower-case names of every valid kind.
func KindNames() []string {
	return kindNames[1:]
}

// ParseKind resolves a lower-case kind name as written in manifests and
// directives ("int64", "string", "any", ...).
func ParseKind(name string) (KindEnum, bool) {
	name = strings.TrimSpace(name)
	for i, n := range kindNames {
		if i > 0 && n == name {
			return KindEnum(i), true
		}
	}

	return 0, false
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Name is the lower-case name used by manifests, e.g. "int32".
func (k KindEnum) Name() string {
	if !k.IsValid() {
		return k.String()
	}

	return kindNames[k]
}

// Suffix is appended to a declaration name to build routine names,
// e.g. "Int32" for KindInt32.
func (k KindEnum) Suffix() string {
	name := k.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

// GoType returns the Go parameter type for the kind; runtime is the package
// alias the generated file imports fastfmt under.
func (k KindEnum) GoType(runtime string) string {
	switch k {
	default:
		panic("no Go type for kind: " + k.String())
	case KindFormattable:
		return runtime + ".Formattable"
	case KindBool, KindRune, KindInt, KindInt16, KindInt32, KindInt64,
		KindFloat32, KindFloat64, KindString, KindAny:
		return k.Name()
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindInt64, KindFloat64:
		return 64
	case KindInt16:
		return 16
	case KindRune, KindInt32, KindFloat32:
		return 32
	}
}

// Accepts reports whether v may be passed for an argument of kind k. Named
// types are accepted by their underlying reflect.Kind, so a rune is both a
// KindRune and a KindInt32 value. A nil value fits KindFormattable too,
// since a nil interface is a valid Formattable argument.
func (k KindEnum) Accepts(v any) bool {
	if k == KindAny {
		return true
	}

	if v == nil {
		return k == KindFormattable
	}

	rtype := reflect.TypeOf(v)

	switch k {
	default:
		return false
	case KindFormattable:
		return rtype.Implements(formattableType)
	case KindBool:
		return rtype.Kind() == reflect.Bool
	case KindRune, KindInt32:
		return rtype.Kind() == reflect.Int32
	case KindInt:
		return rtype.Kind() == reflect.Int
	case KindInt16:
		return rtype.Kind() == reflect.Int16
	case KindInt64:
		return rtype.Kind() == reflect.Int64
	case KindFloat32:
		return rtype.Kind() == reflect.Float32
	case KindFloat64:
		return rtype.Kind() == reflect.Float64
	case KindString:
		return rtype.Kind() == reflect.String
	}
}

// FromReflectType maps a Go type to the kind a generated parameter of that
// type would have. Formattable types win over their underlying kind; types
// with no matching kind map to KindAny.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return KindAny
	}

	if rtype.Implements(formattableType) {
		return KindFormattable
	}

	switch rtype.Kind() {
	default:
		return KindAny
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		return KindString
	}
}

// ParseValue converts the textual form of a value into a Go value of kind k.
// Formattable has no textual form and is rejected.
func (k KindEnum) ParseValue(text string) (any, error) {
	switch k {
	default:
		return nil, fmt.Errorf("kind %s has no textual form", k.Name())
	case KindAny, KindString:
		return text, nil
	case KindBool:
		return parseBool(text)
	case KindRune:
		return parseRune(text)
	case KindInt, KindInt16, KindInt32, KindInt64:
		return parseInt(text, k)
	case KindFloat32, KindFloat64:
		return parseFloat(text, k)
	}
}
