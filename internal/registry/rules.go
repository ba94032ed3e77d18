package registry

import (
	"fmtgen/fastfmt"
	"fmtgen/internal/format"
	"fmtgen/primitive"
	"reflect"
	"strconv"
)

func builtinRules() []Rule {
	rules := []Rule{
		{
			Conversion: 'b',
			UpperCase:  true,
			Kinds:      []primitive.KindEnum{primitive.KindBool},
			Emit:       emitBool,
			Eval:       evalBool,
			Estimate:   atLeast(5),
			Doc:        "boolean as true/false",
		},
		{
			Conversion: 'c',
			UpperCase:  true,
			Kinds:      []primitive.KindEnum{primitive.KindRune},
			Emit:       emitRune,
			Eval:       evalRune,
			Estimate:   atLeast(4),
			Doc:        "single character",
		},
		{
			Conversion: 'd',
			Kinds: []primitive.KindEnum{
				primitive.KindInt, primitive.KindInt16, primitive.KindInt32, primitive.KindInt64,
			},
			Emit:     emitInt,
			Eval:     evalInt,
			Estimate: atLeast(20),
			Doc:      "signed decimal integer",
		},
		{
			Conversion: 's',
			UpperCase:  true,
			Kinds: []primitive.KindEnum{
				primitive.KindString, primitive.KindFormattable, primitive.KindAny,
			},
			Emit:     emitString,
			Eval:     evalString,
			Estimate: estimateString,
			Doc:      "string, Formattable or any value",
		},
	}

	for _, c := range []struct {
		conversion byte
		upper      bool
		doc        string
	}{
		{'e', true, "floating point, exponent notation"},
		{'f', false, "floating point, decimal notation"},
		{'g', true, "floating point, shortest of %e and %f"},
	} {
		rules = append(rules, Rule{
			Conversion: c.conversion,
			UpperCase:  c.upper,
			Kinds:      []primitive.KindEnum{primitive.KindFloat32, primitive.KindFloat64},
			Emit:       emitFloat,
			Eval:       evalFloat,
			Estimate:   atLeast(24),
			Doc:        c.doc,
		})
	}

	return rules
}

func atLeast(n int) func(format.Specifier) int {
	return func(spec format.Specifier) int {
		return max(spec.Width, n)
	}
}

func estimateString(spec format.Specifier) int {
	if spec.HasPrecision() {
		return max(spec.Width, spec.Precision)
	}

	return max(spec.Width, 16)
}

func emitBool(in EmitInput) ([]string, error) {
	if in.Spec.Width > 4 {
		return render("bool", in, nil)
	}

	trueText, falseText := "true", "false"
	if in.Spec.Flags&fastfmt.UpperCase != 0 {
		trueText, falseText = "TRUE", "FALSE"
	}

	return render("boolInline", in, map[string]any{
		"trueText":  strconv.Quote(trueText),
		"falseText": strconv.Quote(falseText),
	})
}

func evalBool(dst []byte, arg any, in EvalInput) []byte {
	return fastfmt.AppendBool(dst, reflect.ValueOf(arg).Bool(), runtimeFlags(in.Spec), width(in.Spec))
}

func emitRune(in EmitInput) ([]string, error) {
	return render("rune", in, nil)
}

func evalRune(dst []byte, arg any, in EvalInput) []byte {
	return fastfmt.AppendRune(dst, rune(reflect.ValueOf(arg).Int()), runtimeFlags(in.Spec), width(in.Spec))
}

func emitInt(in EmitInput) ([]string, error) {
	if in.Kind == primitive.KindInt64 {
		return render("int64", in, nil)
	}

	return render("int", in, nil)
}

func evalInt(dst []byte, arg any, in EvalInput) []byte {
	return fastfmt.AppendInt(dst, reflect.ValueOf(arg).Int(), runtimeFlags(in.Spec), width(in.Spec))
}

func emitFloat(in EmitInput) ([]string, error) {
	extra := map[string]any{"bits": in.Kind.Bits()}
	if in.Kind == primitive.KindFloat64 {
		return render("float64", in, extra)
	}

	return render("float", in, extra)
}

func evalFloat(dst []byte, arg any, in EvalInput) []byte {
	return fastfmt.AppendFloat(dst, reflect.ValueOf(arg).Float(), in.Spec.Conversion, in.Spec.Precision,
		in.Kind.Bits(), runtimeFlags(in.Spec), width(in.Spec))
}

func emitString(in EmitInput) ([]string, error) {
	switch in.Kind {
	case primitive.KindFormattable:
		return render("formattable", in, nil)
	case primitive.KindAny:
		if in.Hook != "" {
			return render("anyHooked", in, nil)
		}

		return render("any", in, nil)
	default:
		if runtimeFlags(in.Spec) == 0 && !in.Spec.HasWidth() && !in.Spec.HasPrecision() {
			return render("stringPlain", in, nil)
		}

		return render("string", in, nil)
	}
}

func evalString(dst []byte, arg any, in EvalInput) []byte {
	flags := runtimeFlags(in.Spec)

	switch in.Kind {
	case primitive.KindFormattable:
		f, _ := arg.(fastfmt.Formattable)
		return fastfmt.AppendFormattable(dst, f, flags, width(in.Spec), in.Spec.Precision)
	case primitive.KindAny:
		if in.Hook != nil {
			return fastfmt.AppendString(dst, in.Hook(arg), flags, width(in.Spec), in.Spec.Precision)
		}

		return fastfmt.AppendValue(dst, arg, flags, width(in.Spec), in.Spec.Precision)
	default:
		return fastfmt.AppendString(dst, reflect.ValueOf(arg).String(), flags, width(in.Spec), in.Spec.Precision)
	}
}

func width(spec format.Specifier) int {
	if !spec.HasWidth() {
		return 0
	}

	return spec.Width
}
