package registry

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
)

var emitTemplates = map[string]string{
	"int":   "{{.dst}} = {{.rt}}.AppendInt({{.dst}}, int64({{.arg}}), {{.flags}}, {{.width}})",
	"int64": "{{.dst}} = {{.rt}}.AppendInt({{.dst}}, {{.arg}}, {{.flags}}, {{.width}})",

	"bool": "{{.dst}} = {{.rt}}.AppendBool({{.dst}}, {{.arg}}, {{.flags}}, {{.width}})",
	"boolInline": `if {{.arg}} {
	{{.dst}} = append({{.dst}}, {{.trueText}}...)
} else {
	{{.dst}} = append({{.dst}}, {{.falseText}}...)
}`,

	"rune": "{{.dst}} = {{.rt}}.AppendRune({{.dst}}, {{.arg}}, {{.flags}}, {{.width}})",

	"float":   "{{.dst}} = {{.rt}}.AppendFloat({{.dst}}, float64({{.arg}}), {{.verb}}, {{.precision}}, {{.bits}}, {{.flags}}, {{.width}})",
	"float64": "{{.dst}} = {{.rt}}.AppendFloat({{.dst}}, {{.arg}}, {{.verb}}, {{.precision}}, {{.bits}}, {{.flags}}, {{.width}})",

	"string":      "{{.dst}} = {{.rt}}.AppendString({{.dst}}, {{.arg}}, {{.flags}}, {{.width}}, {{.precision}})",
	"stringPlain": "{{.dst}} = append({{.dst}}, {{.arg}}...)",

	"formattable": "{{.dst}} = {{.rt}}.AppendFormattable({{.dst}}, {{.arg}}, {{.flags}}, {{.width}}, {{.precision}})",

	"any":       "{{.dst}} = {{.rt}}.AppendValue({{.dst}}, {{.arg}}, {{.flags}}, {{.width}}, {{.precision}})",
	"anyHooked": "{{.dst}} = {{.rt}}.AppendString({{.dst}}, {{.hook}}({{.arg}}), {{.flags}}, {{.width}}, {{.precision}})",
}

var parsedTemplates = func() map[string]*template.Template {
	res := make(map[string]*template.Template, len(emitTemplates))
	for name, text := range emitTemplates {
		res[name] = template.Must(template.New(name).Option("missingkey=error").Parse(text))
	}

	return res
}()

// render executes the named emission template for in and returns its
// lines. extra entries override the defaults derived from in.
func render(name string, in EmitInput, extra map[string]any) ([]string, error) {
	tmpl, ok := parsedTemplates[name]
	if !ok {
		return nil, fmt.Errorf("no emission template %q", name)
	}

	width := in.Spec.Width
	if !in.Spec.HasWidth() {
		width = 0
	}

	data := map[string]any{
		"dst":       in.Dst,
		"arg":       in.Arg,
		"rt":        in.Runtime,
		"hook":      in.Hook,
		"flags":     runtimeFlags(in.Spec).GoExpr(in.Runtime),
		"width":     width,
		"precision": in.Spec.Precision,
		"verb":      strconv.QuoteRune(rune(in.Spec.Conversion)),
	}

	for k, v := range extra {
		data[k] = v
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("emit %%%c for %s: %w", in.Spec.Verb(), in.Kind.Name(), err)
	}

	return strings.Split(buf.String(), "\n"), nil
}
