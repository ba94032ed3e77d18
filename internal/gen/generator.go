package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"

	"fmtgen/internal/common"
	"fmtgen/internal/manifest"
	"fmtgen/internal/plan"
	"fmtgen/internal/registry"
)

// Header is the first line of every generated file.
const Header = "// Code generated by fmtgen. DO NOT EDIT."

// FingerprintPrefix starts the line carrying the declaration fingerprint.
const FingerprintPrefix = "// fmtgen:fingerprint "

const dstVar = "dst"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// DebugDir receives .unformatted.go sidecars when gofmt rejects the
	// generated code. Empty disables them.
	DebugDir string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
	}
}

// Generator turns compiled programs into Go source files.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "greeting_fmt.go").
	Filename string
	// Declaration is the name of the declaration the file implements.
	Declaration string
	// Fingerprint is the digest written into the header.
	Fingerprint string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per declaration of prog. It refuses programs
// that carry errors.
func (g *Generator) Generate(prog *plan.Program) ([]GeneratedFile, error) {
	if prog == nil || prog.Manifest == nil {
		return nil, fmt.Errorf("nothing to generate")
	}

	if prog.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("program has errors: %w", prog.Diagnostics.Error())
	}

	files := make([]GeneratedFile, 0, len(prog.Formats))

	for _, fp := range prog.Formats {
		file, err := g.GenerateFormat(prog.Manifest, fp)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", fp.Declaration.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// GenerateFormat renders the file of a single declaration.
func (g *Generator) GenerateFormat(f *manifest.File, fp *plan.FormatPlan) (*GeneratedFile, error) {
	data, err := g.buildTemplateData(f, fp)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		Filename:    data.Filename,
		Declaration: fp.Declaration.Name,
		Fingerprint: data.Fingerprint,
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(g.config.DebugDir, data.Filename, buf.Bytes())
		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName      string
	Filename         string
	Fingerprint      string
	RuntimeAlias     string
	RuntimePath      string
	NeedsRuntime     bool
	Append           bool
	GenerateComments bool
	Routines         []routineData
}

// routineData is one generated function pair.
type routineData struct {
	Name     string
	Doc      []string
	Params   string
	Args     string
	Capacity int
	Body     []string
}

func (g *Generator) buildTemplateData(f *manifest.File, fp *plan.FormatPlan) (*templateData, error) {
	decl := &fp.Declaration

	fingerprint, err := manifest.Fingerprint(f, decl)
	if err != nil {
		return nil, err
	}

	runtimePath := f.Runtime
	if runtimePath == "" {
		runtimePath = manifest.DefaultRuntime
	}

	data := &templateData{
		PackageName:      f.Package,
		Filename:         manifest.FileName(decl.Name),
		Fingerprint:      fingerprint,
		RuntimeAlias:     common.PkgAlias(runtimePath),
		RuntimePath:      runtimePath,
		Append:           f.AppendEnabled(),
		GenerateComments: g.config.GenerateComments,
	}

	for _, r := range fp.Routines {
		rd, usesRuntime, err := g.buildRoutine(data, decl, fp, r)
		if err != nil {
			return nil, err
		}

		data.NeedsRuntime = data.NeedsRuntime || usesRuntime
		data.Routines = append(data.Routines, rd)
	}

	return data, nil
}

// buildRoutine renders the statements of r. It also reports whether they
// reference the runtime package, either in code or in a parameter type.
func (g *Generator) buildRoutine(
	data *templateData,
	decl *manifest.Declaration,
	fp *plan.FormatPlan,
	r *plan.Routine,
) (routineData, bool, error) {
	rd := routineData{
		Name:     r.Name,
		Capacity: r.Capacity,
	}

	qualifier := data.RuntimeAlias + "."
	usesRuntime := false

	params := make([]string, len(r.Kinds))
	args := make([]string, len(r.Kinds))

	for i, k := range r.Kinds {
		typ := k.GoType(data.RuntimeAlias)
		if strings.HasPrefix(typ, qualifier) {
			usesRuntime = true
		}

		args[i] = argName(i)
		params[i] = args[i] + " " + typ
	}

	rd.Params = strings.Join(params, ", ")
	rd.Args = strings.Join(args, ", ")

	for _, step := range r.Steps {
		switch step.Kind {
		case plan.StepLiteral:
			rd.Body = append(rd.Body, dstVar+" = append("+dstVar+", "+strconv.Quote(step.Literal)+"...)")
		case plan.StepSpecifier:
			lines, err := step.Rule.Emit(registry.EmitInput{
				Dst:     dstVar,
				Arg:     argName(step.Slot),
				Runtime: data.RuntimeAlias,
				Hook:    decl.Hook,
				Kind:    step.ArgKind,
				Spec:    step.Spec,
			})
			if err != nil {
				return rd, false, fmt.Errorf("%s: offset %d: %w", r.Name, step.Offset, err)
			}

			for _, line := range lines {
				if strings.Contains(line, qualifier) {
					usesRuntime = true
				}
			}

			rd.Body = append(rd.Body, strings.Join(lines, "\n"))
		}
	}

	if g.config.GenerateComments {
		rd.Doc = routineDoc(decl, fp, r)
	}

	return rd, usesRuntime, nil
}

func routineDoc(decl *manifest.Declaration, fp *plan.FormatPlan, r *plan.Routine) []string {
	var doc []string

	if decl.Doc != "" {
		doc = append(doc, strings.Split(strings.TrimSpace(decl.Doc), "\n")...)
		doc = append(doc, "")
	}

	line := r.Name + " formats " + strconv.Quote(decl.Format)
	if common.IsMultiple(fp.Routines) {
		names := make([]string, len(r.Kinds))
		for i, k := range r.Kinds {
			names[i] = k.Name()
		}

		line += " for (" + strings.Join(names, ", ") + ")"
	}

	return append(doc, line+".")
}

func argName(i int) string {
	return "arg" + strconv.Itoa(i)
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by fmtgen. DO NOT EDIT.
// fmtgen:fingerprint {{.Fingerprint}}

package {{.PackageName}}
{{if .NeedsRuntime}}
import {{.RuntimeAlias}} "{{.RuntimePath}}"
{{end}}
{{- range .Routines}}
{{range .Doc}}
{{- if .}}// {{.}}{{else}}//{{end}}
{{end -}}
{{if $.Append -}}
func {{.Name}}({{.Params}}) string {
	return string(Append{{.Name}}(make([]byte, 0, {{.Capacity}}){{if .Args}}, {{.Args}}{{end}}))
}

{{if $.GenerateComments}}// Append{{.Name}} is like {{.Name}} but appends to dst.
{{end -}}
func Append{{.Name}}(dst []byte{{if .Params}}, {{.Params}}{{end}}) []byte {
{{- range .Body}}
	{{.}}
{{- end}}

	return dst
}
{{else -}}
func {{.Name}}({{.Params}}) string {
	dst := make([]byte, 0, {{.Capacity}})
{{- range .Body}}
	{{.}}
{{- end}}

	return string(dst)
}
{{end -}}
{{end -}}
`))
