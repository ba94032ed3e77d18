package manifest

import (
	"fmt"
	"go/token"

	"fmtgen/internal/diagnostic"
	"fmtgen/internal/match"
)

// Validate checks the structure of f: a usable package name, exported and
// unique declaration names, valid hooks and non-negative capacity hints.
// Templates and kinds are checked when the declarations are compiled.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeInvalidDeclaration, "manifest is nil", "", diagnostic.NoOffset)
		return res
	}

	if f.Version != "" && f.Version != "1" {
		res.AddError(diagnostic.CodeInvalidDeclaration, fmt.Sprintf("unsupported manifest version %q", f.Version), "", diagnostic.NoOffset)
	}

	if !token.IsIdentifier(f.Package) {
		res.AddError(diagnostic.CodeInvalidDeclaration, fmt.Sprintf("package %q is not a Go identifier", f.Package), "", diagnostic.NoOffset)
	}

	seenNames := map[string]struct{}{}
	seenFiles := map[string]string{}

	for i := range f.Formats {
		d := &f.Formats[i]

		if d.Name == "" {
			res.AddError(diagnostic.CodeInvalidDeclaration, fmt.Sprintf("format #%d has no name", i+1), "", diagnostic.NoOffset)
			continue
		}

		if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
			res.AddError(diagnostic.CodeInvalidDeclaration, "name must be an exported Go identifier", d.Name, diagnostic.NoOffset)
			continue
		}

		if _, ok := seenNames[d.Name]; ok {
			res.AddError(diagnostic.CodeInvalidDeclaration, "duplicate format name", d.Name, diagnostic.NoOffset)
			continue
		}

		seenNames[d.Name] = struct{}{}

		file := FileName(d.Name)
		if other, ok := seenFiles[file]; ok {
			res.AddError(diagnostic.CodeInvalidDeclaration, fmt.Sprintf("generated file %s collides with format %s", file, other), d.Name, diagnostic.NoOffset)
		}

		seenFiles[file] = d.Name

		if d.Capacity != nil && *d.Capacity < 0 {
			res.AddError(diagnostic.CodeInvalidDeclaration, fmt.Sprintf("negative capacity %d", *d.Capacity), d.Name, diagnostic.NoOffset)
		}

		if d.Hook != "" && !token.IsIdentifier(d.Hook) {
			res.AddError(diagnostic.CodeInvalidDeclaration, fmt.Sprintf("hook %q is not a Go identifier", d.Hook), d.Name, diagnostic.NoOffset)
		}

		if d.Doc == "" {
			res.AddInfo("missing-doc", "no doc comment, a generic one is generated", d.Name)
		}
	}

	return res
}

// FileSuffix ends the name of every generated file.
const FileSuffix = "_fmt.go"

// FileName returns the name of the file generated for a declaration.
func FileName(name string) string {
	return match.SnakeCase(name) + FileSuffix
}
