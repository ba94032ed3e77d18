package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"fmtgen/internal/manifest"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and collects their format directives.
type Analyzer struct {
	// Dir is the working directory patterns are resolved in; empty means
	// the current directory.
	Dir string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the packages matching patterns and returns one
// manifest per package holding at least one directive.
// Patterns are standard Go package patterns (e.g., "./...", "fmtgen/examples/directives").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*manifest.File, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var res []*manifest.File

	for _, pkg := range pkgs {
		f, err := processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		if f != nil {
			res = append(res, f)
		}
	}

	return res, nil
}

// processPackage returns the package's declarations, or nil if it has none.
func processPackage(pkg *packages.Package) (*manifest.File, error) {
	var (
		decls []manifest.Declaration
		errs  []error
	)

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}

			for _, spec := range gd.Specs {
				vs := spec.(*ast.ValueSpec)

				doc := vs.Doc
				if doc == nil && !gd.Lparen.IsValid() {
					doc = gd.Doc
				}

				found, err := specDeclarations(pkg, vs, doc)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %w", pkg.Fset.Position(vs.Pos()), err))
					continue
				}

				decls = append(decls, found...)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if len(decls) == 0 {
		return nil, nil
	}

	f := &manifest.File{
		Package: pkg.Name,
		Output:  packageDir(pkg),
		Formats: decls,
	}

	manifest.ApplyDefaults(f)

	return f, nil
}

func specDeclarations(pkg *packages.Package, vs *ast.ValueSpec, doc *ast.CommentGroup) ([]manifest.Declaration, error) {
	if doc == nil {
		return nil, nil
	}

	var (
		directive Directive
		found     bool
	)

	for _, c := range doc.List {
		if !IsDirective(c.Text) {
			continue
		}

		if found {
			return nil, errors.New("more than one format directive")
		}

		d, err := ParseDirective(c.Text)
		if err != nil {
			return nil, err
		}

		directive, found = d, true
	}

	if !found {
		return nil, nil
	}

	if directive.Name != "" && len(vs.Names) > 1 {
		return nil, errors.New("name= cannot be used on a multi-constant spec")
	}

	var res []manifest.Declaration

	for _, ident := range vs.Names {
		obj, ok := pkg.TypesInfo.Defs[ident].(*types.Const)
		if !ok || obj.Val().Kind() != constant.String {
			return nil, fmt.Errorf("directive on %s: not a string constant", ident.Name)
		}

		name := directive.Name
		if name == "" {
			name = DefaultName(ident.Name)
		}

		res = append(res, manifest.Declaration{
			Name:      name,
			Namespace: pkg.PkgPath,
			Format:    constant.StringVal(obj.Val()),
			Capacity:  directive.Capacity,
			Args:      directive.Args,
			Hook:      directive.Hook,
		})
	}

	return res, nil
}

func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) == 0 {
		return "."
	}

	return filepath.Dir(pkg.GoFiles[0])
}
