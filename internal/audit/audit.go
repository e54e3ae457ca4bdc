// Package audit statically checks that consumers in the principle vignettes
// depend on contracts rather than concrete variants.
//
// A package's interfaces are its contracts and its other named types are its
// variants. Every function parameter, method parameter and non-embedded
// struct field is inspected; one whose type mentions a variant from the same
// package (through pointers, slices, arrays, maps, channels or function
// signatures) is a violation. Constructors, functions named New or New<Upper>
// that return a type of their own package, are exempt because building
// variants is their job. Embedded fields are exempt because
// embedding is how a variant specializes another.
package audit

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/go/packages"
)

// Run loads the packages selected by opts and audits them.
// A nil logger discards logs.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if len(opts.Patterns) == 0 {
		opts.Patterns = []string{DefaultPattern}
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedSyntax |
			packages.NeedTypesInfo,
		Dir:     opts.Dir,
		Context: ctx,
	}

	pkgs, err := packages.Load(cfg, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("loading packages: %w", err)
	}

	var loadErrs []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			loadErrs = append(loadErrs, fmt.Sprintf("%s: %s", pkg.PkgPath, e.Msg))
		}
	}
	if len(loadErrs) > 0 {
		return nil, fmt.Errorf("package errors: %s", strings.Join(loadErrs, "; "))
	}

	logger.Info("packages loaded", "packages_count", len(pkgs))

	report := &Report{}
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		auditPackage(pkg, report, logger)
	}

	logger.Info("audit complete",
		"contracts", len(report.Contracts),
		"variants", len(report.Variants),
		"implementations", len(report.Implementations),
		"violations", len(report.Violations),
	)

	return report, nil
}

func auditPackage(pkg *packages.Package, report *Report, logger *slog.Logger) {
	report.Packages = append(report.Packages, pkg.PkgPath)

	scope := pkg.Types.Scope()
	var ifaces []*types.TypeName
	var concretes []*types.TypeName

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}

		if iface, ok := named.Underlying().(*types.Interface); ok {
			ifaces = append(ifaces, tn)
			report.Contracts = append(report.Contracts, Contract{
				Name:    tn.Name(),
				Package: pkg.PkgPath,
				Methods: methodNames(iface),
			})
			logger.Debug("found contract", "name", tn.Name(), "package", pkg.PkgPath)
			continue
		}

		concretes = append(concretes, tn)
		report.Variants = append(report.Variants, Variant{Name: tn.Name(), Package: pkg.PkgPath})
		logger.Debug("found variant", "name", tn.Name(), "package", pkg.PkgPath)
	}

	for _, c := range concretes {
		for _, i := range ifaces {
			iface := i.Type().Underlying().(*types.Interface)
			if iface.NumMethods() == 0 {
				continue
			}
			switch {
			case types.Implements(c.Type(), iface):
				report.Implementations = append(report.Implementations, Implementation{
					Variant: c.Name(), Contract: i.Name(), Package: pkg.PkgPath,
				})
			case types.Implements(types.NewPointer(c.Type()), iface):
				report.Implementations = append(report.Implementations, Implementation{
					Variant: c.Name(), Contract: i.Name(), Package: pkg.PkgPath, ViaPointer: true,
				})
			}
		}
	}

	for _, file := range pkg.Syntax {
		checkFile(pkg, file, report)
	}
}

func checkFile(pkg *packages.Package, file *ast.File, report *Report) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if isConstructor(pkg, d) {
				continue
			}
			where := funcLabel(d)
			for _, field := range d.Type.Params.List {
				checkField(pkg, field, "param", where, report)
			}
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts := spec.(*ast.TypeSpec)
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					continue
				}
				for _, field := range st.Fields.List {
					if len(field.Names) == 0 {
						continue // embedded
					}
					checkField(pkg, field, "field", ts.Name.Name, report)
				}
			}
		}
	}
}

func checkField(pkg *packages.Package, field *ast.Field, kind, where string, report *Report) {
	t := pkg.TypesInfo.TypeOf(field.Type)
	if t == nil {
		return
	}
	concrete := sameScopeConcrete(t, pkg.Types)
	if concrete == nil {
		return
	}

	names := make([]string, 0, len(field.Names))
	for _, n := range field.Names {
		names = append(names, n.Name)
	}
	label := kind
	if len(names) > 0 {
		label += " " + strings.Join(names, ", ")
	}

	report.Violations = append(report.Violations, Violation{
		Package:  pkg.PkgPath,
		Position: pkg.Fset.Position(field.Pos()).String(),
		Where:    label + " of " + where,
		Concrete: concrete.Obj().Name(),
	})
}

// sameScopeConcrete unwraps container types and returns the named
// non-interface type at the core when it is declared in pkg. Map keys,
// channel elements and function parameters and results are all searched.
func sameScopeConcrete(t types.Type, pkg *types.Package) *types.Named {
	switch u := t.(type) {
	case *types.Pointer:
		return sameScopeConcrete(u.Elem(), pkg)
	case *types.Slice:
		return sameScopeConcrete(u.Elem(), pkg)
	case *types.Array:
		return sameScopeConcrete(u.Elem(), pkg)
	case *types.Chan:
		return sameScopeConcrete(u.Elem(), pkg)
	case *types.Map:
		if n := sameScopeConcrete(u.Key(), pkg); n != nil {
			return n
		}
		return sameScopeConcrete(u.Elem(), pkg)
	case *types.Signature:
		if n := tupleConcrete(u.Params(), pkg); n != nil {
			return n
		}
		return tupleConcrete(u.Results(), pkg)
	case *types.Named:
		if u.Obj().Pkg() != pkg {
			return nil
		}
		if _, ok := u.Underlying().(*types.Interface); ok {
			return nil
		}
		return u
	default:
		return nil
	}
}

func tupleConcrete(tup *types.Tuple, pkg *types.Package) *types.Named {
	for i := 0; i < tup.Len(); i++ {
		if n := sameScopeConcrete(tup.At(i).Type(), pkg); n != nil {
			return n
		}
	}
	return nil
}

// isConstructor reports whether d is a plain function named New or
// New<Upper>... that returns a type declared in pkg.
func isConstructor(pkg *packages.Package, d *ast.FuncDecl) bool {
	if d.Recv != nil || d.Type.Results == nil {
		return false
	}
	rest, ok := strings.CutPrefix(d.Name.Name, "New")
	if !ok {
		return false
	}
	if rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsUpper(r) {
			return false
		}
	}

	for _, field := range d.Type.Results.List {
		t := pkg.TypesInfo.TypeOf(field.Type)
		if p, ok := t.(*types.Pointer); ok {
			t = p.Elem()
		}
		if n, ok := t.(*types.Named); ok && n.Obj().Pkg() == pkg.Types {
			return true
		}
	}
	return false
}

func funcLabel(d *ast.FuncDecl) string {
	if d.Recv == nil || len(d.Recv.List) == 0 {
		return d.Name.Name
	}
	return "(" + types.ExprString(d.Recv.List[0].Type) + ")." + d.Name.Name
}

func methodNames(iface *types.Interface) []string {
	names := make([]string, iface.NumMethods())
	for i := 0; i < iface.NumMethods(); i++ {
		names[i] = iface.Method(i).Name()
	}
	return names
}
