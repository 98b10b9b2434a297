package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/types"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"

	"bidimap/bidi"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and recognizes bidirectional mappings in them.
type Analyzer struct {
	names       []string
	contract    TypeID
	concurrency int
	dir         string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithNames replaces the required capability names.
func WithNames(names ...string) Option {
	return func(a *Analyzer) {
		a.names = slices.Clone(names)
		slices.Sort(a.names)
		a.names = slices.Compact(a.names)
	}
}

// WithConcurrency bounds how many packages are evaluated at once.
func WithConcurrency(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithDir sets the directory patterns are resolved in.
func WithDir(dir string) Option {
	return func(a *Analyzer) {
		a.dir = dir
	}
}

// NewAnalyzer creates a new Analyzer requiring bidi.CapabilityNames.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		names:       bidi.CapabilityNames(),
		contract:    TypeID{PkgPath: bidi.PackagePath(), Name: bidi.ContractType},
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Names returns the required capability names.
func (a *Analyzer) Names() []string {
	return slices.Clone(a.names)
}

// LoadPackages loads the packages matching patterns and evaluates every
// exported named type they declare.
// Patterns are standard Go package patterns (e.g., "./...", "bidimap/examples/shapes").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*Scan, error) {
	cfg := &packages.Config{
		Mode:    LoadMode,
		Context: ctx,
		Dir:     a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	infos := make([]*PackageInfo, len(pkgs))
	results := make([][]Result, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for i, pkg := range pkgs {
		g.Go(func() error {
			info, res, err := a.processPackage(ctx, pkg)
			if err != nil {
				return fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
			}

			infos[i], results[i] = info, res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	scan := NewScan(a.names)
	for i, info := range infos {
		scan.Packages[info.Path] = info
		scan.Results = append(scan.Results, results[i]...)
	}
	slices.SortFunc(scan.Results, func(x, y Result) int {
		return strings.Compare(x.ID.String(), y.ID.String())
	})

	return scan, nil
}

// processPackage evaluates the exported named types of a loaded package.
func (a *Analyzer) processPackage(ctx context.Context, pkg *packages.Package) (*PackageInfo, []Result, error) {
	if pkg.Types == nil {
		return nil, nil, fmt.Errorf("no type information for %s", pkg.PkgPath)
	}

	info := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	var results []Result

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		// Only process exported type names
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		res := a.Evaluate(typeName.Type())
		res.ID = TypeID{PkgPath: pkg.PkgPath, Name: name}
		if pkg.Fset != nil {
			pos := pkg.Fset.Position(typeName.Pos())
			res.Position = fmt.Sprintf("%s:%d", filepath.Base(pos.Filename), pos.Line)
		}

		results = append(results, res)
		info.Types = append(info.Types, res.ID)
	}

	return info, results, nil
}

// Evaluate recognizes t. The returned Result has no ID or Position; callers
// that know the declaring object fill those in.
func (a *Analyzer) Evaluate(t types.Type) Result {
	res := Result{Kind: kindOf(t)}

	root := types.Unalias(t)
	switch root.(type) {
	case *types.Named, *types.Struct:
	default:
		res.Verdict = bidi.Deferred
		return res
	}

	res.Chain = Chain(root)
	res.Explicit = slices.ContainsFunc(res.Chain, func(l Link) bool { return l.ID == a.contract })

	for _, name := range a.names {
		if slices.ContainsFunc(res.Chain, func(l Link) bool { return l.Declares(name) }) {
			res.Present = append(res.Present, name)
		} else {
			res.Missing = append(res.Missing, name)
		}
	}

	if res.Explicit || len(res.Missing) == 0 {
		res.Verdict = bidi.Conforming
	} else {
		res.Verdict = bidi.NonConforming
	}

	return res
}
