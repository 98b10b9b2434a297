package analyze

import (
	"go/types"
	"slices"
)

// Chain returns root followed by the named types and interfaces embedded in
// it, breadth first. Pointers to embedded types are dereferenced and each
// type appears once. Root is a named type or an unnamed struct.
func Chain(root types.Type) []Link {
	var links []Link

	queue := []types.Type{root}
	seen := make(map[string]bool)

	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]

		key := types.TypeString(t, nil)
		if seen[key] {
			continue
		}
		seen[key] = true

		link, embedded := describe(t)
		links = append(links, link)
		queue = append(queue, embedded...)
	}

	return links
}

// describe returns the link for t and the types t embeds.
func describe(t types.Type) (Link, []types.Type) {
	link := Link{
		Display: types.TypeString(t, pkgName),
		Kind:    kindOf(t),
	}

	var methods []string
	var embedded []types.Type

	if named, ok := t.(*types.Named); ok {
		obj := named.Obj()
		link.ID.Name = obj.Name()
		if obj.Pkg() != nil {
			link.ID.PkgPath = obj.Pkg().Path()
		}

		for i := range named.NumMethods() {
			methods = append(methods, named.Method(i).Name())
		}
	}

	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			field := u.Field(i)
			if !field.Embedded() {
				continue
			}

			ft := types.Unalias(field.Type())
			if ptr, ok := ft.(*types.Pointer); ok {
				ft = types.Unalias(ptr.Elem())
			}
			if chainable(ft) {
				embedded = append(embedded, ft)
			}
		}

	case *types.Interface:
		for i := range u.NumExplicitMethods() {
			methods = append(methods, u.ExplicitMethod(i).Name())
		}
		for i := range u.NumEmbeddeds() {
			if et := types.Unalias(u.EmbeddedType(i)); chainable(et) {
				embedded = append(embedded, et)
			}
		}
	}

	slices.Sort(methods)
	link.Methods = slices.Compact(methods)

	return link, embedded
}

// chainable excludes embedded basic types and constraint terms.
func chainable(t types.Type) bool {
	switch t.(type) {
	case *types.Named, *types.Interface:
		return true
	default:
		return false
	}
}

func kindOf(t types.Type) TypeKind {
	if _, ok := t.(*types.Alias); ok {
		if _, named := types.Unalias(t).(*types.Named); !named {
			return TypeKindAlias
		}
	}

	switch t.Underlying().(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	case *types.Signature:
		return TypeKindFunc
	case *types.Chan:
		return TypeKindChan
	default:
		return TypeKindUnknown
	}
}

func pkgName(p *types.Package) string {
	return p.Name()
}
