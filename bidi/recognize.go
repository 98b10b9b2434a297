package bidi

import (
	"reflect"
	"slices"
	"strings"
	"sync"
)

// Verdict is the outcome of structural recognition.
type Verdict int

const (
	// Deferred means the candidate has no inspectable chain. It is not an
	// error: callers fall back to their default check.
	Deferred      Verdict = iota // deferred
	Conforming                   // conforming
	NonConforming                // non-conforming
)

var contractPkgPath = reflect.TypeFor[Pair[int, int]]().PkgPath()

// Recognizer decides whether a type satisfies the bidirectional mapping
// contract by inspecting the methods it exposes, without requiring the type
// to name the contract anywhere.
//
// A Recognizer is immutable after construction and safe for concurrent use.
type Recognizer struct {
	contract string
	names    []string
	cache    *sync.Map // reflect.Type -> Verdict
}

// Option configures a Recognizer.
type Option func(*Recognizer)

// WithCache memoizes verdicts per candidate type.
func WithCache() Option {
	return func(r *Recognizer) {
		r.cache = &sync.Map{}
	}
}

// RequireInvertedItems adds InvertedItems to the required names.
func RequireInvertedItems() Option {
	return func(r *Recognizer) {
		if !slices.Contains(r.names, invertedItems.Method) {
			r.names = append(r.names, invertedItems.Method)
		}
	}
}

// NewRecognizer creates a Recognizer for the bidirectional mapping contract.
func NewRecognizer(opts ...Option) *Recognizer {
	r := &Recognizer{
		contract: ContractName,
		names:    CapabilityNames(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Contract returns the name of the contract this recognizer checks.
func (r *Recognizer) Contract() string {
	return r.contract
}

// Names returns the method names a conforming type must expose.
func (r *Recognizer) Names() []string {
	return slices.Clone(r.names)
}

// Check returns the verdict for t.
func (r *Recognizer) Check(t reflect.Type) Verdict {
	if t == nil {
		return Deferred
	}

	if r.cache != nil {
		if v, ok := r.cache.Load(t); ok {
			return v.(Verdict)
		}
	}

	v := r.check(t)
	if r.cache != nil {
		r.cache.Store(t, v)
	}

	return v
}

func (r *Recognizer) check(t reflect.Type) Verdict {
	chain, ok := Chain(t)
	if !ok {
		return Deferred
	}

	// Types built on the contract itself need no structural inspection.
	if slices.ContainsFunc(chain, isContract) {
		return Conforming
	}

	if len(missing(chain, r.names)) > 0 {
		return NonConforming
	}

	return Conforming
}

// Hook is the form of Check reused when recognition is requested on behalf
// of some contract. It only answers for its own contract and returns
// Deferred for any other, so derived contracts keep their default checks.
func (r *Recognizer) Hook(contract string, t reflect.Type) Verdict {
	if contract != r.contract {
		return Deferred
	}

	return r.Check(t)
}

// Conforms reports whether t satisfies the contract. A Deferred verdict is
// resolved by fallback; a nil fallback treats it as not conforming.
func (r *Recognizer) Conforms(t reflect.Type, fallback func(reflect.Type) bool) bool {
	switch r.Check(t) {
	case Conforming:
		return true
	case NonConforming:
		return false
	default:
		if fallback == nil {
			return false
		}
		return fallback(t)
	}
}

// Missing returns the required names no member of t's chain provides, in
// sorted order. It returns nil when t has no chain or builds on the contract.
func (r *Recognizer) Missing(t reflect.Type) []string {
	chain, ok := Chain(t)
	if !ok || slices.ContainsFunc(chain, isContract) {
		return nil
	}

	return missing(chain, r.names)
}

var defaultRecognizer = NewRecognizer(WithCache())

// PackagePath returns the import path of this package, which together with
// ContractType identifies the contract interface to static tools.
func PackagePath() string {
	return contractPkgPath
}

// IsBidirectionalMapping checks t with the default cached recognizer.
func IsBidirectionalMapping(t reflect.Type) Verdict {
	return defaultRecognizer.Check(t)
}

// RecognizeValue checks the dynamic type of v.
func RecognizeValue(v any) Verdict {
	return defaultRecognizer.Check(reflect.TypeOf(v))
}

// Chain returns t followed by the types embedded in it, breadth first, with
// pointers dereferenced and each type listed once. The second result is false
// when t is nil or is an unnamed non-struct type (or a pointer to one), in
// which case there is no chain to inspect. Named pointer types are kept as
// they are: their method set is empty.
func Chain(t reflect.Type) ([]reflect.Type, bool) {
	if t == nil {
		return nil, false
	}

	base := t
	if base.Kind() == reflect.Pointer && base.Name() == "" {
		base = base.Elem()
	}
	if base.Name() == "" && base.Kind() != reflect.Struct {
		return nil, false
	}

	chain := []reflect.Type{base}
	seen := map[reflect.Type]bool{base: true}

	for i := 0; i < len(chain); i++ {
		st := chain[i]
		if st.Kind() != reflect.Struct {
			continue
		}

		for j := range st.NumField() {
			field := st.Field(j)
			if !field.Anonymous {
				continue
			}

			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if seen[ft] {
				continue
			}

			seen[ft] = true
			chain = append(chain, ft)
		}
	}

	return chain, true
}

func missing(chain []reflect.Type, names []string) []string {
	var out []string
	for _, name := range names {
		if !slices.ContainsFunc(chain, func(t reflect.Type) bool { return defines(t, name) }) {
			out = append(out, name)
		}
	}
	slices.Sort(out)

	return out
}

// defines reports whether t exposes a method called name with either
// receiver kind.
func defines(t reflect.Type, name string) bool {
	if _, ok := t.MethodByName(name); ok {
		return true
	}

	if t.Kind() == reflect.Interface {
		return false
	}

	_, ok := reflect.PointerTo(t).MethodByName(name)
	return ok
}

func isContract(t reflect.Type) bool {
	return t.PkgPath() == contractPkgPath && strings.HasPrefix(t.Name(), ContractType+"[")
}
