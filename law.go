// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Law suite: executable universally-quantified equalities each instance
// must satisfy. Laws are semantic, not structural — they cannot be
// checked at registration time and are validated here over
// caller-supplied sample values. A falsified law is reported as a
// LawError carrying the counterexample.

// Eq decides equality of two carriers for law checking.
type Eq func(a, b Erased) bool

// DeepEq is the default equality: go-cmp deep comparison, honoring
// Equal methods on carriers such as Option and Either.
func DeepEq(a, b Erased) bool {
	return cmp.Equal(a, b)
}

// Identity is the identity content transformation, used by the functor
// identity law and available to callers building law samples.
func Identity(v Erased) Erased { return v }

// CheckSemigroup validates associativity over every ordered triple of
// the samples: combine(combine(a,b),c) == combine(a,combine(b,c)).
func CheckSemigroup(s *Semigroup, eq Eq, samples ...Erased) error {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				left := s.Combine(s.Combine(a, b), c)
				right := s.Combine(a, s.Combine(b, c))
				if !eq(left, right) {
					return &LawError{
						Capability: SemigroupCap,
						Shape:      s.Shape(),
						Law:        "associativity",
						Detail:     fmt.Sprintf("a=%v b=%v c=%v: %v != %v", a, b, c, left, right),
					}
				}
			}
		}
	}
	return nil
}

// CheckSemigroupK validates associativity of the carrier choice over
// every ordered triple of the sample carriers.
func CheckSemigroupK(s *SemigroupK, eq Eq, samples ...Erased) error {
	for _, x := range samples {
		for _, y := range samples {
			for _, z := range samples {
				left := s.CombineK(s.CombineK(x, y), z)
				right := s.CombineK(x, s.CombineK(y, z))
				if !eq(left, right) {
					return &LawError{
						Capability: SemigroupKCap,
						Shape:      s.Shape(),
						Law:        "associativity",
						Detail:     fmt.Sprintf("x=%v y=%v z=%v: %v != %v", x, y, z, left, right),
					}
				}
			}
		}
	}
	return nil
}

// CheckFunctor validates the identity law map(fa, id) == fa over the
// sample carriers, and the composition law map(map(fa,f),g) ==
// map(fa, g∘f) over every ordered pair of the sample transformations.
func CheckFunctor(f *Functor, eq Eq, samples []Erased, fns ...func(Erased) Erased) error {
	for _, fa := range samples {
		if got := f.Map(fa, Identity); !eq(got, fa) {
			return &LawError{
				Capability: FunctorCap,
				Shape:      f.Shape(),
				Law:        "identity",
				Detail:     fmt.Sprintf("fa=%v: map(fa, id)=%v", fa, got),
			}
		}
		for i, g := range fns {
			for j, h := range fns {
				left := f.Map(f.Map(fa, g), h)
				right := f.Map(fa, func(x Erased) Erased { return h(g(x)) })
				if !eq(left, right) {
					return &LawError{
						Capability: FunctorCap,
						Shape:      f.Shape(),
						Law:        "composition",
						Detail:     fmt.Sprintf("fa=%v f=fns[%d] g=fns[%d]: %v != %v", fa, i, j, left, right),
					}
				}
			}
		}
	}
	return nil
}

// CheckApply validates the composition law of effectful application:
// chaining two wrapped applications equals one application of the
// composed wrapped function,
// ap(fg, ap(ff, fa)) == ap(ap(map(fg, andThen), ff), fa)
// where andThen(g)(f) = x => g(f(x)). ffs and fgs are carriers whose
// contents are func(Erased) Erased values.
func CheckApply(a *Apply, eq Eq, ffs, fgs, fas []Erased) error {
	andThen := func(gv Erased) Erased {
		g := gv.(func(Erased) Erased)
		return func(fv Erased) Erased {
			f := fv.(func(Erased) Erased)
			return func(x Erased) Erased {
				return g(f(x))
			}
		}
	}
	for _, ff := range ffs {
		for _, fg := range fgs {
			for _, fa := range fas {
				left := a.Ap(fg, a.Ap(ff, fa))
				right := a.Ap(a.Ap(a.Map(fg, andThen), ff), fa)
				if !eq(left, right) {
					return &LawError{
						Capability: ApplyCap,
						Shape:      a.Shape(),
						Law:        "composition",
						Detail:     fmt.Sprintf("%v != %v", left, right),
					}
				}
			}
		}
	}
	return nil
}
