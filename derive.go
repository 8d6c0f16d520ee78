// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "fmt"

// Derived operations, mechanically generated from the minimal operation
// set of each capability.
//
// Minimal definition: Map alone yields Lift and FProduct; Map plus Ap
// yields the whole N-ary family. The N-ary forms are folds over one
// binary combinator (apAppend), not per-arity hand-written bodies, so
// they inherit whatever laws the binary primitives satisfy — including
// absence propagation for shapes that model optional presence.

// MaxArity is the fixed practical upper bound for the derived N-ary
// family. Calls beyond it report ErrArity rather than truncating.
const MaxArity = 8

// Lift turns a content transformation into a carrier transformation by
// partially applying Map.
func (f *Functor) Lift(g func(Erased) Erased) func(Erased) Erased {
	return func(fa Erased) Erased {
		return f.Map(fa, g)
	}
}

// FProduct pairs each content value with the result of applying g to it,
// producing a carrier of Pair[Erased, Erased].
func (f *Functor) FProduct(fa Erased, g func(Erased) Erased) Erased {
	return f.Map(fa, func(a Erased) Erased {
		return Pair[Erased, Erased]{Fst: a, Snd: g(a)}
	})
}

// singleton wraps a content value as a one-element argument list.
// Named function rather than closure, in the manner of rightCont.
func singleton(x Erased) Erased {
	return []Erased{x}
}

// appendArg turns an accumulated argument list into a function that
// appends one more argument. This is the content-level half of the
// single binary combinator the whole N-ary family folds over.
func appendArg(xs Erased) Erased {
	prev := xs.([]Erased)
	return func(x Erased) Erased {
		out := make([]Erased, len(prev)+1)
		copy(out, prev)
		out[len(prev)] = x
		return out
	}
}

// apAppend is the binary accumulator step: given a carrier of argument
// lists and a carrier of one more value, it produces a carrier of
// extended argument lists via one Map and one Ap.
func (a *Apply) apAppend(acc, fa Erased) Erased {
	return a.Ap(a.Map(acc, appendArg), fa)
}

// Tupled combines N carriers into one carrier of N-element argument
// lists, folding left from the first carrier. N must be in 1..MaxArity.
func (a *Apply) Tupled(fas ...Erased) (Erased, error) {
	if len(fas) < 1 || len(fas) > MaxArity {
		return nil, fmt.Errorf("%w: Tupled over %d carriers", ErrArity, len(fas))
	}
	acc := a.Map(fas[0], singleton)
	for _, fa := range fas[1:] {
		acc = a.apAppend(acc, fa)
	}
	return acc, nil
}

// MapN applies an N-ary content function to N carriers. The wrapping of
// the function itself is short-circuited: the arguments are tupled and
// the function applied through Map.
func (a *Apply) MapN(f func(args []Erased) Erased, fas ...Erased) (Erased, error) {
	tup, err := a.Tupled(fas...)
	if err != nil {
		return nil, err
	}
	return a.Map(tup, func(xs Erased) Erased {
		return f(xs.([]Erased))
	}), nil
}

// ApN applies a wrapped N-ary function to N carriers. ff must be a
// carrier whose contents are func([]Erased) Erased values. Absence in
// ff or in any argument propagates to the result by Ap's own contract.
func (a *Apply) ApN(ff Erased, fas ...Erased) (Erased, error) {
	tup, err := a.Tupled(fas...)
	if err != nil {
		return nil, err
	}
	unary := a.Map(ff, func(fv Erased) Erased {
		g := fv.(func([]Erased) Erased)
		return func(xs Erased) Erased {
			return g(xs.([]Erased))
		}
	})
	return a.Ap(unary, tup), nil
}

// Joined is the fluent accumulator over an Apply instance: carriers are
// attached one at a time with And, and the accumulated arity is
// discharged with Tupled, MapTo or ApTo. Joined values are immutable;
// And returns a new accumulator.
type Joined struct {
	ap  *Apply
	acc Erased // carrier of []Erased
	n   int
	err error
}

// Join starts an accumulator with one carrier.
func (a *Apply) Join(fa Erased) *Joined {
	return &Joined{ap: a, acc: a.Map(fa, singleton), n: 1}
}

// And attaches one more carrier. Exceeding MaxArity poisons the
// accumulator; the error surfaces at the terminal operation.
func (j *Joined) And(fa Erased) *Joined {
	if j.err != nil {
		return j
	}
	if j.n == MaxArity {
		return &Joined{ap: j.ap, n: j.n, err: fmt.Errorf("%w: joined arity beyond %d", ErrArity, MaxArity)}
	}
	return &Joined{ap: j.ap, acc: j.ap.apAppend(j.acc, fa), n: j.n + 1}
}

// Arity returns the number of carriers attached so far.
func (j *Joined) Arity() int { return j.n }

// Tupled returns the carrier of accumulated argument lists.
func (j *Joined) Tupled() (Erased, error) {
	if j.err != nil {
		return nil, j.err
	}
	return j.acc, nil
}

// MapTo applies an N-ary content function to the accumulated arguments.
func (j *Joined) MapTo(f func(args []Erased) Erased) (Erased, error) {
	if j.err != nil {
		return nil, j.err
	}
	return j.ap.Map(j.acc, func(xs Erased) Erased {
		return f(xs.([]Erased))
	}), nil
}

// ApTo applies a wrapped N-ary function to the accumulated arguments.
// ff must be a carrier whose contents are func([]Erased) Erased values.
func (j *Joined) ApTo(ff Erased) (Erased, error) {
	if j.err != nil {
		return nil, j.err
	}
	unary := j.ap.Map(ff, func(fv Erased) Erased {
		g := fv.(func([]Erased) Erased)
		return func(xs Erased) Erased {
			return g(xs.([]Erased))
		}
	})
	return j.ap.Ap(unary, j.acc), nil
}
