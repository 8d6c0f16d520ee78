// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "github.com/google/go-cmp/cmp"

// Option represents a value that is either present (Some) or absent (None).
type Option[A any] struct {
	present bool
	value   A
}

// OptionShape is the one-hole shape of Option carriers.
var OptionShape = NewShape("Option", 1)

// Some creates a present value.
func Some[A any](a A) Option[A] {
	return Option[A]{present: true, value: a}
}

// None creates an absent value.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool { return o.present }

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool { return !o.present }

// Get returns the contained value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the contained value, or fallback if absent.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// Equal reports deep equality of two options. go-cmp consults this
// method, so option carriers compare correctly under the law suite's
// default equality.
func (o Option[A]) Equal(other Option[A]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return cmp.Equal(o.value, other.value)
}

// MatchOption pattern matches on the option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the contained value.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// EraseOption erases a typed option into the Option[Erased] carrier used
// by option instances.
func EraseOption[A any](o Option[A]) Option[Erased] {
	return MapOption(o, func(a A) Erased { return a })
}

// AssertOption recovers a typed option from an erased carrier.
func AssertOption[A any](v Erased) Option[A] {
	return MapOption(v.(Option[Erased]), func(x Erased) A { return x.(A) })
}

// OptionFunctor is the Transform instance for Option.
// Carrier type: Option[Erased].
func OptionFunctor() *Functor {
	return NewFunctor(OptionShape, func(fa Erased, f func(Erased) Erased) Erased {
		return MapOption(fa.(Option[Erased]), f)
	})
}

// OptionApply is the Apply instance for Option. An absent function or
// argument yields an absent result, which is what makes the derived
// N-ary operations propagate absence from any position.
func OptionApply() *Apply {
	mapE := func(fa Erased, f func(Erased) Erased) Erased {
		return MapOption(fa.(Option[Erased]), f)
	}
	apE := func(ff, fa Erased) Erased {
		of := ff.(Option[Erased])
		fv, ok := of.Get()
		if !ok {
			return None[Erased]()
		}
		return MapOption(fa.(Option[Erased]), fv.(func(Erased) Erased))
	}
	return NewApply(OptionShape, mapE, apE)
}

// OptionSemigroupK is the CombineK instance for Option: a left-biased
// first-present choice between carriers, independent of the contents.
// This is a different algebra from OptionSemigroup's content merge and
// the two stay separate.
func OptionSemigroupK() *SemigroupK {
	return NewSemigroupK(OptionShape, func(x, y Erased) Erased {
		if x.(Option[Erased]).IsSome() {
			return x
		}
		return y
	})
}

// OptionSemigroup is the dependent Combine instance for Option applied
// to the inner instance's shape: two present values merge through the
// inner Combine, one present value wins over an absent one, and two
// absent values stay absent. The inner instance is held by reference.
func OptionSemigroup(inner *Semigroup) *Semigroup {
	shape := OptionShape.At(inner.Shape())
	return NewSemigroup(shape, func(a, b Erased) Erased {
		oa, ob := a.(Option[Erased]), b.(Option[Erased])
		av, aok := oa.Get()
		bv, bok := ob.Get()
		switch {
		case aok && bok:
			return Some(inner.Combine(av, bv))
		case aok:
			return oa
		default:
			return ob
		}
	})
}

// OptionShow is the dependent Show instance for Option applied to the
// inner instance's shape.
func OptionShow(inner *Show) *Show {
	shape := OptionShape.At(inner.Shape())
	return NewShow(shape, func(v Erased) string {
		o := v.(Option[Erased])
		a, ok := o.Get()
		if !ok {
			return "None"
		}
		return "Some(" + inner.Show(a) + ")"
	})
}
