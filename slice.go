// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "strings"

// SliceShape is the one-hole shape of sequence carriers.
// Carrier type: []Erased.
var SliceShape = NewShape("Slice", 1)

// EraseSlice erases a typed slice into the []Erased carrier used by
// slice instances.
func EraseSlice[A any](xs []A) []Erased {
	out := make([]Erased, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

// AssertSlice recovers a typed slice from an erased carrier.
func AssertSlice[A any](v Erased) []A {
	xs := v.([]Erased)
	out := make([]A, len(xs))
	for i, x := range xs {
		out[i] = x.(A)
	}
	return out
}

// SliceFunctor is the Transform instance for sequences.
func SliceFunctor() *Functor {
	return NewFunctor(SliceShape, func(fa Erased, f func(Erased) Erased) Erased {
		xs := fa.([]Erased)
		out := make([]Erased, len(xs))
		for i, x := range xs {
			out[i] = f(x)
		}
		return out
	})
}

// SliceApply is the Apply instance for sequences: each wrapped function
// is applied to each wrapped value, in function-major order.
func SliceApply() *Apply {
	mapE := func(fa Erased, f func(Erased) Erased) Erased {
		xs := fa.([]Erased)
		out := make([]Erased, len(xs))
		for i, x := range xs {
			out[i] = f(x)
		}
		return out
	}
	apE := func(ff, fa Erased) Erased {
		fs := ff.([]Erased)
		xs := fa.([]Erased)
		out := make([]Erased, 0, len(fs)*len(xs))
		for _, f := range fs {
			g := f.(func(Erased) Erased)
			for _, x := range xs {
				out = append(out, g(x))
			}
		}
		return out
	}
	return NewApply(SliceShape, mapE, apE)
}

// SliceSemigroupK is the CombineK instance for sequences: concatenation.
func SliceSemigroupK() *SemigroupK {
	return NewSemigroupK(SliceShape, func(x, y Erased) Erased {
		xs, ys := x.([]Erased), y.([]Erased)
		out := make([]Erased, 0, len(xs)+len(ys))
		out = append(out, xs...)
		out = append(out, ys...)
		return out
	})
}

// SliceShow is the dependent Show instance for sequences applied to the
// inner instance's shape.
func SliceShow(inner *Show) *Show {
	shape := SliceShape.At(inner.Shape())
	return NewShow(shape, func(v Erased) string {
		xs := v.([]Erased)
		var b strings.Builder
		b.WriteByte('[')
		for i, x := range xs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(inner.Show(x))
		}
		b.WriteByte(']')
		return b.String()
	})
}
