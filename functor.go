// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Functor is the Transform capability instance for a one-hole shape:
// map the hole's content type through a pure function, preserving the
// shape. Required laws: identity and composition (law.go).
type Functor struct {
	shape Shape
	mapE  func(fa Erased, f func(Erased) Erased) Erased
}

// NewFunctor creates a Functor instance from an erased map body.
// The body receives the carrier and the content transformation and must
// return a carrier of the same shape.
func NewFunctor(shape Shape, mapE func(fa Erased, f func(Erased) Erased) Erased) *Functor {
	return &Functor{shape: shape, mapE: mapE}
}

// Map transforms the contents of a carrier, preserving its shape.
// Typed transformations are erased at the call site with Fn.
func (f *Functor) Map(fa Erased, g func(Erased) Erased) Erased {
	return f.mapE(fa, g)
}

// Capability implements Instance.
func (f *Functor) Capability() Capability { return FunctorCap }

// Shape implements Instance.
func (f *Functor) Shape() Shape { return f.shape }
