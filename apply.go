// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Apply is the capability instance extending Functor for a one-hole
// shape: in addition to Map, it applies a wrapped function to a wrapped
// value within the same shape. Wrapped functions are carriers whose
// contents are func(Erased) Erased values.
//
// Ap's contract is what makes absence propagate: for shapes modeling
// optional presence, an absent function or argument yields an absent
// result, and every derived N-ary operation inherits this for free.
type Apply struct {
	shape Shape
	mapE  func(fa Erased, f func(Erased) Erased) Erased
	apE   func(ff, fa Erased) Erased
}

// NewApply creates an Apply instance from erased map and ap bodies.
func NewApply(
	shape Shape,
	mapE func(fa Erased, f func(Erased) Erased) Erased,
	apE func(ff, fa Erased) Erased,
) *Apply {
	return &Apply{shape: shape, mapE: mapE, apE: apE}
}

// Map transforms the contents of a carrier, preserving its shape.
func (a *Apply) Map(fa Erased, g func(Erased) Erased) Erased {
	return a.mapE(fa, g)
}

// Ap applies a wrapped function to a wrapped value.
// ff must be a carrier whose contents are func(Erased) Erased.
func (a *Apply) Ap(ff, fa Erased) Erased {
	return a.apE(ff, fa)
}

// Functor returns the Functor view of the instance: the same shape and
// map body without the ap operation.
func (a *Apply) Functor() *Functor {
	return NewFunctor(a.shape, a.mapE)
}

// Capability implements Instance.
func (a *Apply) Capability() Capability { return ApplyCap }

// Shape implements Instance.
func (a *Apply) Shape() Shape { return a.shape }
