// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Composition combinators for nested shapes.
// Given instances of the same capability for one-hole shapes F and G,
// these build the instance for F∘G purely from the two instances'
// operations. The composed bodies never unwrap a carrier to a bare
// content value and never branch on the inner shape's discriminant —
// every inner step is routed through the inner instance itself.
// Once both inputs exist, composition is total.

// ComposeFunctor builds the Functor instance for Outer∘Inner.
// Map on the composed shape applies the inner map through the outer map:
// each inner carrier met by the outer transform is transformed by the
// inner instance.
func ComposeFunctor(outer, inner *Functor) *Functor {
	shape := Compose(outer.Shape(), inner.Shape())
	return NewFunctor(shape, func(fga Erased, f func(Erased) Erased) Erased {
		return outer.Map(fga, func(ga Erased) Erased {
			return inner.Map(ga, f)
		})
	})
}

// ComposeApply builds the Apply instance for Outer∘Inner.
// Ap on the composed shape first lifts the inner ap into the outer shape
// via the outer map, then applies it through the outer ap. The wrapped
// function carrier F[G[func]] is thereby turned into F[func] over inner
// carriers and applied to F[G[A]] without ever inspecting a G value
// directly.
func ComposeApply(outer, inner *Apply) *Apply {
	shape := Compose(outer.Shape(), inner.Shape())
	mapE := func(fga Erased, f func(Erased) Erased) Erased {
		return outer.Map(fga, func(ga Erased) Erased {
			return inner.Map(ga, f)
		})
	}
	apE := func(fgf, fga Erased) Erased {
		lifted := outer.Map(fgf, func(gf Erased) Erased {
			return func(ga Erased) Erased {
				return inner.Ap(gf, ga)
			}
		})
		return outer.Ap(lifted, fga)
	}
	return NewApply(shape, mapE, apE)
}
