// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Instance binds a (capability, shape) pair to concrete operation bodies.
// An instance is primitive (hand-written for a base shape), derived
// (built from another instance by a derivation rule) or composed (built
// by a composition combinator for a nested shape). All instances are
// immutable value objects once constructed.
//
// Concrete instance types are *Semigroup, *SemigroupK, *Functor, *Apply
// and *Show; callers recover them from a resolved Instance by type
// assertion.
type Instance interface {
	// Capability returns the descriptor the instance implements.
	Capability() Capability

	// Shape returns the shape the instance is bound to.
	Shape() Shape
}
