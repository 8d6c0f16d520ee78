// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Erased represents a type-erased value flowing through capability
// operations. Instance operation bodies process heterogeneous content
// types through a homogeneous pipeline; concrete types are recovered
// via type assertions at instance boundaries.
//
// Go has no higher-kinded type parameters, so an instance for a one-hole
// shape cannot carry a function that is polymorphic in the hole's content
// type. Erased is the defunctionalized answer: operations are stated over
// Erased once, and the typed surface lives in the Fn/Fn2 adapters and the
// per-container Erase/Assert helpers.
type Erased = any

// Fn erases a typed unary function for use with instance operations.
// The returned function asserts its argument back to A before applying f.
func Fn[A, B any](f func(A) B) func(Erased) Erased {
	return func(v Erased) Erased {
		return f(v.(A))
	}
}

// Fn2 erases a typed binary function for use with instance operations.
func Fn2[A, B, C any](f func(A, B) C) func(Erased, Erased) Erased {
	return func(a, b Erased) Erased {
		return f(a.(A), b.(B))
	}
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
