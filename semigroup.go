// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Semigroup is the Combine capability instance for a zero-hole shape:
// one closed binary operation, required to be associative (law.go).
type Semigroup struct {
	shape   Shape
	combine func(a, b Erased) Erased
}

// NewSemigroup creates a Semigroup instance from an erased combine body.
func NewSemigroup(shape Shape, combine func(a, b Erased) Erased) *Semigroup {
	return &Semigroup{shape: shape, combine: combine}
}

// SemigroupOf creates a Semigroup instance from a typed combine function,
// erasing it once at the edge.
func SemigroupOf[A any](shape Shape, combine func(A, A) A) *Semigroup {
	return NewSemigroup(shape, Fn2(combine))
}

// Combine merges two values of the instance's shape.
func (s *Semigroup) Combine(a, b Erased) Erased { return s.combine(a, b) }

// Capability implements Instance.
func (s *Semigroup) Capability() Capability { return SemigroupCap }

// Shape implements Instance.
func (s *Semigroup) Shape() Shape { return s.shape }

// SemigroupK is the CombineK capability instance for a one-hole shape:
// an associative binary choice between two carriers, operating
// independently of the hole's contents.
type SemigroupK struct {
	shape    Shape
	combineK func(x, y Erased) Erased
}

// NewSemigroupK creates a SemigroupK instance from an erased combine body.
func NewSemigroupK(shape Shape, combineK func(x, y Erased) Erased) *SemigroupK {
	return &SemigroupK{shape: shape, combineK: combineK}
}

// CombineK combines two carriers of the instance's shape.
func (s *SemigroupK) CombineK(x, y Erased) Erased { return s.combineK(x, y) }

// Capability implements Instance.
func (s *SemigroupK) Capability() Capability { return SemigroupKCap }

// Shape implements Instance.
func (s *SemigroupK) Shape() Shape { return s.shape }

// IntSumSemigroup is the additive Combine instance for Int.
func IntSumSemigroup() *Semigroup {
	return SemigroupOf(IntShape, func(a, b int) int { return a + b })
}

// StringSemigroup is the concatenation Combine instance for String.
func StringSemigroup() *Semigroup {
	return SemigroupOf(StringShape, func(a, b string) string { return a + b })
}
