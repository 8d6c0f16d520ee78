// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "github.com/google/go-cmp/cmp"

// Either represents a value that is either Left (error) or Right (success).
//
// As a shape, Either has two holes. A one-hole capability needs all but
// one hole fixed first: EitherShape.Fix(left) is the one-hole shape
// Either[L, _] whose instances are right-biased.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// EitherShape is the two-hole shape of Either carriers.
var EitherShape = NewShape("Either", 2)

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// Equal reports deep equality of two eithers, for go-cmp comparison
// under the law suite's default equality.
func (e Either[E, A]) Equal(other Either[E, A]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return cmp.Equal(e.right, other.right)
	}
	return cmp.Equal(e.left, other.left)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// EraseEither erases a typed either into the Either[Erased, Erased]
// carrier used by either instances.
func EraseEither[E, A any](e Either[E, A]) Either[Erased, Erased] {
	if e.isRight {
		return Right[Erased, Erased](e.right)
	}
	return Left[Erased, Erased](e.left)
}

// AssertEither recovers a typed either from an erased carrier.
func AssertEither[E, A any](v Erased) Either[E, A] {
	e := v.(Either[Erased, Erased])
	if e.isRight {
		return Right[E](e.right.(A))
	}
	return Left[E, A](e.left.(E))
}

// EitherFunctor is the Transform instance for Either[L, _], the one-hole
// shape obtained by fixing the left hole. Map transforms Right values
// and passes Left through untouched.
// Carrier type: Either[Erased, Erased].
func EitherFunctor(left Shape) *Functor {
	return NewFunctor(EitherShape.Fix(left), func(fa Erased, f func(Erased) Erased) Erased {
		return MapEither(fa.(Either[Erased, Erased]), f)
	})
}

// EitherApply is the Apply instance for Either[L, _]. A Left function or
// argument short-circuits to the first Left encountered.
func EitherApply(left Shape) *Apply {
	mapE := func(fa Erased, f func(Erased) Erased) Erased {
		return MapEither(fa.(Either[Erased, Erased]), f)
	}
	apE := func(ff, fa Erased) Erased {
		ef := ff.(Either[Erased, Erased])
		fv, ok := ef.GetRight()
		if !ok {
			return ef
		}
		return MapEither(fa.(Either[Erased, Erased]), fv.(func(Erased) Erased))
	}
	return NewApply(EitherShape.Fix(left), mapE, apE)
}

// EitherShow is the dependent Show instance for Either with both holes
// applied, requiring renderings for both content types.
func EitherShow(left, right *Show) *Show {
	shape := EitherShape.Fix(left.Shape()).At(right.Shape())
	return NewShow(shape, func(v Erased) string {
		e := v.(Either[Erased, Erased])
		if r, ok := e.GetRight(); ok {
			return "Right(" + right.Show(r) + ")"
		}
		l, _ := e.GetLeft()
		return "Left(" + left.Show(l) + ")"
	})
}
