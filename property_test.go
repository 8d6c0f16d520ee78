// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/typeclass"
)

const propertyN = 1000

// randInt returns a random int in [-1000, 1000].
func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// randIntSlice returns a random []Erased carrier of length [0, 8].
func randIntSlice(rng *rand.Rand) []typeclass.Erased {
	n := rng.IntN(9)
	out := make([]typeclass.Erased, n)
	for i := range out {
		out[i] = randInt(rng)
	}
	return out
}

// randOption returns a random Option[Erased] carrier, absent ~1/3 of the time.
func randOption(rng *rand.Rand) typeclass.Option[typeclass.Erased] {
	if rng.IntN(3) == 0 {
		return typeclass.None[typeclass.Erased]()
	}
	return typeclass.Some[typeclass.Erased](randInt(rng))
}

// --- Group 1: Semigroup Laws ---

// TestPropertySemigroupAssociativity: combine(combine(a,b),c) ≡ combine(a,combine(b,c))
func TestPropertySemigroupAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s := typeclass.IntSumSemigroup()
	for range propertyN {
		a, b, c := randInt(rng), randInt(rng), randInt(rng)
		left := s.Combine(s.Combine(a, b), c)
		right := s.Combine(a, s.Combine(b, c))
		if left != right {
			t.Fatalf("associativity: %v != %v (a=%d b=%d c=%d)", left, right, a, b, c)
		}
	}
}

// TestPropertyOptionSemigroupAssociativity: the dependent content-merging
// instance stays associative for every presence pattern.
func TestPropertyOptionSemigroupAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	s := typeclass.OptionSemigroup(typeclass.IntSumSemigroup())
	for range propertyN {
		a, b, c := randOption(rng), randOption(rng), randOption(rng)
		left := s.Combine(s.Combine(a, b), c)
		right := s.Combine(a, s.Combine(b, c))
		if !typeclass.DeepEq(left, right) {
			t.Fatalf("associativity: %v != %v (a=%v b=%v c=%v)", left, right, a, b, c)
		}
	}
}

// TestPropertySemigroupKFirstPresentAssociativity: first-present choice
// is associative over carriers.
func TestPropertySemigroupKFirstPresentAssociativity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	sk := typeclass.OptionSemigroupK()
	for range propertyN {
		x, y, z := randOption(rng), randOption(rng), randOption(rng)
		left := sk.CombineK(sk.CombineK(x, y), z)
		right := sk.CombineK(x, sk.CombineK(y, z))
		if !typeclass.DeepEq(left, right) {
			t.Fatalf("associativity: %v != %v (x=%v y=%v z=%v)", left, right, x, y, z)
		}
	}
}

// --- Group 2: Functor Laws ---

// TestPropertySliceFunctorIdentity: map(fa, id) ≡ fa
func TestPropertySliceFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := typeclass.SliceFunctor()
	for range propertyN {
		fa := randIntSlice(rng)
		got := f.Map(fa, typeclass.Identity)
		if !typeclass.DeepEq(got, fa) {
			t.Fatalf("identity: %v != %v", got, fa)
		}
	}
}

// TestPropertySliceFunctorComposition: map(map(fa,f),g) ≡ map(fa, g∘f)
func TestPropertySliceFunctorComposition(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := typeclass.SliceFunctor()
	inc := typeclass.Fn(func(x int) int { return x + 3 })
	dbl := typeclass.Fn(func(x int) int { return x * 2 })
	for range propertyN {
		fa := randIntSlice(rng)
		left := f.Map(f.Map(fa, inc), dbl)
		right := f.Map(fa, func(x typeclass.Erased) typeclass.Erased { return dbl(inc(x)) })
		if !typeclass.DeepEq(left, right) {
			t.Fatalf("composition: %v != %v", left, right)
		}
	}
}

// TestPropertyComposedFunctorIdentity: the composed Slice∘Option
// instance satisfies the same identity law as its parts.
func TestPropertyComposedFunctorIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	f := typeclass.ComposeFunctor(typeclass.SliceFunctor(), typeclass.OptionFunctor())
	for range propertyN {
		n := rng.IntN(5)
		fa := make([]typeclass.Erased, n)
		for i := range fa {
			fa[i] = randOption(rng)
		}
		got := f.Map(fa, typeclass.Identity)
		if !typeclass.DeepEq(got, fa) {
			t.Fatalf("identity: %v != %v", got, fa)
		}
	}
}

// --- Group 3: Applicative Absence Propagation ---

// TestPropertyMapNAbsencePropagation: absence in any argument position
// yields absence, for random arities and positions.
func TestPropertyMapNAbsencePropagation(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ap := typeclass.OptionApply()
	sum := func(args []typeclass.Erased) typeclass.Erased {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total
	}
	for range propertyN {
		n := rng.IntN(typeclass.MaxArity) + 1
		args := make([]typeclass.Erased, n)
		want := 0
		absent := false
		for i := range args {
			o := randOption(rng)
			args[i] = o
			if v, ok := o.Get(); ok {
				want += v.(int)
			} else {
				absent = true
			}
		}
		out, err := ap.MapN(sum, args...)
		if err != nil {
			t.Fatalf("mapN: %v", err)
		}
		got := typeclass.AssertOption[int](out)
		if absent != got.IsNone() {
			t.Fatalf("absence not propagated: args=%v got=%v", args, got)
		}
		if !absent && got.GetOrElse(-1) != want {
			t.Fatalf("sum: got %v, want %d", got, want)
		}
	}
}

// --- Group 4: Derived vs Primitive Agreement ---

// TestPropertyTupledMatchesJoined: the variadic fold and the fluent
// builder are the same fold and must agree on every input.
func TestPropertyTupledMatchesJoined(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	ap := typeclass.OptionApply()
	for range propertyN {
		n := rng.IntN(typeclass.MaxArity-1) + 2
		args := make([]typeclass.Erased, n)
		for i := range args {
			args[i] = randOption(rng)
		}
		direct, err := ap.Tupled(args...)
		if err != nil {
			t.Fatalf("tupled: %v", err)
		}
		j := ap.Join(args[0])
		for _, fa := range args[1:] {
			j = j.And(fa)
		}
		built, err := j.Tupled()
		if err != nil {
			t.Fatalf("joined: %v", err)
		}
		if !typeclass.DeepEq(direct, built) {
			t.Fatalf("fold mismatch: %v != %v", direct, built)
		}
	}
}
