// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/typeclass"
)

func TestOptionBasics(t *testing.T) {
	s := typeclass.Some(42)
	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())
	v, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, s.GetOrElse(0))

	n := typeclass.None[int]()
	assert.True(t, n.IsNone())
	_, ok = n.Get()
	assert.False(t, ok)
	assert.Equal(t, 7, n.GetOrElse(7))
}

func TestOptionMatchAndMap(t *testing.T) {
	got := typeclass.MatchOption(typeclass.Some(2),
		func() string { return "none" },
		func(x int) string { return "some" },
	)
	assert.Equal(t, "some", got)

	doubled := typeclass.MapOption(typeclass.Some(21), func(x int) int { return x * 2 })
	assert.Equal(t, typeclass.Some(42), doubled)
	assert.True(t, typeclass.MapOption(typeclass.None[int](), func(x int) int { return x }).IsNone())
}

func TestOptionEqual(t *testing.T) {
	assert.True(t, typeclass.Some(1).Equal(typeclass.Some(1)))
	assert.False(t, typeclass.Some(1).Equal(typeclass.Some(2)))
	assert.False(t, typeclass.Some(1).Equal(typeclass.None[int]()))
	assert.True(t, typeclass.None[int]().Equal(typeclass.None[int]()))
}

func TestOptionEraseAssertRoundTrip(t *testing.T) {
	erased := typeclass.EraseOption(typeclass.Some(42))
	assert.Equal(t, typeclass.Some(42), typeclass.AssertOption[int](erased))

	erased = typeclass.EraseOption(typeclass.None[int]())
	assert.True(t, typeclass.AssertOption[int](erased).IsNone())
}

func TestOptionFunctorInstance(t *testing.T) {
	f := typeclass.OptionFunctor()
	assert.Equal(t, "Option[_]", f.Shape().Key())

	out := f.Map(someE(20), typeclass.Fn(func(x int) int { return x + 1 }))
	assert.Equal(t, typeclass.Some(21), typeclass.AssertOption[int](out))

	out = f.Map(noneE(), typeclass.Fn(func(x int) int { return x + 1 }))
	assert.True(t, typeclass.AssertOption[int](out).IsNone())
}

func TestOptionApplyInstance(t *testing.T) {
	ap := typeclass.OptionApply()
	inc := typeclass.Fn(func(x int) int { return x + 1 })

	out := ap.Ap(typeclass.Some[typeclass.Erased](inc), someE(41))
	assert.Equal(t, typeclass.Some(42), typeclass.AssertOption[int](out))

	out = ap.Ap(typeclass.EraseOption(typeclass.None[typeclass.Erased]()), someE(41))
	assert.True(t, typeclass.AssertOption[int](out).IsNone())

	out = ap.Ap(typeclass.Some[typeclass.Erased](inc), noneE())
	assert.True(t, typeclass.AssertOption[int](out).IsNone())
}

// First-present choice and content merging are different algebras over
// the same shape family and must not be unified.
func TestOptionSemigroupKVersusSemigroup(t *testing.T) {
	sk := typeclass.OptionSemigroupK()
	merge := typeclass.OptionSemigroup(typeclass.IntSumSemigroup())

	a, b := someE(1), someE(2)

	// CombineK: left-biased first-present, contents untouched
	assert.Equal(t, typeclass.Some(1), typeclass.AssertOption[int](sk.CombineK(a, b)))
	assert.Equal(t, typeclass.Some(2), typeclass.AssertOption[int](sk.CombineK(noneE(), b)))
	assert.True(t, typeclass.AssertOption[int](sk.CombineK(noneE(), noneE())).IsNone())

	// Combine: contents merge through the inner instance
	assert.Equal(t, typeclass.Some(3), typeclass.AssertOption[int](merge.Combine(a, b)))
	assert.Equal(t, typeclass.Some(2), typeclass.AssertOption[int](merge.Combine(noneE(), b)))
	assert.True(t, typeclass.AssertOption[int](merge.Combine(noneE(), noneE())).IsNone())

	assert.Equal(t, "Option[_]", sk.Shape().Key())
	assert.Equal(t, "Option[Int]", merge.Shape().Key())
}

func TestOptionShowInstance(t *testing.T) {
	show := typeclass.OptionShow(typeclass.IntShow())
	assert.Equal(t, "Option[Int]", show.Shape().Key())
	assert.Equal(t, "Some(42)", show.Show(someE(42)))
	assert.Equal(t, "None", show.Show(noneE()))

	quoted := typeclass.OptionShow(typeclass.StringShow())
	assert.Equal(t, `Some("hi")`, quoted.Show(typeclass.EraseOption(typeclass.Some("hi"))))
}
