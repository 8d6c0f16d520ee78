// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/typeclass"
)

func someE(x int) typeclass.Erased {
	return typeclass.EraseOption(typeclass.Some(x))
}

func noneE() typeclass.Erased {
	return typeclass.EraseOption(typeclass.None[int]())
}

func TestComposeFunctorSliceOfOption(t *testing.T) {
	f := typeclass.ComposeFunctor(typeclass.SliceFunctor(), typeclass.OptionFunctor())

	in := []typeclass.Erased{someE(1), noneE(), someE(3)}
	out := f.Map(in, typeclass.Fn(func(x int) int { return x + 1 }))

	want := []typeclass.Erased{someE(2), noneE(), someE(4)}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("composed map mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeFunctorOptionOfSlice(t *testing.T) {
	f := typeclass.ComposeFunctor(typeclass.OptionFunctor(), typeclass.SliceFunctor())

	in := typeclass.EraseOption(typeclass.Some[typeclass.Erased](typeclass.EraseSlice([]int{1, 2, 3})))
	out := f.Map(in, typeclass.Fn(func(x int) int { return x * 10 }))

	o := out.(typeclass.Option[typeclass.Erased])
	inner, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, []int{10, 20, 30}, typeclass.AssertSlice[int](inner))
}

func TestComposeFunctorShape(t *testing.T) {
	f := typeclass.ComposeFunctor(typeclass.SliceFunctor(), typeclass.OptionFunctor())
	assert.Equal(t, "Slice[_]∘Option[_]", f.Shape().Key())
	assert.Equal(t, "Functor", f.Capability().Name())
}

// Composing three shapes left-to-right or right-to-left must transform
// identically. The composed instances differ structurally; the law is
// operational equivalence on the same input.
func TestComposeFunctorAssociativity(t *testing.T) {
	sl := typeclass.SliceFunctor()
	op := typeclass.OptionFunctor()

	leftFirst := typeclass.ComposeFunctor(typeclass.ComposeFunctor(sl, op), op)
	rightFirst := typeclass.ComposeFunctor(sl, typeclass.ComposeFunctor(op, op))

	in := []typeclass.Erased{
		typeclass.EraseOption(typeclass.Some[typeclass.Erased](someE(1))),
		typeclass.EraseOption(typeclass.None[typeclass.Erased]()),
		typeclass.EraseOption(typeclass.Some[typeclass.Erased](noneE())),
	}
	inc := typeclass.Fn(func(x int) int { return x + 1 })

	a := leftFirst.Map(in, inc)
	b := rightFirst.Map(in, inc)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("grouping changed the result (-left +right):\n%s", diff)
	}
}

func TestComposeApplySliceOfOption(t *testing.T) {
	ap := typeclass.ComposeApply(typeclass.SliceApply(), typeclass.OptionApply())

	add := typeclass.Fn2(func(a, b int) int { return a + b })
	curried := func(a typeclass.Erased) typeclass.Erased {
		return func(b typeclass.Erased) typeclass.Erased { return add(a, b) }
	}

	ff := ap.Map([]typeclass.Erased{someE(10), noneE()}, curried)
	fa := []typeclass.Erased{someE(1), someE(2)}

	out := ap.Ap(ff, fa)
	want := []typeclass.Erased{someE(11), someE(12), noneE(), noneE()}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("composed ap mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeApplyMatchesComposedFunctorMap(t *testing.T) {
	ap := typeclass.ComposeApply(typeclass.SliceApply(), typeclass.OptionApply())
	f := typeclass.ComposeFunctor(typeclass.SliceFunctor(), typeclass.OptionFunctor())

	in := []typeclass.Erased{someE(1), noneE(), someE(3)}
	double := typeclass.Fn(func(x int) int { return x * 2 })

	assert.True(t, typeclass.DeepEq(f.Map(in, double), ap.Map(in, double)))
}
