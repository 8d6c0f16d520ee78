// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// RegisterDefaults wires the built-in container instances and derivation
// rules into a registry: Option, Slice and Func carriers, the Int,
// String and Bool primitives, and the dependent Show/Combine rules for Option and
// Slice. The engine's resolution logic knows nothing of these — they are
// ordinary collaborator registrations, and callers compose their own set
// by registering directly instead.
//
// The first registration error aborts and is returned; with a fresh
// registry none occurs.
func RegisterDefaults(reg *Registry) error {
	steps := []func() error{
		// one-hole capability instances
		func() error { return reg.Register(FunctorCap, OptionShape, OptionFunctor()) },
		func() error { return reg.Register(ApplyCap, OptionShape, OptionApply()) },
		func() error { return reg.Register(SemigroupKCap, OptionShape, OptionSemigroupK()) },
		func() error { return reg.Register(FunctorCap, SliceShape, SliceFunctor()) },
		func() error { return reg.Register(ApplyCap, SliceShape, SliceApply()) },
		func() error { return reg.Register(SemigroupKCap, SliceShape, SliceSemigroupK()) },
		func() error { return reg.Register(FunctorCap, FuncShape, FuncFunctor()) },
		func() error { return reg.Register(ApplyCap, FuncShape, FuncApply()) },

		// zero-hole primitives
		func() error { return reg.Register(SemigroupCap, IntShape, IntSumSemigroup()) },
		func() error { return reg.Register(SemigroupCap, StringShape, StringSemigroup()) },
		func() error { return reg.Register(ShowCap, IntShape, IntShow()) },
		func() error { return reg.Register(ShowCap, StringShape, StringShow()) },
		func() error { return reg.Register(ShowCap, BoolShape, BoolShow()) },

		// dependent rules
		func() error { return reg.RegisterRule(ShowCap, OptionShape, deriveOptionShow) },
		func() error { return reg.RegisterRule(ShowCap, SliceShape, deriveSliceShow) },
		func() error { return reg.RegisterRule(SemigroupCap, OptionShape, deriveOptionSemigroup) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func deriveOptionShow(inner Instance) (Instance, error) {
	s, err := asShow(inner)
	if err != nil {
		return nil, err
	}
	return OptionShow(s), nil
}

func deriveSliceShow(inner Instance) (Instance, error) {
	s, err := asShow(inner)
	if err != nil {
		return nil, err
	}
	return SliceShow(s), nil
}

func deriveOptionSemigroup(inner Instance) (Instance, error) {
	s, ok := inner.(*Semigroup)
	if !ok {
		return nil, &ResolutionError{Capability: SemigroupCap, Shape: inner.Shape()}
	}
	return OptionSemigroup(s), nil
}

func asShow(inner Instance) (*Show, error) {
	s, ok := inner.(*Show)
	if !ok {
		return nil, &ResolutionError{Capability: ShowCap, Shape: inner.Shape()}
	}
	return s, nil
}
