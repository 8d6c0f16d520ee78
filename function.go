// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// FuncShape is the one-hole shape of functions of one argument, open in
// the result type. Carrier type: func(Erased) Erased.
var FuncShape = NewShape("Func", 1)

// FuncFunctor is the Transform instance for functions of one argument:
// map is post-composition.
func FuncFunctor() *Functor {
	return NewFunctor(FuncShape, func(fa Erased, f func(Erased) Erased) Erased {
		g := fa.(func(Erased) Erased)
		return func(r Erased) Erased {
			return f(g(r))
		}
	})
}

// FuncApply is the Apply instance for functions of one argument: the
// wrapped function and the wrapped value both read the same input, and
// the function's result is applied to the value's result.
func FuncApply() *Apply {
	mapE := func(fa Erased, f func(Erased) Erased) Erased {
		g := fa.(func(Erased) Erased)
		return func(r Erased) Erased {
			return f(g(r))
		}
	}
	apE := func(ff, fa Erased) Erased {
		h := ff.(func(Erased) Erased)
		g := fa.(func(Erased) Erased)
		return func(r Erased) Erased {
			return h(r).(func(Erased) Erased)(g(r))
		}
	}
	return NewApply(FuncShape, mapE, apE)
}
