// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"errors"
	"fmt"
)

// ErrArity reports a derived N-ary operation outside the supported
// 1..MaxArity range.
var ErrArity = errors.New("typeclass: arity out of range")

// ResolutionError reports that no primitive, derived or composed instance
// chain exists for a (capability, shape) pair. When the failure occurred
// while resolving a dependent instance for the hole's content type, Cause
// carries the inner failure, so the full chain of missing shapes is
// visible through errors.Unwrap.
type ResolutionError struct {
	Capability Capability
	Shape      Shape
	Cause      error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("typeclass: no %s instance for shape %s: %v", e.Capability, e.Shape, e.Cause)
	}
	return fmt.Sprintf("typeclass: no %s instance for shape %s", e.Capability, e.Shape)
}

func (e *ResolutionError) Unwrap() error { return e.Cause }

// DuplicateError reports a second registration for an already-populated
// (capability, shape) pair. It is a setup-time configuration error; the
// original instance remains registered and resolvable.
type DuplicateError struct {
	Capability Capability
	Shape      Shape
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("typeclass: duplicate %s instance for shape %s", e.Capability, e.Shape)
}

// LawError reports that an instance failed one of its capability's
// algebraic laws under a property check, with the counterexample that
// falsified it.
type LawError struct {
	Capability Capability
	Shape      Shape
	Law        string
	Detail     string
}

func (e *LawError) Error() string {
	return fmt.Sprintf("typeclass: %s instance for shape %s violates %s: %s",
		e.Capability, e.Shape, e.Law, e.Detail)
}
