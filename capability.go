// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

// Capability describes a named minimal operation set a shape may
// implement: the operation names, and the hole arity of shapes that can
// carry it. Descriptors are pure specifications — they hold no state and
// cannot fail at run time. The algebraic laws attached to each
// capability live in the law suite (law.go).
//
// Capability identity is the name: two descriptors with the same name
// denote the same capability.
type Capability struct {
	name  string
	holes int
	ops   []string
}

// Predeclared capability descriptors.
//
// SemigroupCap and SemigroupKCap are deliberately distinct: Combine
// merges the contents of a concrete type, while CombineK chooses between
// carriers of a one-hole shape independent of what the hole contains.
// They are different algebras even over the same shape family.
var (
	// SemigroupCap: one closed, associative binary operation on a
	// zero-hole shape.
	SemigroupCap = NewCapability("Semigroup", 0, "Combine")

	// SemigroupKCap: an associative binary choice between two carriers
	// of a one-hole shape, independent of the hole's contents.
	SemigroupKCap = NewCapability("SemigroupK", 1, "CombineK")

	// FunctorCap: map the hole's content type through a pure function,
	// preserving the shape.
	FunctorCap = NewCapability("Functor", 1, "Map")

	// ApplyCap extends FunctorCap: apply a wrapped function to a wrapped
	// value within the same shape.
	ApplyCap = NewCapability("Apply", 1, "Map", "Ap")

	// ShowCap: render a concrete value to its textual representation.
	ShowCap = NewCapability("Show", 0, "Show")
)

// NewCapability declares a capability with the given name, hole arity and
// minimal operation names. Adding an operation to an existing capability
// is a breaking change for every instance and law, so collaborators
// declare new capabilities rather than extending predeclared ones.
// Panics if the name is empty or holes is negative.
func NewCapability(name string, holes int, ops ...string) Capability {
	if name == "" {
		panic("typeclass: capability name must not be empty")
	}
	if holes < 0 {
		panic("typeclass: capability hole count must not be negative")
	}
	c := Capability{name: name, holes: holes, ops: make([]string, len(ops))}
	copy(c.ops, ops)
	return c
}

// Name returns the capability name.
func (c Capability) Name() string { return c.name }

// Holes returns the hole arity of shapes that can carry the capability.
func (c Capability) Holes() int { return c.holes }

// Ops returns the minimal operation names.
func (c Capability) Ops() []string {
	out := make([]string, len(c.ops))
	copy(out, c.ops)
	return out
}

// Is reports whether two descriptors denote the same capability.
func (c Capability) Is(other Capability) bool { return c.name == other.name }

// String returns the capability name.
func (c Capability) String() string { return c.name }
