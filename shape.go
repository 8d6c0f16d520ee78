// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import (
	"strconv"
	"strings"
)

// Shape identifies a type constructor with a fixed number of open
// positions (holes). A zero-hole shape is a concrete type; a one-hole
// shape takes one type argument to become concrete. Shapes are immutable
// values; registry identity is the canonical Key string.
//
// Shapes come in three forms:
//   - base: a named constructor with zero or more holes (NewShape)
//   - applied: a constructor with leading holes fixed (Fix, At)
//   - composed: the nesting Outer∘Inner of two one-hole shapes (Compose)
type Shape struct {
	ctor  string
	arity int
	args  []Shape

	// outer/inner are set only for composed shapes; ctor is then empty.
	outer *Shape
	inner *Shape
}

// Predeclared zero-hole shapes for common content types.
var (
	IntShape    = NewShape("Int", 0)
	StringShape = NewShape("String", 0)
	BoolShape   = NewShape("Bool", 0)
)

// NewShape declares a shape with the given constructor name and hole count.
// Panics if holes is negative or the name is empty.
func NewShape(ctor string, holes int) Shape {
	if ctor == "" {
		panic("typeclass: shape constructor name must not be empty")
	}
	if holes < 0 {
		panic("typeclass: shape hole count must not be negative")
	}
	return Shape{ctor: ctor, arity: holes}
}

// Ctor returns the constructor name. Composed shapes have no single
// constructor and return the empty string.
func (s Shape) Ctor() string { return s.ctor }

// Holes returns the number of open positions remaining in the shape.
func (s Shape) Holes() int {
	if s.outer != nil {
		return 1
	}
	return s.arity - len(s.args)
}

// IsComposed reports whether the shape is a nesting built by Compose.
func (s Shape) IsComposed() bool { return s.outer != nil }

// Composed returns the outer and inner parts of a composed shape.
// The second result is false for non-composed shapes.
func (s Shape) Composed() (outer, inner Shape, ok bool) {
	if s.outer == nil {
		return Shape{}, Shape{}, false
	}
	return *s.outer, *s.inner, true
}

// Args returns the fixed arguments of an applied shape, leftmost first.
func (s Shape) Args() []Shape {
	out := make([]Shape, len(s.args))
	copy(out, s.args)
	return out
}

// Fix fills the leading open holes with the given shapes, producing a
// shape with correspondingly fewer holes. A shape with more than one hole
// must have all but one hole fixed before it can carry a one-hole
// capability. Panics when more arguments are supplied than holes remain,
// when an argument itself has open holes, or when called on a composed
// shape.
func (s Shape) Fix(fixed ...Shape) Shape {
	if s.outer != nil {
		panic("typeclass: cannot fix holes of a composed shape")
	}
	if len(fixed) > s.Holes() {
		panic("typeclass: fixing more holes than shape " + s.String() + " has open")
	}
	for _, a := range fixed {
		if a.Holes() != 0 {
			panic("typeclass: hole argument " + a.String() + " must be a zero-hole shape")
		}
	}
	args := make([]Shape, 0, len(s.args)+len(fixed))
	args = append(args, s.args...)
	args = append(args, fixed...)
	return Shape{ctor: s.ctor, arity: s.arity, args: args}
}

// At applies a one-hole shape to a zero-hole argument, producing the
// concrete zero-hole shape (e.g. Option[_].At(Int) is Option[Int]).
// Panics unless exactly one hole is open.
func (s Shape) At(arg Shape) Shape {
	if s.Holes() != 1 {
		panic("typeclass: At requires exactly one open hole, shape " + s.String() + " has " + strconv.Itoa(s.Holes()))
	}
	return s.Fix(arg)
}

// Compose nests two one-hole shapes into the one-hole shape Outer∘Inner.
// Instances for composed shapes are produced only by the composition
// combinators, never hand-written. Panics unless both shapes have exactly
// one open hole.
func Compose(outer, inner Shape) Shape {
	if outer.Holes() != 1 {
		panic("typeclass: Compose outer shape " + outer.String() + " must have exactly one open hole")
	}
	if inner.Holes() != 1 {
		panic("typeclass: Compose inner shape " + inner.String() + " must have exactly one open hole")
	}
	o, i := outer, inner
	return Shape{outer: &o, inner: &i}
}

// Key returns the canonical identity string used for registry lookup.
// Two shapes with equal keys are the same shape.
func (s Shape) Key() string { return s.String() }

// RuleKey returns the key of the one-hole constructor the shape is an
// application of: only the last fixed argument is reopened. For
// Option[Int] this is Option[_]; for Either[Int,Int] it is
// Either[Int,_], distinct from Either[String,_]. Derivation rules are
// stored under this identity. Shapes with open holes, composed shapes
// and base shapes without arguments return Key unchanged.
func (s Shape) RuleKey() string {
	if s.outer != nil || s.Holes() != 0 || len(s.args) == 0 {
		return s.Key()
	}
	return Shape{ctor: s.ctor, arity: s.arity, args: s.args[:len(s.args)-1]}.Key()
}

// String renders the shape, with _ marking open holes:
// Int, Option[_], Either[String,_], Slice[_]∘Option[_].
func (s Shape) String() string {
	if s.outer != nil {
		return s.outer.String() + "∘" + s.inner.String()
	}
	if s.arity == 0 {
		return s.ctor
	}
	var b strings.Builder
	b.WriteString(s.ctor)
	b.WriteByte('[')
	for i := range s.arity {
		if i > 0 {
			b.WriteByte(',')
		}
		if i < len(s.args) {
			b.WriteString(s.args[i].String())
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteByte(']')
	return b.String()
}
