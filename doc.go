// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package typeclass provides a capability resolution and composition
// engine: named capabilities (a textual representation, a one-hole
// transform, a wrapped application, an associative combine) are
// retrofitted onto existing types through an external instance table,
// without modifying the types themselves.
//
// # Design Philosophy
//
// typeclass provides:
//   - Minimal capability descriptors with laws validated as executable
//     properties, never enforced at the type level
//   - Explicit dependency edges: a dependent instance takes its inner
//     instance as a constructor argument, supplied by the registry's
//     recursive resolution — no ambient search, no runtime reflection
//   - Mechanical derivation: composed-shape instances and the whole
//     N-ary operation family are generated from the minimal operation
//     set, never hand-written per case
//
// # Erasure Boundary
//
// Go has no higher-kinded type parameters, so instance operations are
// defunctionalized over the [Erased] alias: a one-hole shape's carrier
// and contents flow through operations as Erased values, and concrete
// types are recovered via type assertions at instance boundaries.
// [Fn] and [Fn2] erase typed functions once at the edge; each built-in
// container ships Erase/Assert helpers for its carrier.
//
// # Shapes
//
// A [Shape] identifies a type constructor with a fixed number of open
// positions (holes):
//
//   - [NewShape]: declare a constructor with its hole count
//   - [Shape.Fix]: fix leading holes (Either[String,_] from Either)
//   - [Shape.At]: apply the last open hole (Option[Int] from Option)
//   - [Compose]: nest two one-hole shapes into Outer∘Inner
//
// A shape with more than one hole must have all but one hole fixed
// before it can carry a one-hole capability. Composed shapes get their
// instances only from the composition combinators.
//
// # Capabilities
//
// Predeclared descriptors, each a named minimal operation set:
//
//   - [SemigroupCap]: Combine — one closed associative binary operation
//     on a zero-hole shape
//   - [SemigroupKCap]: CombineK — associative choice between carriers,
//     independent of contents
//   - [FunctorCap]: Map — transform the hole's contents, preserving shape
//   - [ApplyCap]: Map + Ap — apply a wrapped function to a wrapped value
//   - [ShowCap]: Show — render a concrete value textually
//
// [NewCapability] declares further capabilities. CombineK and Combine
// stay distinct even over the same shape family: first-present choice
// for options is a different algebra from content merging.
//
// # Instances and the Registry
//
// An [Instance] binds a (capability, shape) pair to operation bodies:
// [Semigroup], [SemigroupK], [Functor], [Apply], [Show]. The [Registry]
// holds them:
//
//   - [Registry.Register]: add a primitive instance; a duplicate pair is
//     a [DuplicateError] and the original stays resolvable
//   - [Registry.RegisterRule]: add a dependent derivation for a one-hole
//     constructor (Show for Option[T] from Show for T)
//   - [Registry.Resolve]: deterministic resolution through primitive,
//     derived and composed chains; failure is a [ResolutionError] with
//     the missing inner shape attached as cause, never a default
//     instance
//
// The registry is populated during setup and read-only afterwards;
// concurrent Resolve calls then need no coordination.
//
// # Composition
//
// [ComposeFunctor] and [ComposeApply] build the instance for a nested
// shape F∘G purely from the instances for F and G. The composed bodies
// route every inner step through the inner instance and never branch on
// the inner shape's discriminant. [Registry.Resolve] applies these two
// rules automatically for composed shapes.
//
// # Derived Operations
//
// From Map alone:
//
//   - [Functor.Lift]: turn a content transformation into a carrier
//     transformation
//   - [Functor.FProduct]: pair each content value with a derived result
//
// From Map and Ap, the N-ary family for N up to [MaxArity], all folds
// over one binary accumulator step:
//
//   - [Apply.Tupled]: combine N carriers into one carrier of argument
//     lists
//   - [Apply.MapN]: apply an N-ary content function to N carriers
//   - [Apply.ApN]: apply a wrapped N-ary function to N carriers
//   - [Apply.Join] and [Joined]: the fluent accumulator — attach one
//     carrier at a time with And, discharge with Tupled/MapTo/ApTo
//
// Absence propagation for optional shapes is a consequence of Ap's
// contract, not a special case in the generator.
//
// # Law Suite
//
// Laws are validated over caller-supplied samples, with [DeepEq]
// (go-cmp) as the default equality:
//
//   - [CheckSemigroup], [CheckSemigroupK]: associativity
//   - [CheckFunctor]: identity and composition
//   - [CheckApply]: composition of effectful application
//
// A falsified law is a [LawError] carrying the counterexample.
//
// # Built-in Containers
//
// [Option], [Either] (two holes, right-biased once fixed), slices and
// functions of one argument ship with instances and erase/assert edge
// helpers; [RegisterDefaults] wires them into a registry in one call.
// The engine treats them as ordinary collaborator registrations.
//
// # Example
//
//	reg := typeclass.NewRegistry()
//	if err := typeclass.RegisterDefaults(reg); err != nil {
//		panic(err)
//	}
//
//	inst, err := reg.Resolve(typeclass.ShowCap,
//		typeclass.OptionShape.At(typeclass.IntShape))
//	if err != nil {
//		panic(err)
//	}
//	show := inst.(*typeclass.Show)
//	s := show.Show(typeclass.EraseOption(typeclass.Some(42)))
//	// s == "Some(42)"
package typeclass
