// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package typeclass

import "fmt"

// Registry associates (capability, shape) pairs with instances and
// derivation rules, and resolves requests through primitive, derived and
// composed instance chains.
//
// Usage contract: the registry is populated once during setup and is
// read-only thereafter. Concurrent Resolve calls need no coordination
// once population has completed; the populate-before-read ordering is
// the caller's responsibility, matching the engine's synchronous,
// shared-nothing model.
type Registry struct {
	instances map[regKey]Instance
	rules     map[regKey]DeriveFunc
}

type regKey struct {
	cap   string
	shape string
}

// DeriveFunc builds a dependent instance for an applied shape from the
// already-resolved instance for the hole's content type. The dependency
// edge is this explicit argument — there is no ambient search.
type DeriveFunc func(inner Instance) (Instance, error)

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		instances: make(map[regKey]Instance),
		rules:     make(map[regKey]DeriveFunc),
	}
}

// Register adds a primitive instance for a (capability, shape) pair.
// It returns a DuplicateError if the pair is already populated, leaving
// the original instance registered; this is a setup-time configuration
// error, not a recoverable condition. Composed shapes are rejected —
// their instances are produced only by the composition combinators.
func (r *Registry) Register(cap Capability, shape Shape, inst Instance) error {
	if shape.IsComposed() {
		return fmt.Errorf("typeclass: cannot register hand-written instance for composed shape %s", shape)
	}
	if cap.Holes() != shape.Holes() {
		return fmt.Errorf("typeclass: capability %s requires a %d-hole shape, shape %s has %d",
			cap, cap.Holes(), shape, shape.Holes())
	}
	if inst == nil {
		return fmt.Errorf("typeclass: cannot register nil instance for %s %s", cap, shape)
	}
	if !inst.Capability().Is(cap) {
		return fmt.Errorf("typeclass: instance implements %s, registered under %s", inst.Capability(), cap)
	}
	if inst.Shape().Key() != shape.Key() {
		return fmt.Errorf("typeclass: instance is bound to shape %s, registered under %s", inst.Shape(), shape)
	}
	key := regKey{cap: cap.Name(), shape: shape.Key()}
	if _, ok := r.instances[key]; ok {
		return &DuplicateError{Capability: cap, Shape: shape}
	}
	r.instances[key] = inst
	return nil
}

// RegisterRule adds a derivation rule for the applied shapes of a
// one-hole constructor: resolving (cap, Ctor[T]) will resolve (cap, T)
// first and feed the result to derive. A multi-hole constructor with
// all but the last hole fixed is a one-hole constructor in its own
// right, so Either[String,_] and Either[Int,_] carry independent
// rules. Duplicate rules for the same (capability, constructor) pair
// are rejected like duplicate instances.
func (r *Registry) RegisterRule(cap Capability, ctor Shape, derive DeriveFunc) error {
	if ctor.IsComposed() {
		return fmt.Errorf("typeclass: cannot register derivation rule for composed shape %s", ctor)
	}
	if ctor.Holes() != 1 {
		return fmt.Errorf("typeclass: derivation rules require a one-hole constructor, shape %s has %d holes",
			ctor, ctor.Holes())
	}
	key := regKey{cap: cap.Name(), shape: ctor.Key()}
	if _, ok := r.rules[key]; ok {
		return &DuplicateError{Capability: cap, Shape: ctor}
	}
	r.rules[key] = derive
	return nil
}

// Resolve returns the unique instance for a (capability, shape) pair.
// Resolution is deterministic and total: it succeeds exactly when a
// primitive instance, a derivation-rule chain or a composed-instance
// chain exists, and otherwise reports a ResolutionError — never a
// default instance. All failure happens here, before any operation of
// the instance executes.
//
// Resolution order:
//  1. the primitive instance registered for the exact shape key;
//  2. for an applied shape Ctor[T], the derivation rule for Ctor fed
//     with the recursively resolved instance for T — an inner failure
//     is attached as the cause of the outer ResolutionError;
//  3. for a composed shape and the Functor or Apply capability, the
//     mechanical composition of the recursively resolved outer and
//     inner instances.
func (r *Registry) Resolve(cap Capability, shape Shape) (Instance, error) {
	if inst, ok := r.instances[regKey{cap: cap.Name(), shape: shape.Key()}]; ok {
		return inst, nil
	}
	if inst, ok, err := r.resolveDerived(cap, shape); ok {
		return inst, err
	}
	if inst, ok, err := r.resolveComposed(cap, shape); ok {
		return inst, err
	}
	return nil, &ResolutionError{Capability: cap, Shape: shape}
}

// resolveDerived attempts rule-based resolution for an applied shape.
// The last fixed argument fills the final hole and is the dependent
// content type.
func (r *Registry) resolveDerived(cap Capability, shape Shape) (Instance, bool, error) {
	args := shape.Args()
	if shape.IsComposed() || shape.Holes() != 0 || len(args) == 0 {
		return nil, false, nil
	}
	derive, ok := r.rules[regKey{cap: cap.Name(), shape: shape.RuleKey()}]
	if !ok {
		return nil, false, nil
	}
	contentShape := args[len(args)-1]
	inner, err := r.Resolve(cap, contentShape)
	if err != nil {
		return nil, true, &ResolutionError{Capability: cap, Shape: shape, Cause: err}
	}
	inst, err := derive(inner)
	if err != nil {
		return nil, true, &ResolutionError{Capability: cap, Shape: shape, Cause: err}
	}
	if inst == nil {
		return nil, true, &ResolutionError{Capability: cap, Shape: shape,
			Cause: fmt.Errorf("typeclass: derivation rule returned no instance")}
	}
	if inst.Shape().Key() != shape.Key() {
		return nil, true, &ResolutionError{Capability: cap, Shape: shape,
			Cause: fmt.Errorf("typeclass: derivation rule produced instance for shape %s, not %s", inst.Shape(), shape)}
	}
	return inst, true, nil
}

// resolveComposed attempts mechanical composition for a composed shape.
// Only Functor and Apply have mechanical composition rules.
func (r *Registry) resolveComposed(cap Capability, shape Shape) (Instance, bool, error) {
	outer, inner, ok := shape.Composed()
	if !ok {
		return nil, false, nil
	}
	if !cap.Is(FunctorCap) && !cap.Is(ApplyCap) {
		return nil, false, nil
	}
	oi, err := r.Resolve(cap, outer)
	if err != nil {
		return nil, true, &ResolutionError{Capability: cap, Shape: shape, Cause: err}
	}
	ii, err := r.Resolve(cap, inner)
	if err != nil {
		return nil, true, &ResolutionError{Capability: cap, Shape: shape, Cause: err}
	}
	switch {
	case cap.Is(FunctorCap):
		of, ok := oi.(*Functor)
		if !ok {
			return nil, true, &ResolutionError{Capability: cap, Shape: shape,
				Cause: fmt.Errorf("typeclass: outer instance for %s is not a *Functor", outer)}
		}
		inf, ok := ii.(*Functor)
		if !ok {
			return nil, true, &ResolutionError{Capability: cap, Shape: shape,
				Cause: fmt.Errorf("typeclass: inner instance for %s is not a *Functor", inner)}
		}
		return ComposeFunctor(of, inf), true, nil
	default:
		oa, ok := oi.(*Apply)
		if !ok {
			return nil, true, &ResolutionError{Capability: cap, Shape: shape,
				Cause: fmt.Errorf("typeclass: outer instance for %s is not an *Apply", outer)}
		}
		ia, ok := ii.(*Apply)
		if !ok {
			return nil, true, &ResolutionError{Capability: cap, Shape: shape,
				Cause: fmt.Errorf("typeclass: inner instance for %s is not an *Apply", inner)}
		}
		return ComposeApply(oa, ia), true, nil
	}
}
