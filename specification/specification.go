// Package specification builds composable predicates over digestible
// values. The comparison-backed constructors (EqualTo, LessThan, Between,
// ...) decide against a reference value by digest order, so a predicate
// never inspects the concrete type of the values it filters.
package specification

// Specification interface.
// Use New for creating specifications; only the predicate must be supplied.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current
	// specification and another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current
	// specification and another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the
	// current specification.
	Not() Specification[T]
}

type specification[T any] struct {
	predicate func(t T) bool
}

func New[T any](predicate func(t T) bool) Specification[T] {
	return &specification[T]{predicate: predicate}
}

func (spec *specification[T]) IsSatisfiedBy(t T) bool {
	return spec.predicate(t)
}

func (spec *specification[T]) And(another Specification[T]) Specification[T] {
	return And[T](spec, another)
}

func (spec *specification[T]) Or(another Specification[T]) Specification[T] {
	return Or[T](spec, another)
}

func (spec *specification[T]) Not() Specification[T] {
	return Not[T](spec)
}

// And create a new specification that is the AND of two other specifications.
func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New[T](func(t T) bool {
		return left.IsSatisfiedBy(t) && right.IsSatisfiedBy(t)
	})
}

// Or create a new specification that is the OR of two other specifications.
func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return New[T](func(t T) bool {
		return left.IsSatisfiedBy(t) || right.IsSatisfiedBy(t)
	})
}

// Not create a new specification that is the inverse (NOT) of the given spec.
func Not[T any](spec Specification[T]) Specification[T] {
	return New[T](func(t T) bool {
		return !spec.IsSatisfiedBy(t)
	})
}

// Conjunction create a new specification satisfied when every given
// specification is satisfied.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	return New[T](func(t T) bool {
		for _, spec := range specs {
			if !spec.IsSatisfiedBy(t) {
				return false
			}
		}
		return true
	})
}

// Disjunction create a new specification satisfied when any given
// specification is satisfied.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	return New[T](func(t T) bool {
		for _, spec := range specs {
			if spec.IsSatisfiedBy(t) {
				return true
			}
		}
		return false
	})
}
