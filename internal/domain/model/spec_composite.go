package model

import "slices"

type allSpec struct {
	baseSpec
	specs []Specification
}

// AllOf is satisfied when every child is, and so is vacuously satisfied with
// zero children.
func AllOf(specs ...Specification) Specification {
	s := &allSpec{specs: slices.Clone(specs)}
	s.setSelf(s)

	return s
}

func (s *allSpec) IsSatisfiedBy(p *Product) bool {
	for _, child := range s.specs {
		if !child.IsSatisfiedBy(p) {
			return false
		}
	}

	return true
}

func (s *allSpec) IsComposite() bool         { return true }
func (s *allSpec) Children() []Specification { return s.specs }
func (s *allSpec) Operator() SpecOperator    { return SpecOpAll }
func (s *allSpec) Field() string             { return "" }
func (s *allSpec) Value() any                { return nil }

type anySpec struct {
	baseSpec
	specs []Specification
}

// AnyOf is satisfied when at least one child is, so it is never satisfied
// with zero children.
func AnyOf(specs ...Specification) Specification {
	s := &anySpec{specs: slices.Clone(specs)}
	s.setSelf(s)

	return s
}

func (s *anySpec) IsSatisfiedBy(p *Product) bool {
	for _, child := range s.specs {
		if child.IsSatisfiedBy(p) {
			return true
		}
	}

	return false
}

func (s *anySpec) IsComposite() bool         { return true }
func (s *anySpec) Children() []Specification { return s.specs }
func (s *anySpec) Operator() SpecOperator    { return SpecOpAny }
func (s *anySpec) Field() string             { return "" }
func (s *anySpec) Value() any                { return nil }

type oneSpec struct {
	baseSpec
	specs []Specification
}

// OneOf generalizes XOR to N children as "exactly one satisfied". Pairwise
// parity XOR would accept an odd number of matches, which is never what a
// filter caller means, so the exactly-one reading is the contract here.
func OneOf(specs ...Specification) Specification {
	s := &oneSpec{specs: slices.Clone(specs)}
	s.setSelf(s)

	return s
}

func (s *oneSpec) IsSatisfiedBy(p *Product) bool {
	satisfied := 0

	for _, child := range s.specs {
		if child.IsSatisfiedBy(p) {
			satisfied++
			if satisfied > 1 {
				return false
			}
		}
	}

	return satisfied == 1
}

func (s *oneSpec) IsComposite() bool         { return true }
func (s *oneSpec) Children() []Specification { return s.specs }
func (s *oneSpec) Operator() SpecOperator    { return SpecOpOne }
func (s *oneSpec) Field() string             { return "" }
func (s *oneSpec) Value() any                { return nil }

type notSpec struct {
	baseSpec
	spec Specification
}

// Not inverts a specification.
func Not(spec Specification) Specification {
	s := &notSpec{spec: spec}
	s.setSelf(s)

	return s
}

func (s *notSpec) IsSatisfiedBy(p *Product) bool {
	return !s.spec.IsSatisfiedBy(p)
}

// Negate unwraps a double negation instead of stacking wrappers.
func (s *notSpec) Negate() Specification { return s.spec }

func (s *notSpec) IsComposite() bool         { return true }
func (s *notSpec) Children() []Specification { return []Specification{s.spec} }
func (s *notSpec) Operator() SpecOperator    { return SpecOpNot }
func (s *notSpec) Field() string             { return "" }
func (s *notSpec) Value() any                { return nil }
