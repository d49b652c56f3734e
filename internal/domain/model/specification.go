package model

// SpecOperator names the rule a specification node applies. The repository
// layer switches on it to translate a specification tree into SQL.
type SpecOperator string

const (
	SpecOpEq      SpecOperator = "eq"
	SpecOpLike    SpecOperator = "like"
	SpecOpBetween SpecOperator = "between"
	SpecOpAll     SpecOperator = "all"
	SpecOpAny     SpecOperator = "any"
	SpecOpOne     SpecOperator = "one"
	SpecOpNot     SpecOperator = "not"
)

// Specification is a reusable predicate over products. Implementations are
// immutable after construction and free of side effects: evaluating the same
// specification against the same product always yields the same answer, and
// combining specifications allocates a new composite without touching either
// operand. That makes any specification safe to share across goroutines.
type Specification interface {
	// IsSatisfiedBy reports whether the product meets the specification.
	IsSatisfiedBy(p *Product) bool

	// And returns a new composite wrapping exactly this specification and
	// other, satisfied when both are.
	And(other Specification) Specification

	// Or returns a new composite wrapping exactly this specification and
	// other, satisfied when at least one is.
	Or(other Specification) Specification

	// Xor returns a new composite wrapping exactly this specification and
	// other, satisfied when exactly one of the two is.
	Xor(other Specification) Specification

	// Negate returns a specification satisfied when this one is not.
	Negate() Specification

	IsComposite() bool
	Children() []Specification
	Operator() SpecOperator
	Field() string
	Value() any
}

// Attribute field names understood by leaf specifications and the criteria
// translator.
const (
	FieldName      = "name"
	FieldColor     = "color"
	FieldSize      = "size"
	FieldPrice     = "price"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

func attributeValue(p *Product, field string) any {
	switch field {
	case FieldName:
		return p.Name
	case FieldColor:
		return p.Color
	case FieldSize:
		return p.Size
	case FieldPrice:
		return p.Price
	default:
		return nil
	}
}
