package model

import "strings"

type baseSpec struct {
	self Specification
}

func (b *baseSpec) setSelf(s Specification) { b.self = s }

func (b *baseSpec) And(other Specification) Specification { return AllOf(b.self, other) }
func (b *baseSpec) Or(other Specification) Specification  { return AnyOf(b.self, other) }
func (b *baseSpec) Xor(other Specification) Specification { return OneOf(b.self, other) }
func (b *baseSpec) Negate() Specification                 { return Not(b.self) }
func (b *baseSpec) IsComposite() bool                     { return false }
func (b *baseSpec) Children() []Specification             { return nil }

type eqSpec struct {
	baseSpec
	field string
	value any
}

// Eq matches products whose attribute equals the captured value.
func Eq(field string, value any) Specification {
	s := &eqSpec{field: field, value: value}
	s.setSelf(s)

	return s
}

// ColorIs matches products of the given color.
func ColorIs(color Color) Specification { return Eq(FieldColor, color) }

// SizeIs matches products of the given size.
func SizeIs(size Size) Specification { return Eq(FieldSize, size) }

func (s *eqSpec) IsSatisfiedBy(p *Product) bool {
	return attributeValue(p, s.field) == s.value
}

func (s *eqSpec) Operator() SpecOperator { return SpecOpEq }
func (s *eqSpec) Field() string          { return s.field }
func (s *eqSpec) Value() any             { return s.value }

type likeSpec struct {
	baseSpec
	field   string
	pattern string
}

// NameLike matches products whose name matches a SQL-LIKE style pattern,
// where % matches any run of characters.
func NameLike(pattern string) Specification {
	s := &likeSpec{field: FieldName, pattern: pattern}
	s.setSelf(s)

	return s
}

func (s *likeSpec) IsSatisfiedBy(p *Product) bool {
	v, ok := attributeValue(p, s.field).(string)
	if !ok {
		return false
	}

	return matchLike(s.pattern, v)
}

func (s *likeSpec) Operator() SpecOperator { return SpecOpLike }
func (s *likeSpec) Field() string          { return s.field }
func (s *likeSpec) Value() any             { return s.pattern }

// matchLike evaluates a %-wildcard pattern the way SQL LIKE does, minus
// single-character wildcards and escapes, which the catalog never uses.
func matchLike(pattern, s string) bool {
	segments := strings.Split(pattern, "%")

	if len(segments) == 1 {
		return s == pattern
	}

	if first := segments[0]; first != "" {
		if !strings.HasPrefix(s, first) {
			return false
		}
		s = s[len(first):]
	}

	last := segments[len(segments)-1]

	for _, segment := range segments[1 : len(segments)-1] {
		if segment == "" {
			continue
		}

		idx := strings.Index(s, segment)
		if idx < 0 {
			return false
		}
		s = s[idx+len(segment):]
	}

	if last == "" {
		return true
	}

	return strings.HasSuffix(s, last)
}

type betweenSpec struct {
	baseSpec
	field string
	start int64
	end   int64
}

// PriceBetween matches products priced within the inclusive range.
func PriceBetween(start, end int64) Specification {
	s := &betweenSpec{field: FieldPrice, start: start, end: end}
	s.setSelf(s)

	return s
}

func (s *betweenSpec) IsSatisfiedBy(p *Product) bool {
	v, ok := attributeValue(p, s.field).(int64)
	if !ok {
		return false
	}

	return v >= s.start && v <= s.end
}

func (s *betweenSpec) Operator() SpecOperator { return SpecOpBetween }
func (s *betweenSpec) Field() string          { return s.field }
func (s *betweenSpec) Value() any             { return []any{s.start, s.end} }
