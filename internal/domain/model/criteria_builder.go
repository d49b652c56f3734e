package model

type CriteriaBuilder struct {
	specs   []Specification
	sorting []SortField
	page    uint
	size    uint
	fields  []string
}

func NewCriteria() *CriteriaBuilder {
	return &CriteriaBuilder{
		specs: make([]Specification, 0),
		page:  defaultPage,
		size:  defaultSize,
	}
}

func (b *CriteriaBuilder) Where(field string, value any) *CriteriaBuilder {
	b.specs = append(b.specs, Eq(field, value))

	return b
}

func (b *CriteriaBuilder) WhereColor(color Color) *CriteriaBuilder {
	b.specs = append(b.specs, ColorIs(color))

	return b
}

func (b *CriteriaBuilder) WhereSize(size Size) *CriteriaBuilder {
	b.specs = append(b.specs, SizeIs(size))

	return b
}

func (b *CriteriaBuilder) WhereLike(pattern string) *CriteriaBuilder {
	b.specs = append(b.specs, NameLike(pattern))

	return b
}

func (b *CriteriaBuilder) WherePriceBetween(start, end int64) *CriteriaBuilder {
	b.specs = append(b.specs, PriceBetween(start, end))

	return b
}

func (b *CriteriaBuilder) WhereSpec(spec Specification) *CriteriaBuilder {
	b.specs = append(b.specs, spec)

	return b
}

func (b *CriteriaBuilder) WhereNot(spec Specification) *CriteriaBuilder {
	b.specs = append(b.specs, Not(spec))

	return b
}

func (b *CriteriaBuilder) OrderBy(field string) *CriteriaBuilder {
	direction := SortAsc
	actualField := field

	if len(field) > 0 && field[0] == '-' {
		direction = SortDesc
		actualField = field[1:]
	}

	b.sorting = append(b.sorting, SortField{Field: actualField, Direction: direction})

	return b
}

func (b *CriteriaBuilder) Paginate(page, size uint) *CriteriaBuilder {
	if page > 0 {
		b.page = page
	}

	if size > 0 {
		b.size = size
	}

	return b
}

func (b *CriteriaBuilder) Select(fields ...string) *CriteriaBuilder {
	b.fields = append(b.fields, fields...)

	return b
}

func (b *CriteriaBuilder) Build() Criteria {
	var rootSpec Specification

	if len(b.specs) == 1 {
		rootSpec = b.specs[0]
	} else if len(b.specs) > 1 {
		rootSpec = AllOf(b.specs...)
	}

	return Criteria{
		spec:    rootSpec,
		sorting: b.sorting,
		page:    b.page,
		size:    b.size,
		fields:  b.fields,
	}
}
