package model

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"

	defaultPage uint = 1
	defaultSize uint = 20
)

type (
	SortField struct {
		Field     string
		Direction SortDirection
	}

	// Criteria bundles a specification with sorting, pagination and field
	// projection for repository queries.
	Criteria struct {
		spec    Specification
		sorting []SortField
		page    uint
		size    uint
		fields  []string
	}
)

func (c Criteria) Spec() Specification  { return c.spec }
func (c Criteria) Sorting() []SortField { return c.sorting }
func (c Criteria) Page() uint           { return c.page }
func (c Criteria) Size() uint           { return c.size }
func (c Criteria) Fields() []string     { return c.fields }
func (c Criteria) Offset() uint         { return (c.page - 1) * c.size }
func (c Criteria) HasSpec() bool        { return c.spec != nil }
func (c Criteria) HasSorting() bool     { return len(c.sorting) > 0 }
func (c Criteria) HasPagination() bool  { return c.page > 0 && c.size > 0 }

// FromProductFilter converts the transport-level filter into query criteria.
func FromProductFilter(filter ProductFilter) Criteria {
	builder := NewCriteria()

	if len(filter.Colors) > 0 {
		colorSpecs := make([]Specification, 0, len(filter.Colors))
		for _, c := range filter.Colors {
			colorSpecs = append(colorSpecs, ColorIs(c))
		}

		builder.WhereSpec(AnyOf(colorSpecs...))
	}

	if len(filter.Sizes) > 0 {
		sizeSpecs := make([]Specification, 0, len(filter.Sizes))
		for _, s := range filter.Sizes {
			sizeSpecs = append(sizeSpecs, SizeIs(s))
		}

		builder.WhereSpec(AnyOf(sizeSpecs...))
	}

	if filter.NameLike != "" {
		builder.WhereLike(filter.NameLike)
	}

	if len(filter.Sort) > 0 {
		for _, sort := range filter.Sort {
			builder.OrderBy(sort)
		}
	} else {
		builder.OrderBy("-createdAt")
	}

	builder.Paginate(filter.Page, filter.Size)

	return builder.Build()
}
