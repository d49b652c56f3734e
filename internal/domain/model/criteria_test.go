package model_test

import (
	"testing"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestCriteriaBuilderDefaults(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().Build()

	require.False(t, criteria.HasSpec())
	require.False(t, criteria.HasSorting())
	require.True(t, criteria.HasPagination())
	require.Equal(t, uint(1), criteria.Page())
	require.Equal(t, uint(20), criteria.Size())
	require.Equal(t, uint(0), criteria.Offset())
}

func TestCriteriaBuilderSingleSpecStaysUnwrapped(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().WhereColor(model.ColorGreen).Build()

	require.True(t, criteria.HasSpec())
	require.Equal(t, model.SpecOpEq, criteria.Spec().Operator())
	require.Equal(t, model.FieldColor, criteria.Spec().Field())
}

func TestCriteriaBuilderMultipleSpecsCombineAsAllOf(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().
		WhereColor(model.ColorGreen).
		WhereSize(model.SizeLarge).
		WherePriceBetween(100, 10000).
		Build()

	spec := criteria.Spec()
	require.True(t, spec.IsComposite())
	require.Equal(t, model.SpecOpAll, spec.Operator())
	require.Len(t, spec.Children(), 3)
}

func TestCriteriaBuilderOrderBy(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().
		OrderBy("-createdAt").
		OrderBy("name").
		Build()

	sorting := criteria.Sorting()
	require.Len(t, sorting, 2)
	require.Equal(t, model.SortField{Field: "createdAt", Direction: model.SortDesc}, sorting[0])
	require.Equal(t, model.SortField{Field: "name", Direction: model.SortAsc}, sorting[1])
}

func TestCriteriaBuilderPaginate(t *testing.T) {
	t.Parallel()

	criteria := model.NewCriteria().Paginate(3, 10).Build()

	require.Equal(t, uint(3), criteria.Page())
	require.Equal(t, uint(10), criteria.Size())
	require.Equal(t, uint(20), criteria.Offset())

	// Zero values keep the defaults.
	defaulted := model.NewCriteria().Paginate(0, 0).Build()
	require.Equal(t, uint(1), defaulted.Page())
	require.Equal(t, uint(20), defaulted.Size())
}

func TestFromProductFilter(t *testing.T) {
	t.Parallel()

	filter := model.ProductFilter{
		Colors:   []model.Color{model.ColorGreen, model.ColorBlue},
		Sizes:    []model.Size{model.SizeLarge},
		NameLike: "%ouse%",
		Page:     2,
		Size:     5,
	}

	criteria := model.FromProductFilter(filter)

	require.True(t, criteria.HasSpec())
	require.Equal(t, uint(2), criteria.Page())
	require.Equal(t, uint(5), criteria.Size())

	// Defaults to newest-first sorting when the filter does not sort.
	require.Equal(t, []model.SortField{{Field: "createdAt", Direction: model.SortDesc}}, criteria.Sorting())

	// Attribute groups combine with AND, alternatives within a group
	// with OR; the built tree filters in memory exactly like SQL will.
	house := model.NewProduct("House", model.ColorBlue, model.SizeLarge, 100000)
	tree := model.NewProduct("Tree", model.ColorGreen, model.SizeLarge, 5000)
	apple := model.NewProduct("Apple", model.ColorGreen, model.SizeSmall, 100)

	require.True(t, criteria.Spec().IsSatisfiedBy(house))
	require.False(t, criteria.Spec().IsSatisfiedBy(tree))
	require.False(t, criteria.Spec().IsSatisfiedBy(apple))
}
