package model_test

import (
	"testing"

	"github.com/storecraft/storefront/internal/domain/model"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Parallel()

	product := model.NewProduct("Apple", model.ColorGreen, model.SizeSmall, 100)

	require.False(t, product.ID.IsZero())
	require.Equal(t, "Apple", product.Name)
	require.Equal(t, model.ColorGreen, product.Color)
	require.Equal(t, model.SizeSmall, product.Size)
	require.Equal(t, int64(100), product.Price)
	require.False(t, product.CreatedAt.IsZero())
	require.Equal(t, product.CreatedAt, product.UpdatedAt)
	require.NoError(t, product.Validate())
}

func TestProductValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		product       *model.Product
		expectedField string
	}{
		{
			name:          "empty name",
			product:       model.NewProduct("", model.ColorGreen, model.SizeSmall, 100),
			expectedField: "name",
		},
		{
			name:          "invalid color",
			product:       model.NewProduct("Apple", model.Color("mauve"), model.SizeSmall, 100),
			expectedField: "color",
		},
		{
			name:          "invalid size",
			product:       model.NewProduct("Apple", model.ColorGreen, model.Size("huge"), 100),
			expectedField: "size",
		},
		{
			name:          "negative price",
			product:       model.NewProduct("Apple", model.ColorGreen, model.SizeSmall, -1),
			expectedField: "price",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.product.Validate()
			require.Error(t, err)

			var verrs *model.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Equal(t, tc.expectedField, verrs.Errors[0].Field)
		})
	}
}

func TestParseProductID(t *testing.T) {
	t.Parallel()

	id := model.NewProductID()

	parsed, err := model.ParseProductID(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = model.ParseProductID("not-a-uuid")
	require.Error(t, err)
}
