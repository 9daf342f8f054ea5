// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akhmadiev/storefront/models"
)

func Test_buildSelectAllProductsQuery(t *testing.T) {
	query, args, err := buildSelectAllProductsQuery()
	require.NoError(t, err)
	require.Empty(t, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from products")
	for _, c := range []string{"id", "name", "price", "quantity"} {
		require.Contains(t, q, c)
	}
}

func Test_buildCreateProductQuery(t *testing.T) {
	product := models.Product{Name: "apple", Price: 0.5, Quantity: 100}

	query, args, err := buildCreateProductQuery(product)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, product.Name, args[0])
	require.Equal(t, product.Price, args[1])
	require.Equal(t, product.Quantity, args[2])

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into products")
	require.Contains(t, q, "returning id, name, price, quantity")

	// placeholder format should be $N (works on both backends)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$3")
}

func Test_buildGetProductQuery(t *testing.T) {
	query, args, err := buildGetProductQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from products")
	require.Contains(t, q, "where")
	require.Contains(t, query, "$1")
}

func Test_buildUpdateProductQuery(t *testing.T) {
	name := "pear"
	price := 0.7
	quantity := int64(30)

	tests := []struct {
		name         string
		update       models.ProductUpdate
		wantArgs     []any
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "all fields",
			update:       models.ProductUpdate{Name: &name, Price: &price, Quantity: &quantity},
			wantArgs:     []any{name, price, quantity, int64(42)},
			wantContains: []string{"name", "price", "quantity"},
		},
		{
			name:         "only price",
			update:       models.ProductUpdate{Price: &price},
			wantArgs:     []any{price, int64(42)},
			wantContains: []string{"price"},
			wantMissing:  []string{"name =", "quantity ="},
		},
		{
			name:         "only name",
			update:       models.ProductUpdate{Name: &name},
			wantArgs:     []any{name, int64(42)},
			wantContains: []string{"name"},
			wantMissing:  []string{"price =", "quantity ="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateProductQuery(42, tt.update)
			require.NoError(t, err)
			require.Equal(t, tt.wantArgs, args)

			q := strings.ToLower(query)
			require.Contains(t, q, "update products")
			require.Contains(t, q, "returning id, name, price, quantity")
			for _, part := range tt.wantContains {
				require.Contains(t, q, part)
			}
			for _, part := range tt.wantMissing {
				require.NotContains(t, q, part)
			}
		})
	}
}

func Test_buildUpdateProductQuery_Empty(t *testing.T) {
	_, _, err := buildUpdateProductQuery(42, models.ProductUpdate{})
	require.ErrorIs(t, err, ErrEmptyUpdate)
}

func Test_buildDeleteProductQuery(t *testing.T) {
	query, args, err := buildDeleteProductQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from products")
	require.Contains(t, query, "$1")
}
