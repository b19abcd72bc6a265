//go:build unit

package product_test

import (
	"testing"

	"coffee-order-api/internal/domain/product"
	"coffee-order-api/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, "Coffee Beans 1kg", p.Name())
		assert.Equal(t, product.DiscountPercent, p.Policy())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.ProductBuilder)
			errIs  error
		}{
			{
				name:   "empty name",
				mutate: func(b *builder.ProductBuilder) { b.WithName("") },
				errIs:  product.ErrEmptyName,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.ProductBuilder) { b.WithPrice("-1") },
				errIs:  product.ErrNegativePrice,
			},
			{
				name:   "unknown policy",
				mutate: func(b *builder.ProductBuilder) { b.Policy = "bogus" },
				errIs:  product.ErrInvalidDiscountPolicy,
			},
			{
				name:   "rate above 100",
				mutate: func(b *builder.ProductBuilder) { b.WithPolicy("percent", "100.01") },
				errIs:  product.ErrInvalidDiscountRate,
			},
			{
				name:   "negative rate",
				mutate: func(b *builder.ProductBuilder) { b.WithPolicy("percent", "-1") },
				errIs:  product.ErrInvalidDiscountRate,
			},
			{
				name:   "rate boundary 0",
				mutate: func(b *builder.ProductBuilder) { b.WithPolicy("percent", "0") },
			},
			{
				name:   "rate boundary 100",
				mutate: func(b *builder.ProductBuilder) { b.WithPolicy("percent", "100") },
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewProductBuilder()
				tc.mutate(b)
				p, err := b.BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, p)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, p)
			})
		}
	})

	t.Run("selling price with percent policy is exact", func(t *testing.T) {
		p, err := builder.NewProductBuilder().WithPrice("20.00").WithPolicy("percent", "10").BuildDomain()
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("18.00").Equal(p.SellingPrice()))
	})

	t.Run("selling price without discount is the list price", func(t *testing.T) {
		p, err := builder.NewProductBuilder().WithPrice("20.00").WithPolicy("none", "0").BuildDomain()
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("20.00").Equal(p.SellingPrice()))
	})

	t.Run("none policy zeroes any submitted rate", func(t *testing.T) {
		policy, err := product.ParseDiscountPolicy("none")
		require.NoError(t, err)
		p, err := product.NewProduct("Mug", decimal.NewFromInt(8), policy, decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.True(t, p.DiscountRate().IsZero())
	})

	t.Run("update replaces all fields", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		err = p.Update("Espresso Cups", decimal.RequireFromString("15.00"), product.DiscountPercent, decimal.NewFromInt(20))
		require.NoError(t, err)

		assert.Equal(t, "Espresso Cups", p.Name())
		assert.True(t, decimal.RequireFromString("12.00").Equal(p.SellingPrice()))
	})

	t.Run("invalid update leaves product untouched", func(t *testing.T) {
		p, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)
		before := p.Name()

		err = p.Update("", decimal.NewFromInt(1), product.DiscountNone, decimal.Zero)
		require.ErrorIs(t, err, product.ErrEmptyName)
		assert.Equal(t, before, p.Name())
	})
}
