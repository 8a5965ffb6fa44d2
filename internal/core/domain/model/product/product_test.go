package product_test

import (
	"testing"

	"retail/internal/core/domain/model/product"
	"retail/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	price := decimal.NewFromFloat(19.99)

	t.Run("should create valid product", func(t *testing.T) {
		p, err := product.NewProduct("P1", "Keyboard", price, 25)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "P1", p.ID())
		assert.Equal(t, "Keyboard", p.Name())
		assert.True(t, price.Equal(p.Price()))
		assert.Equal(t, 25, p.Stock())
	})

	t.Run("should allow zero stock", func(t *testing.T) {
		p, err := product.NewProduct("P1", "Keyboard", price, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should fail without id", func(t *testing.T) {
		p, err := product.NewProduct("", "Keyboard", price, 25)

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without name", func(t *testing.T) {
		_, err := product.NewProduct("P1", "", price, 25)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative price", func(t *testing.T) {
		_, err := product.NewProduct("P1", "Keyboard", decimal.NewFromFloat(-0.01), 25)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("should fail with negative stock", func(t *testing.T) {
		_, err := product.NewProduct("P1", "Keyboard", price, -1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		_, err := product.NewProduct("", "", price, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "product id")
		assert.Contains(t, err.Error(), "product name")
		assert.Contains(t, err.Error(), "stock")
	})
}

func TestProduct_Validate(t *testing.T) {
	t.Run("should fail for nil product", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})

	t.Run("should fail for zero value product", func(t *testing.T) {
		p := &product.Product{}

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_IsAvailable(t *testing.T) {
	p, _ := product.NewProduct("P1", "Keyboard", decimal.NewFromFloat(19.99), 5)

	t.Run("should be available for quantity within stock", func(t *testing.T) {
		assert.True(t, p.IsAvailable(1))
		assert.True(t, p.IsAvailable(5))
	})

	t.Run("should not be available for quantity above stock", func(t *testing.T) {
		assert.False(t, p.IsAvailable(6))
	})

	t.Run("should not mutate stock", func(t *testing.T) {
		p.IsAvailable(5)

		assert.Equal(t, 5, p.Stock())
	})
}

func TestProduct_UpdateStock(t *testing.T) {
	t.Run("should increase stock", func(t *testing.T) {
		p, _ := product.NewProduct("P1", "Keyboard", decimal.NewFromFloat(19.99), 5)

		require.NoError(t, p.UpdateStock(10))
		assert.Equal(t, 15, p.Stock())
	})

	t.Run("should decrease stock", func(t *testing.T) {
		p, _ := product.NewProduct("P1", "Keyboard", decimal.NewFromFloat(19.99), 5)

		require.NoError(t, p.UpdateStock(-5))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should reject mutation that would drive stock negative", func(t *testing.T) {
		p, _ := product.NewProduct("P1", "Keyboard", decimal.NewFromFloat(19.99), 5)

		err := p.UpdateStock(-6)

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Contains(t, err.Error(), "P1")
		assert.Equal(t, 5, p.Stock(), "stock must be unchanged on failure")
	})
}
