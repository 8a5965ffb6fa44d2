package services_test

import (
	"testing"

	"retail/internal/core/domain/model/product"
	"retail/internal/core/domain/services"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCatalog_Add(t *testing.T) {
	t.Run("should register product under its id", func(t *testing.T) {
		catalog := services.NewProductCatalog()

		err := catalog.Add(testProduct(t, "P1", "25"))

		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
	})

	t.Run("should reject duplicate id", func(t *testing.T) {
		catalog := services.NewProductCatalog()
		require.NoError(t, catalog.Add(testProduct(t, "P1", "25")))

		err := catalog.Add(testProduct(t, "P1", "30"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		assert.Equal(t, 1, catalog.Len())
	})
}

func TestProductCatalog_Get(t *testing.T) {
	t.Run("should retrieve registered product", func(t *testing.T) {
		catalog := services.NewProductCatalog()
		p := testProduct(t, "P1", "25")
		require.NoError(t, catalog.Add(p))

		got, err := catalog.Get("P1")

		require.NoError(t, err)
		assert.Same(t, p, got)
	})

	t.Run("should fail with ObjectNotFound for unknown id", func(t *testing.T) {
		catalog := services.NewProductCatalog()

		_, err := catalog.Get("P404")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "P404")
	})
}

func TestProductCatalog_WithProduct(t *testing.T) {
	t.Run("should run mutation against registered product", func(t *testing.T) {
		catalog := services.NewProductCatalog()
		require.NoError(t, catalog.Add(testProduct(t, "P1", "25")))

		err := catalog.WithProduct("P1", func(p *product.Product) error {
			return p.UpdateStock(5)
		})

		require.NoError(t, err)
		got, err := catalog.Get("P1")
		require.NoError(t, err)
		assert.Equal(t, 105, got.Stock())
	})

	t.Run("should fail with ObjectNotFound for unknown id", func(t *testing.T) {
		catalog := services.NewProductCatalog()

		err := catalog.WithProduct("P404", func(*product.Product) error { return nil })

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return the mutation error unmodified", func(t *testing.T) {
		catalog := services.NewProductCatalog()
		require.NoError(t, catalog.Add(testProduct(t, "P1", "25")))

		err := catalog.WithProduct("P1", func(p *product.Product) error {
			return p.UpdateStock(-1000)
		})

		require.ErrorIs(t, err, product.ErrInsufficientStock)
	})
}
