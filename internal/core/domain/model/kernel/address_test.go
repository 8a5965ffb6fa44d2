package kernel_test

import (
	"testing"

	"retail/internal/core/domain/model/kernel"
	"retail/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address with all fields", func(t *testing.T) {
		address, err := kernel.NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")

		require.NoError(t, err)
		require.NoError(t, address.Validate())
		assert.Equal(t, "123 Main St", address.Street())
		assert.Equal(t, "Springfield", address.City())
		assert.Equal(t, "IL", address.State())
		assert.Equal(t, "62701", address.Zip())
		assert.Equal(t, "USA", address.Country())
	})

	t.Run("should default country to USA when empty", func(t *testing.T) {
		address, err := kernel.NewAddress("123 Main St", "Springfield", "IL", "62701", "")

		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultCountry, address.Country())
	})

	t.Run("should keep explicit country", func(t *testing.T) {
		address, err := kernel.NewAddress("10 Downing St", "London", "", "SW1A 2AA", "UK")

		require.NoError(t, err)
		assert.Equal(t, "UK", address.Country())
	})

	t.Run("should fail without street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Springfield", "IL", "62701", "USA")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
	})

	t.Run("should fail without city", func(t *testing.T) {
		_, err := kernel.NewAddress("123 Main St", "", "IL", "62701", "USA")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "city")
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		_, err := kernel.NewAddress("", "", "IL", "62701", "USA")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "city")
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("should reject zero value address", func(t *testing.T) {
		var address kernel.Address

		err := address.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	t.Run("should treat identical addresses as equal", func(t *testing.T) {
		first, _ := kernel.NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")
		second, _ := kernel.NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")

		assert.True(t, first.IsEqual(second))
	})

	t.Run("should treat different addresses as not equal", func(t *testing.T) {
		first, _ := kernel.NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")
		second, _ := kernel.NewAddress("456 Oak Ave", "Springfield", "IL", "62701", "USA")

		assert.False(t, first.IsEqual(second))
	})
}

func TestAddress_String(t *testing.T) {
	t.Run("should render single line", func(t *testing.T) {
		address, _ := kernel.NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")

		assert.Equal(t, "123 Main St, Springfield, IL 62701, USA", address.String())
	})
}
