package payment_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"retail/internal/adapters/out/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_Charge(t *testing.T) {
	t.Run("should post charge and map a successful response", func(t *testing.T) {
		var received map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/charges", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"success":true,"transaction_id":"TXN-42"}`))
		}))
		defer server.Close()

		gateway, err := payment.NewHTTPGateway(server.URL, server.Client())
		require.NoError(t, err)

		result, err := gateway.Charge(t.Context(), "credit_card", decimal.RequireFromString("99.95"))

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "TXN-42", result.TransactionID)
		assert.Equal(t, "credit_card", received["method"])
		assert.Equal(t, "99.95", received["amount"])
	})

	t.Run("should map a decline without error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"error":"card declined"}`))
		}))
		defer server.Close()

		gateway, err := payment.NewHTTPGateway(server.URL, server.Client())
		require.NoError(t, err)

		result, err := gateway.Charge(t.Context(), "credit_card", decimal.NewFromInt(10))

		require.NoError(t, err, "a decline is a result, not a transport fault")
		assert.False(t, result.Success)
		assert.Equal(t, "card declined", result.Error)
	})

	t.Run("should fail on non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		gateway, err := payment.NewHTTPGateway(server.URL, server.Client())
		require.NoError(t, err)

		_, err = gateway.Charge(t.Context(), "credit_card", decimal.NewFromInt(10))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})

	t.Run("should fail on unreachable provider", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		server.Close() // deliberately unreachable

		gateway, err := payment.NewHTTPGateway(server.URL, nil)
		require.NoError(t, err)

		_, err = gateway.Charge(t.Context(), "credit_card", decimal.NewFromInt(10))

		require.Error(t, err)
	})

	t.Run("should reject empty base URL", func(t *testing.T) {
		_, err := payment.NewHTTPGateway("", nil)

		require.ErrorIs(t, err, payment.ErrHTTPGatewayIsNotConstructed)
	})
}
