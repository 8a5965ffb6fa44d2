package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"retail/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var ErrHTTPGatewayIsNotConstructed = errors.New(
	"HTTPGateway must be created via NewHTTPGateway constructor",
)

const defaultTimeout = 10 * time.Second

// chargeRequest is the wire request sent to the payment provider.
type chargeRequest struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

// chargeResponse is the provider's wire response.
type chargeResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Error         string `json:"error,omitempty"`
}

// HTTPGateway settles payments against a remote provider over JSON HTTP.
// A provider-reported decline is a normal ChargeResult; only transport and
// protocol faults surface as errors.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

// NewHTTPGateway creates a gateway for the provider at baseURL. When client
// is nil a default client with a 10 second timeout is used.
func NewHTTPGateway(baseURL string, client *http.Client) (*HTTPGateway, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: baseURL is empty", ErrHTTPGatewayIsNotConstructed)
	}
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	return &HTTPGateway{
		baseURL: baseURL,
		client:  client,
	}, nil
}

// Charge posts the charge to the provider's /charges endpoint.
func (g *HTTPGateway) Charge(
	ctx context.Context,
	method string,
	amount decimal.Decimal,
) (order.ChargeResult, error) {
	body, err := json.Marshal(chargeRequest{Method: method, Amount: amount})
	if err != nil {
		return order.ChargeResult{}, err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return order.ChargeResult{}, err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := g.client.Do(request)
	if err != nil {
		return order.ChargeResult{}, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return order.ChargeResult{}, fmt.Errorf(
			"payment provider returned status %d", response.StatusCode)
	}

	var result chargeResponse
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return order.ChargeResult{}, fmt.Errorf("decode payment provider response: %w", err)
	}

	return order.ChargeResult{
		Success:       result.Success,
		TransactionID: result.TransactionID,
		Error:         result.Error,
	}, nil
}
