package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// CurrencyService reads supported currencies.
type CurrencyService struct {
	client *client.Client
}

// NewCurrencyService creates a currency service.
func NewCurrencyService(c *client.Client) *CurrencyService {
	return &CurrencyService{client: c}
}

// List returns all supported currencies.
func (s *CurrencyService) List(ctx context.Context) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodGet, "/api/external/currency", nil)
}
