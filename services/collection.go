package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// CollectionService initiates collections and their crypto variants.
type CollectionService struct {
	client *client.Client
}

// NewCollectionService creates a collection service.
func NewCollectionService(c *client.Client) *CollectionService {
	return &CollectionService{client: c}
}

// Initiate starts a collection.
func (s *CollectionService) Initiate(ctx context.Context, payload types.CollectionPayload) (*types.APIResponse, error) {
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	if err := types.ValidateCollectionPayload(doc); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/collection", doc)
}

// InitiateCrypto starts a crypto collection. The crypto payload shape is
// owned by the gateway, so it passes through unvalidated.
func (s *CollectionService) InitiateCrypto(ctx context.Context, payload map[string]interface{}) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodPost, "/api/external/collection/crypto", payload)
}

// AttachCustomer links a customer to a collection that arrived without one.
func (s *CollectionService) AttachCustomer(ctx context.Context, payload types.AttachCustomerPayload) (*types.APIResponse, error) {
	if payload.CustomerID == "" {
		return nil, types.NewValidationError("customer_id is required")
	}
	if payload.TransactionID == "" {
		return nil, types.NewValidationError("transaction_id is required")
	}
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/collection/attach-customer", doc)
}

// GetCryptoNetworks lists the networks available for crypto collections.
func (s *CollectionService) GetCryptoNetworks(ctx context.Context) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodGet, "/api/external/collection/crypto/networks", nil)
}
