package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// VirtualAccountService manages virtual bank accounts.
type VirtualAccountService struct {
	client *client.Client
}

// NewVirtualAccountService creates a virtual bank account service.
func NewVirtualAccountService(c *client.Client) *VirtualAccountService {
	return &VirtualAccountService{client: c}
}

// Create provisions a virtual bank account against a wallet.
func (s *VirtualAccountService) Create(ctx context.Context, payload types.VirtualAccountPayload) (*types.APIResponse, error) {
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	if err := types.ValidateVirtualAccountPayload(doc); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/virtual-bank-account", doc)
}

// List returns virtual bank accounts, optionally filtered by wallet.
func (s *VirtualAccountService) List(ctx context.Context, walletID string) (*types.APIResponse, error) {
	if walletID == "" {
		return s.client.Do(ctx, http.MethodGet, "/api/external/virtual-bank-account", nil)
	}
	return s.client.Do(ctx, http.MethodGet, "/api/external/virtual-bank-account", nil,
		client.WithQuery(map[string]string{"wallet_id": walletID}))
}

// Get returns a single virtual bank account.
func (s *VirtualAccountService) Get(ctx context.Context, vbaID string) (*types.APIResponse, error) {
	if vbaID == "" {
		return nil, types.NewValidationError("virtual bank account ID is required")
	}
	return s.client.Do(ctx, http.MethodGet, "/api/external/virtual-bank-account/"+vbaID, nil)
}
