package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// WalletService reads merchant wallets.
type WalletService struct {
	client *client.Client
}

// NewWalletService creates a wallet service.
func NewWalletService(c *client.Client) *WalletService {
	return &WalletService{client: c}
}

// List returns all wallets.
func (s *WalletService) List(ctx context.Context) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodGet, "/api/external/wallet", nil)
}

// Get returns a single wallet.
func (s *WalletService) Get(ctx context.Context, walletID string) (*types.APIResponse, error) {
	if walletID == "" {
		return nil, types.NewValidationError("wallet ID is required")
	}
	return s.client.Do(ctx, http.MethodGet, "/api/external/wallet/"+walletID, nil)
}
