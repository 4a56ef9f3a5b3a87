package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// BankService lists banks and resolves account numbers.
type BankService struct {
	client *client.Client
}

// NewBankService creates a bank service.
func NewBankService(c *client.Client) *BankService {
	return &BankService{client: c}
}

// List returns all supported banks.
func (s *BankService) List(ctx context.Context) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodGet, "/api/external/bank", nil)
}

// LookupAccount resolves an account number against a bank.
func (s *BankService) LookupAccount(ctx context.Context, payload types.AccountLookupPayload) (*types.APIResponse, error) {
	if payload.AccountNumber == "" {
		return nil, types.NewValidationError("account_number is required")
	}
	if payload.BankID == "" {
		return nil, types.NewValidationError("bank_id is required")
	}
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/bank/account-lookup", doc)
}
