package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// TransactionService reads transactions.
type TransactionService struct {
	client *client.Client
}

// NewTransactionService creates a transaction service.
func NewTransactionService(c *client.Client) *TransactionService {
	return &TransactionService{client: c}
}

// List returns transactions matching filters. The gateway expects the
// filter set in a POST body; nil means no filtering.
func (s *TransactionService) List(ctx context.Context, filters map[string]interface{}) (*types.APIResponse, error) {
	if filters == nil {
		filters = map[string]interface{}{}
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/transaction", filters)
}

// Get returns a single transaction.
func (s *TransactionService) Get(ctx context.Context, transactionID string) (*types.APIResponse, error) {
	if transactionID == "" {
		return nil, types.NewValidationError("transaction ID is required")
	}
	return s.client.Do(ctx, http.MethodGet, "/api/external/transaction/"+transactionID, nil)
}
