package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// PayoutService initiates payouts over bank transfer and Interac.
type PayoutService struct {
	client *client.Client
}

// NewPayoutService creates a payout service.
func NewPayoutService(c *client.Client) *PayoutService {
	return &PayoutService{client: c}
}

// Initiate starts a payout.
func (s *PayoutService) Initiate(ctx context.Context, payload types.PayoutPayload) (*types.APIResponse, error) {
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	if err := types.ValidatePayoutPayload(doc); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/payout", doc)
}
