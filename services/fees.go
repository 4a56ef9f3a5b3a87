package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// FeesService calculates fee breakdowns for cross-currency transfers.
type FeesService struct {
	client *client.Client
}

// NewFeesService creates a fees service.
func NewFeesService(c *client.Client) *FeesService {
	return &FeesService{client: c}
}

// GetBreakdown returns the fee breakdown for a prospective transfer.
func (s *FeesService) GetBreakdown(ctx context.Context, payload types.FeePayload) (*types.APIResponse, error) {
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	if err := types.ValidateFeePayload(doc); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/fees/breakdown", doc)
}
