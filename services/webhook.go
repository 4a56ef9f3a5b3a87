package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
	"github.com/Blaaiz/blaaiz-go/webhook"
)

// WebhookService manages webhook endpoint registration and replay, and
// exposes signature verification for inbound notifications.
type WebhookService struct {
	client *client.Client
}

// NewWebhookService creates a webhook service.
func NewWebhookService(c *client.Client) *WebhookService {
	return &WebhookService{client: c}
}

// Register sets the collection and payout notification URLs.
func (s *WebhookService) Register(ctx context.Context, payload types.WebhookRegisterPayload) (*types.APIResponse, error) {
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	if err := types.ValidateWebhookRegisterPayload(doc); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/webhook", doc)
}

// Get returns the current webhook configuration.
func (s *WebhookService) Get(ctx context.Context) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodGet, "/api/external/webhook", nil)
}

// Update modifies the webhook configuration.
func (s *WebhookService) Update(ctx context.Context, payload map[string]interface{}) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodPut, "/api/external/webhook", payload)
}

// Replay asks the gateway to re-deliver the webhook of a transaction.
func (s *WebhookService) Replay(ctx context.Context, transactionID string) (*types.APIResponse, error) {
	if transactionID == "" {
		return nil, types.NewValidationError("transaction_id is required")
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/webhook/replay",
		map[string]interface{}{"transaction_id": transactionID})
}

// VerifySignature checks an inbound notification's signature against the
// shared secret. See the webhook package for the exact contract.
func (s *WebhookService) VerifySignature(payload []byte, signature, secret string) (bool, error) {
	return webhook.Verify(payload, signature, secret)
}

// ConstructEvent verifies and parses an inbound notification.
func (s *WebhookService) ConstructEvent(payload []byte, signature, secret string) (*types.WebhookEvent, error) {
	return webhook.ConstructEvent(payload, signature, secret)
}
