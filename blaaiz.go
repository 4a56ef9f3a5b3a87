// Package blaaiz is the Go SDK for the Blaaiz payments platform. It covers
// collections, payouts, customers and KYC, wallets, virtual bank accounts,
// fee calculation, file uploads and webhook management, with signature
// verification for inbound webhook notifications.
package blaaiz

import (
	"context"
	"time"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/config"
	"github.com/Blaaiz/blaaiz-go/services"
	"github.com/Blaaiz/blaaiz-go/types"
	"github.com/Blaaiz/blaaiz-go/utils/logger"
)

// Blaaiz is the SDK entry point. All services share one request client and
// one immutable configuration; a Blaaiz value is safe for concurrent use.
type Blaaiz struct {
	Customers       *services.CustomerService
	Collections     *services.CollectionService
	Payouts         *services.PayoutService
	Wallets         *services.WalletService
	VirtualAccounts *services.VirtualAccountService
	Transactions    *services.TransactionService
	Banks           *services.BankService
	Currencies      *services.CurrencyService
	Fees            *services.FeesService
	Files           *services.FileService
	Webhooks        *services.WebhookService

	workflows *services.WorkflowService
	client    *client.Client
}

// Option overrides one configuration value at construction time.
type Option func(*config.ClientConfiguration)

// WithBaseURL points the client at a different API host (e.g. production).
func WithBaseURL(baseURL string) Option {
	return func(cfg *config.ClientConfiguration) { cfg.BaseURL = baseURL }
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(d time.Duration) Option {
	return func(cfg *config.ClientConfiguration) { cfg.Timeout = d }
}

// WithMaxRetries sets the default retry budget per call.
func WithMaxRetries(n int) Option {
	return func(cfg *config.ClientConfiguration) { cfg.MaxRetries = n }
}

// WithBackoff sets the retry backoff base and cap.
func WithBackoff(base, cap time.Duration) Option {
	return func(cfg *config.ClientConfiguration) {
		cfg.RetryBackoff = base
		cfg.RetryBackoffCap = cap
	}
}

// WithUploadConcurrency bounds parallel items in batch file uploads.
func WithUploadConcurrency(n int) Option {
	return func(cfg *config.ClientConfiguration) { cfg.UploadConcurrency = n }
}

// New builds an SDK instance. Configuration starts from the environment
// (BLAAIZ_* variables) and SDK defaults, then applies the given options;
// the API key is required.
func New(apiKey string, opts ...Option) (*Blaaiz, error) {
	cfg := config.ClientConfig()
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c, err := client.New(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.SentryDSN != "" {
		if err := logger.EnableSentry(cfg.SentryDSN, cfg.Environment); err != nil {
			return nil, err
		}
	}

	return &Blaaiz{
		Customers:       services.NewCustomerService(c),
		Collections:     services.NewCollectionService(c),
		Payouts:         services.NewPayoutService(c),
		Wallets:         services.NewWalletService(c),
		VirtualAccounts: services.NewVirtualAccountService(c),
		Transactions:    services.NewTransactionService(c),
		Banks:           services.NewBankService(c),
		Currencies:      services.NewCurrencyService(c),
		Fees:            services.NewFeesService(c),
		Files:           services.NewFileService(c),
		Webhooks:        services.NewWebhookService(c),
		workflows:       services.NewWorkflowService(c),
		client:          c,
	}, nil
}

// Client exposes the underlying request client for raw calls against
// endpoints the typed services do not cover yet.
func (b *Blaaiz) Client() *client.Client {
	return b.client
}

// Close releases idle connections held by the SDK.
func (b *Blaaiz) Close() {
	b.client.Close()
}

// TestConnection reports whether the API is reachable with the configured
// credentials.
func (b *Blaaiz) TestConnection(ctx context.Context) bool {
	_, err := b.Currencies.List(ctx)
	return err == nil
}

// CreateCompletePayout runs the customer → fees → payout workflow. See
// services.WorkflowService for the partial-failure contract.
func (b *Blaaiz) CreateCompletePayout(ctx context.Context, input types.CompletePayoutInput) (*types.CompletePayoutResult, error) {
	return b.workflows.CreateCompletePayout(ctx, input)
}

// CreateCompleteCollection runs the customer → collection → optional VBA
// workflow.
func (b *Blaaiz) CreateCompleteCollection(ctx context.Context, input types.CompleteCollectionInput) (*types.CompleteCollectionResult, error) {
	return b.workflows.CreateCompleteCollection(ctx, input)
}

// CalculateFees is a convenience wrapper over Fees.GetBreakdown.
func (b *Blaaiz) CalculateFees(ctx context.Context, payload types.FeePayload) (*types.APIResponse, error) {
	return b.Fees.GetBreakdown(ctx, payload)
}
