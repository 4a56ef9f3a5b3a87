package services

import (
	"context"
	"fmt"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
	"github.com/Blaaiz/blaaiz-go/utils/logger"
)

// WorkflowService sequences several API calls into one named business
// operation. Steps run strictly in order because each step's input depends
// on the previous step's output. There is no compensation: the gateway
// offers no multi-resource transaction, so a failure stops the workflow and
// reports which step failed together with everything already obtained —
// the caller decides what to do with, say, an orphaned customer record.
type WorkflowService struct {
	customers       *CustomerService
	fees            *FeesService
	payouts         *PayoutService
	collections     *CollectionService
	virtualAccounts *VirtualAccountService
}

// NewWorkflowService creates a workflow orchestrator.
func NewWorkflowService(c *client.Client) *WorkflowService {
	return &WorkflowService{
		customers:       NewCustomerService(c),
		fees:            NewFeesService(c),
		payouts:         NewPayoutService(c),
		collections:     NewCollectionService(c),
		virtualAccounts: NewVirtualAccountService(c),
	}
}

// CreateCompletePayout runs customer-creation, fee-calculation and
// payout-initiation as one logical transaction. Customer creation is
// skipped when the payout payload already names a customer; requested KYC
// documents are uploaded as part of the customer-creation step.
func (s *WorkflowService) CreateCompletePayout(ctx context.Context, input types.CompletePayoutInput) (*types.CompletePayoutResult, error) {
	result := &types.CompletePayoutResult{}

	customerID, err := s.ensureCustomer(ctx, input.PayoutData.CustomerID, input.CustomerData, input.KYCDocuments)
	result.CustomerID = customerID
	if err != nil {
		return nil, &types.WorkflowError{Step: types.StepCustomerCreation, Partial: result, Err: err}
	}

	fees, err := s.fees.GetBreakdown(ctx, types.FeePayload{
		FromCurrencyID: input.PayoutData.FromCurrencyID,
		ToCurrencyID:   input.PayoutData.ToCurrencyID,
		FromAmount:     input.PayoutData.FromAmount,
	})
	if err != nil {
		return nil, &types.WorkflowError{Step: types.StepFeeCalculation, Partial: result, Err: err}
	}
	result.Fees = fees.Data

	payoutData := input.PayoutData
	payoutData.CustomerID = customerID
	payout, err := s.payouts.Initiate(ctx, payoutData)
	if err != nil {
		return nil, &types.WorkflowError{Step: types.StepPayoutInitiation, Partial: result, Err: err}
	}
	result.Payout = payout.Data

	logger.WithFields(logger.Fields{"customer_id": customerID}).Debug("complete payout workflow finished")
	return result, nil
}

// CreateCompleteCollection runs customer-creation, collection-initiation
// and, when requested, vba-creation.
func (s *WorkflowService) CreateCompleteCollection(ctx context.Context, input types.CompleteCollectionInput) (*types.CompleteCollectionResult, error) {
	result := &types.CompleteCollectionResult{}

	customerID, err := s.ensureCustomer(ctx, input.CollectionData.CustomerID, input.CustomerData, input.KYCDocuments)
	result.CustomerID = customerID
	if err != nil {
		return nil, &types.WorkflowError{Step: types.StepCustomerCreation, Partial: result, Err: err}
	}

	collectionData := input.CollectionData
	collectionData.CustomerID = customerID
	collection, err := s.collections.Initiate(ctx, collectionData)
	if err != nil {
		return nil, &types.WorkflowError{Step: types.StepCollectionInitiation, Partial: result, Err: err}
	}
	result.Collection = collection.Data

	if input.CreateVBA {
		accountName := "Customer Account"
		if input.CustomerData != nil && input.CustomerData.FirstName != "" {
			accountName = fmt.Sprintf("%s %s", input.CustomerData.FirstName, input.CustomerData.LastName)
		}
		vba, err := s.virtualAccounts.Create(ctx, types.VirtualAccountPayload{
			WalletID:    input.CollectionData.WalletID,
			AccountName: accountName,
		})
		if err != nil {
			return nil, &types.WorkflowError{Step: types.StepVBACreation, Partial: result, Err: err}
		}
		result.VirtualAccount = vba.Data
	}

	logger.WithFields(logger.Fields{"customer_id": customerID}).Debug("complete collection workflow finished")
	return result, nil
}

// ensureCustomer resolves the customer for a workflow: reuse the provided
// ID when present, otherwise create one from customerData and upload any
// requested documents. Both the creation call and the uploads belong to the
// customer-creation step.
func (s *WorkflowService) ensureCustomer(ctx context.Context, existingID string, customerData *types.CustomerPayload, documents []types.UploadRequest) (string, error) {
	if existingID != "" {
		return existingID, nil
	}
	if customerData == nil {
		return "", types.NewValidationError("customer_id or customer data is required")
	}

	created, err := s.customers.Create(ctx, *customerData)
	if err != nil {
		return "", err
	}
	customerID, ok := created.DataString("id")
	if !ok || customerID == "" {
		return "", fmt.Errorf("customer creation response carried no id")
	}

	// The customer now exists even if a document upload fails below, so the
	// ID travels back with the error for the caller's partial result.
	for _, doc := range documents {
		if _, err := s.customers.UploadFileComplete(ctx, customerID, doc); err != nil {
			return customerID, fmt.Errorf("document upload for new customer %s: %w", customerID, err)
		}
	}
	return customerID, nil
}
