// Package services contains the per-resource Blaaiz API services plus the
// file upload pipeline and the workflow orchestrator. Each service is a thin
// layer over the request client: validate the payload at the boundary, then
// pass it through.
package services

import (
	"context"
	"net/http"

	"github.com/Blaaiz/blaaiz-go/client"
	"github.com/Blaaiz/blaaiz-go/types"
)

// CustomerService manages customer records and their KYC data.
type CustomerService struct {
	client *client.Client
	files  *FileService
}

// NewCustomerService creates a customer service.
func NewCustomerService(c *client.Client) *CustomerService {
	return &CustomerService{client: c, files: NewFileService(c)}
}

// Create registers a new customer.
func (s *CustomerService) Create(ctx context.Context, payload types.CustomerPayload) (*types.APIResponse, error) {
	doc, err := payload.Map()
	if err != nil {
		return nil, err
	}
	if err := types.ValidateCustomerPayload(doc); err != nil {
		return nil, err
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/customer", doc)
}

// List returns all customers.
func (s *CustomerService) List(ctx context.Context) (*types.APIResponse, error) {
	return s.client.Do(ctx, http.MethodGet, "/api/external/customer", nil)
}

// Get returns a single customer.
func (s *CustomerService) Get(ctx context.Context, customerID string) (*types.APIResponse, error) {
	if customerID == "" {
		return nil, types.NewValidationError("customer ID is required")
	}
	return s.client.Do(ctx, http.MethodGet, "/api/external/customer/"+customerID, nil)
}

// Update modifies an existing customer.
func (s *CustomerService) Update(ctx context.Context, customerID string, update map[string]interface{}) (*types.APIResponse, error) {
	if customerID == "" {
		return nil, types.NewValidationError("customer ID is required")
	}
	return s.client.Do(ctx, http.MethodPut, "/api/external/customer/"+customerID, update)
}

// AddKYC attaches KYC data to a customer.
func (s *CustomerService) AddKYC(ctx context.Context, customerID string, kycData map[string]interface{}) (*types.APIResponse, error) {
	if customerID == "" {
		return nil, types.NewValidationError("customer ID is required")
	}
	return s.client.Do(ctx, http.MethodPost, "/api/external/customer/"+customerID+"/kyc-data", kycData)
}

// AssociateFiles links already-uploaded file IDs to a customer record.
func (s *CustomerService) AssociateFiles(ctx context.Context, customerID string, fileData map[string]interface{}) (*types.APIResponse, error) {
	if customerID == "" {
		return nil, types.NewValidationError("customer ID is required")
	}
	return s.client.Do(ctx, http.MethodPut, "/api/external/customer/"+customerID+"/files", fileData)
}

// UploadFileComplete runs the full presign/transfer/associate pipeline for
// one document.
func (s *CustomerService) UploadFileComplete(ctx context.Context, customerID string, req types.UploadRequest) (*types.UploadResult, error) {
	return s.files.UploadComplete(ctx, customerID, req)
}
