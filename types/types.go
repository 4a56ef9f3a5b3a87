package types

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// APIResponse is the parsed result of a successful exchange with the Blaaiz
// API. Data holds the response body decoded into a generic map; the gateway's
// schema is its own contract, so no structural validation happens here.
type APIResponse struct {
	Data    map[string]interface{}
	Status  int
	Headers http.Header
}

// DataField returns a field from the body's nested "data" object, which is
// where the gateway places resource attributes.
func (r *APIResponse) DataField(key string) (interface{}, bool) {
	if r == nil || r.Data == nil {
		return nil, false
	}
	inner, ok := r.Data["data"].(map[string]interface{})
	if !ok {
		return nil, false
	}
	v, ok := inner[key]
	return v, ok
}

// DataString is DataField with the value rendered as a string. Numeric IDs
// are common in gateway responses, so json numbers are stringified.
func (r *APIResponse) DataString(key string) (string, bool) {
	v, ok := r.DataField(key)
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return decimal.NewFromFloat(s).String(), true
	case json.Number:
		return s.String(), true
	default:
		return fmt.Sprintf("%v", s), true
	}
}

// WebhookEvent is a webhook payload that passed signature verification.
// It is only ever constructed by the webhook package; Verified is always
// true on a value obtained through ConstructEvent.
type WebhookEvent struct {
	Data       map[string]interface{}
	Verified   bool
	VerifiedAt time.Time
}

// CustomerPayload carries the fields for customer creation. Extra is a
// catch-all merged into the wire payload for fields the typed shape does not
// know about yet.
type CustomerPayload struct {
	FirstName    string                 `json:"first_name"`
	LastName     string                 `json:"last_name"`
	Type         string                 `json:"type"`
	Email        string                 `json:"email"`
	Country      string                 `json:"country"`
	IDType       string                 `json:"id_type"`
	IDNumber     string                 `json:"id_number"`
	BusinessName string                 `json:"business_name,omitempty"`
	Extra        map[string]interface{} `json:"-"`
}

// Map renders the payload as the wire-format map, typed fields first and
// Extra merged on top.
func (p CustomerPayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, p.Extra)
}

// FeePayload carries the inputs of a fee breakdown calculation.
type FeePayload struct {
	FromCurrencyID string                 `json:"from_currency_id"`
	ToCurrencyID   string                 `json:"to_currency_id"`
	FromAmount     decimal.Decimal        `json:"from_amount"`
	Extra          map[string]interface{} `json:"-"`
}

func (p FeePayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, p.Extra)
}

// PayoutPayload carries a payout initiation request. AccountNumber and the
// Interac fields are conditionally required depending on Method.
type PayoutPayload struct {
	WalletID         string                 `json:"wallet_id"`
	CustomerID       string                 `json:"customer_id,omitempty"`
	Method           string                 `json:"method"`
	FromAmount       decimal.Decimal        `json:"from_amount"`
	FromCurrencyID   string                 `json:"from_currency_id"`
	ToCurrencyID     string                 `json:"to_currency_id"`
	AccountNumber    string                 `json:"account_number,omitempty"`
	BankID           string                 `json:"bank_id,omitempty"`
	PhoneNumber      string                 `json:"phone_number,omitempty"`
	Email            string                 `json:"email,omitempty"`
	InteracFirstName string                 `json:"interac_first_name,omitempty"`
	InteracLastName  string                 `json:"interac_last_name,omitempty"`
	Extra            map[string]interface{} `json:"-"`
}

func (p PayoutPayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, p.Extra)
}

// CollectionPayload carries a collection initiation request.
type CollectionPayload struct {
	Method     string                 `json:"method"`
	Amount     decimal.Decimal        `json:"amount"`
	WalletID   string                 `json:"wallet_id"`
	CustomerID string                 `json:"customer_id,omitempty"`
	Extra      map[string]interface{} `json:"-"`
}

func (p CollectionPayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, p.Extra)
}

// VirtualAccountPayload carries a virtual bank account creation request.
type VirtualAccountPayload struct {
	WalletID    string                 `json:"wallet_id"`
	AccountName string                 `json:"account_name,omitempty"`
	Extra       map[string]interface{} `json:"-"`
}

func (p VirtualAccountPayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, p.Extra)
}

// AccountLookupPayload carries a bank account lookup request.
type AccountLookupPayload struct {
	AccountNumber string `json:"account_number"`
	BankID        string `json:"bank_id"`
}

func (p AccountLookupPayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, nil)
}

// AttachCustomerPayload links a customer to an unattributed collection.
type AttachCustomerPayload struct {
	CustomerID    string `json:"customer_id"`
	TransactionID string `json:"transaction_id"`
}

func (p AttachCustomerPayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, nil)
}

// WebhookRegisterPayload carries the webhook endpoint registration request.
type WebhookRegisterPayload struct {
	CollectionURL string `json:"collection_url"`
	PayoutURL     string `json:"payout_url"`
}

func (p WebhookRegisterPayload) Map() (map[string]interface{}, error) {
	return payloadToMap(p, nil)
}

// UploadRequest describes one document to push through the upload pipeline.
// File accepts raw bytes ([]byte), a base64 string, a data URL, or an
// HTTP(S) URL; the pipeline normalizes all four to raw bytes.
type UploadRequest struct {
	File         interface{}
	FileCategory string
	Filename     string
	ContentType  string
}

// UploadResult is the outcome of a completed three-step upload.
type UploadResult struct {
	FileID       string
	PresignedURL string
	Association  *APIResponse
}

// BatchUploadItem is the per-input outcome of a batch upload. Exactly one of
// Result and Err is set.
type BatchUploadItem struct {
	Success bool
	Result  *UploadResult
	Err     error
}

// CompletePayoutInput configures the complete-payout workflow. CustomerData
// is optional when PayoutData already carries a customer ID. KYCDocuments
// are uploaded right after customer creation as part of that step.
type CompletePayoutInput struct {
	CustomerData *CustomerPayload
	KYCDocuments []UploadRequest
	PayoutData   PayoutPayload
}

// CompletePayoutResult accumulates the sub-operation outputs of the
// complete-payout workflow. Fields are filled in step order, so a partial
// value attached to a WorkflowError reflects exactly what succeeded.
type CompletePayoutResult struct {
	CustomerID string
	Fees       map[string]interface{}
	Payout     map[string]interface{}
}

// CompleteCollectionInput configures the complete-collection workflow.
type CompleteCollectionInput struct {
	CustomerData   *CustomerPayload
	KYCDocuments   []UploadRequest
	CollectionData CollectionPayload
	CreateVBA      bool
}

// CompleteCollectionResult accumulates the sub-operation outputs of the
// complete-collection workflow.
type CompleteCollectionResult struct {
	CustomerID     string
	Collection     map[string]interface{}
	VirtualAccount map[string]interface{}
}

// payloadToMap marshals the typed payload and merges the catch-all map on
// top of it. Extra entries override typed fields of the same key, which lets
// callers force-set anything.
func payloadToMap(v interface{}, extra map[string]interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{})
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	for k, val := range extra {
		out[k] = val
	}
	return out, nil
}
