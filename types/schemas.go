package types

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Wire-payload schemas, validated client-side before a request leaves the
// SDK. They only pin the fields the gateway documents as required; anything
// else passes through untouched so new gateway fields never need an SDK
// release.

const customerSchema = `{
	"type": "object",
	"required": ["first_name", "last_name", "type", "email", "country", "id_type", "id_number"],
	"properties": {
		"first_name": {"type": "string", "minLength": 1},
		"last_name": {"type": "string", "minLength": 1},
		"type": {"type": "string", "enum": ["individual", "business"]},
		"email": {"type": "string", "minLength": 3},
		"country": {"type": "string", "minLength": 2},
		"id_type": {"type": "string", "minLength": 1},
		"id_number": {"type": "string", "minLength": 1}
	}
}`

const feeSchema = `{
	"type": "object",
	"required": ["from_currency_id", "to_currency_id", "from_amount"],
	"properties": {
		"from_currency_id": {"type": "string", "minLength": 1},
		"to_currency_id": {"type": "string", "minLength": 1},
		"from_amount": {"type": ["string", "number"]}
	}
}`

const payoutSchema = `{
	"type": "object",
	"required": ["wallet_id", "method", "from_amount", "from_currency_id", "to_currency_id"],
	"properties": {
		"wallet_id": {"type": "string", "minLength": 1},
		"method": {"type": "string", "enum": ["bank_transfer", "interac"]},
		"from_amount": {"type": ["string", "number"]},
		"from_currency_id": {"type": "string", "minLength": 1},
		"to_currency_id": {"type": "string", "minLength": 1}
	}
}`

const collectionSchema = `{
	"type": "object",
	"required": ["method", "amount", "wallet_id"],
	"properties": {
		"method": {"type": "string", "minLength": 1},
		"amount": {"type": ["string", "number"]},
		"wallet_id": {"type": "string", "minLength": 1}
	}
}`

const virtualAccountSchema = `{
	"type": "object",
	"required": ["wallet_id"],
	"properties": {
		"wallet_id": {"type": "string", "minLength": 1}
	}
}`

const webhookRegisterSchema = `{
	"type": "object",
	"required": ["collection_url", "payout_url"],
	"properties": {
		"collection_url": {"type": "string", "minLength": 1},
		"payout_url": {"type": "string", "minLength": 1}
	}
}`

func validateSchema(schema string, doc map[string]interface{}) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return NewValidationError("payload validation failed: %v", err)
	}
	if !result.Valid() {
		var problems []string
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return NewValidationError("invalid payload: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateCustomerPayload checks a customer-creation wire payload, including
// the business-name rule that the schema cannot express by itself.
func ValidateCustomerPayload(doc map[string]interface{}) error {
	if err := validateSchema(customerSchema, doc); err != nil {
		return err
	}
	if doc["type"] == "business" {
		if name, _ := doc["business_name"].(string); name == "" {
			return NewValidationError("business_name is required when type is business")
		}
	}
	return nil
}

// ValidateFeePayload checks a fee-breakdown wire payload.
func ValidateFeePayload(doc map[string]interface{}) error {
	if err := validateSchema(feeSchema, doc); err != nil {
		return err
	}
	if isZeroAmount(doc["from_amount"]) {
		return NewValidationError("from_amount is required")
	}
	return nil
}

// ValidatePayoutPayload checks a payout wire payload together with the
// per-method conditional fields.
func ValidatePayoutPayload(doc map[string]interface{}) error {
	if err := validateSchema(payoutSchema, doc); err != nil {
		return err
	}
	if isZeroAmount(doc["from_amount"]) {
		return NewValidationError("from_amount is required")
	}
	switch doc["method"] {
	case "bank_transfer":
		if s, _ := doc["account_number"].(string); s == "" {
			return NewValidationError("account_number is required for bank_transfer method")
		}
	case "interac":
		for _, field := range []string{"email", "interac_first_name", "interac_last_name"} {
			if s, _ := doc[field].(string); s == "" {
				return NewValidationError("%s is required for interac method", field)
			}
		}
	}
	return nil
}

// ValidateCollectionPayload checks a collection wire payload.
func ValidateCollectionPayload(doc map[string]interface{}) error {
	if err := validateSchema(collectionSchema, doc); err != nil {
		return err
	}
	if isZeroAmount(doc["amount"]) {
		return NewValidationError("amount is required")
	}
	return nil
}

// ValidateVirtualAccountPayload checks a virtual bank account wire payload.
func ValidateVirtualAccountPayload(doc map[string]interface{}) error {
	return validateSchema(virtualAccountSchema, doc)
}

// ValidateWebhookRegisterPayload checks a webhook registration wire payload.
func ValidateWebhookRegisterPayload(doc map[string]interface{}) error {
	return validateSchema(webhookRegisterSchema, doc)
}

// isZeroAmount treats "", "0" and 0 as absent. Amounts travel as decimal
// strings but callers supplying Extra may pass plain numbers.
func isZeroAmount(v interface{}) bool {
	switch a := v.(type) {
	case nil:
		return true
	case string:
		return a == "" || a == "0"
	case float64:
		return a == 0
	default:
		return false
	}
}
