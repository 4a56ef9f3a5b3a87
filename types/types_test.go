package types

import (
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadMap(t *testing.T) {
	t.Run("typed fields land under their wire names", func(t *testing.T) {
		doc, err := CustomerPayload{
			FirstName: "Jane",
			LastName:  "Doe",
			Type:      "individual",
			Email:     "jane@example.com",
			Country:   "NG",
			IDType:    "passport",
			IDNumber:  "A1234567",
		}.Map()
		require.NoError(t, err)

		assert.Equal(t, "Jane", doc["first_name"])
		assert.Equal(t, "passport", doc["id_type"])
		assert.NotContains(t, doc, "business_name")
		assert.NotContains(t, doc, "Extra")
	})

	t.Run("extra entries override typed fields", func(t *testing.T) {
		doc, err := CustomerPayload{
			FirstName: "Jane",
			Extra: map[string]interface{}{
				"first_name":  "Janet",
				"middle_name": "Q",
			},
		}.Map()
		require.NoError(t, err)

		assert.Equal(t, "Janet", doc["first_name"])
		assert.Equal(t, "Q", doc["middle_name"])
	})

	t.Run("amounts serialize as decimal strings", func(t *testing.T) {
		doc, err := PayoutPayload{
			WalletID:   "wal-1",
			Method:     "bank_transfer",
			FromAmount: decimal.RequireFromString("1050.25"),
		}.Map()
		require.NoError(t, err)
		assert.Equal(t, "1050.25", doc["from_amount"])
	})
}

func TestAPIResponseData(t *testing.T) {
	res := &APIResponse{
		Data: map[string]interface{}{
			"message": "ok",
			"data": map[string]interface{}{
				"id":     "cus-1",
				"count":  float64(42),
				"absent": nil,
			},
		},
		Status:  http.StatusOK,
		Headers: http.Header{},
	}

	t.Run("DataField reads the nested data object", func(t *testing.T) {
		v, ok := res.DataField("id")
		assert.True(t, ok)
		assert.Equal(t, "cus-1", v)

		_, ok = res.DataField("missing")
		assert.False(t, ok)
	})

	t.Run("DataString stringifies numeric values", func(t *testing.T) {
		s, ok := res.DataString("count")
		assert.True(t, ok)
		assert.Equal(t, "42", s)
	})

	t.Run("nil and absent values are misses", func(t *testing.T) {
		_, ok := res.DataString("absent")
		assert.False(t, ok)

		var empty *APIResponse
		_, ok = empty.DataString("id")
		assert.False(t, ok)
	})

	t.Run("flat body without data object is a miss", func(t *testing.T) {
		flat := &APIResponse{Data: map[string]interface{}{"id": "x"}}
		_, ok := flat.DataField("id")
		assert.False(t, ok)
	})
}

func TestValidateCustomerPayload(t *testing.T) {
	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"first_name": "Jane",
			"last_name":  "Doe",
			"type":       "individual",
			"email":      "jane@example.com",
			"country":    "NG",
			"id_type":    "passport",
			"id_number":  "A1234567",
		}
	}

	t.Run("valid individual passes", func(t *testing.T) {
		assert.NoError(t, ValidateCustomerPayload(valid()))
	})

	t.Run("missing required field is named", func(t *testing.T) {
		doc := valid()
		delete(doc, "email")
		err := ValidateCustomerPayload(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")

		var verr *ValidationError
		assert.True(t, errors.As(err, &verr))
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		doc := valid()
		doc["type"] = "partnership"
		assert.Error(t, ValidateCustomerPayload(doc))
	})

	t.Run("business requires business_name", func(t *testing.T) {
		doc := valid()
		doc["type"] = "business"
		err := ValidateCustomerPayload(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "business_name")

		doc["business_name"] = "Acme Ltd"
		assert.NoError(t, ValidateCustomerPayload(doc))
	})
}

func TestValidatePayoutPayload(t *testing.T) {
	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"wallet_id":        "wal-1",
			"method":           "bank_transfer",
			"from_amount":      "100.00",
			"from_currency_id": "1",
			"to_currency_id":   "2",
			"account_number":   "0123456789",
		}
	}

	t.Run("valid bank transfer passes", func(t *testing.T) {
		assert.NoError(t, ValidatePayoutPayload(valid()))
	})

	t.Run("bank_transfer requires account_number", func(t *testing.T) {
		doc := valid()
		delete(doc, "account_number")
		err := ValidatePayoutPayload(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "account_number")
	})

	t.Run("interac requires its contact fields", func(t *testing.T) {
		doc := valid()
		doc["method"] = "interac"
		delete(doc, "account_number")

		err := ValidatePayoutPayload(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")

		doc["email"] = "jane@example.com"
		doc["interac_first_name"] = "Jane"
		err = ValidatePayoutPayload(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "interac_last_name")

		doc["interac_last_name"] = "Doe"
		assert.NoError(t, ValidatePayoutPayload(doc))
	})

	t.Run("zero amount is rejected", func(t *testing.T) {
		doc := valid()
		doc["from_amount"] = "0"
		assert.Error(t, ValidatePayoutPayload(doc))
	})

	t.Run("unknown method is rejected", func(t *testing.T) {
		doc := valid()
		doc["method"] = "carrier_pigeon"
		assert.Error(t, ValidatePayoutPayload(doc))
	})
}

func TestValidateCollectionPayload(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, ValidateCollectionPayload(map[string]interface{}{
			"method":    "card",
			"amount":    "250.00",
			"wallet_id": "wal-1",
		}))
	})

	t.Run("missing wallet_id fails", func(t *testing.T) {
		err := ValidateCollectionPayload(map[string]interface{}{
			"method": "card",
			"amount": "250.00",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wallet_id")
	})

	t.Run("zero amount fails", func(t *testing.T) {
		assert.Error(t, ValidateCollectionPayload(map[string]interface{}{
			"method":    "card",
			"amount":    float64(0),
			"wallet_id": "wal-1",
		}))
	})
}

func TestErrorShapes(t *testing.T) {
	t.Run("APIError renders status and code", func(t *testing.T) {
		err := &APIError{Message: "not found", StatusCode: 404, Code: CodeHTTPError}
		assert.Equal(t, "blaaiz: 404 HTTP_ERROR: not found", err.Error())
		assert.False(t, err.IsTransport())
	})

	t.Run("transport sentinel", func(t *testing.T) {
		err := &APIError{Message: "connection refused", Code: CodeRequestError}
		assert.True(t, err.IsTransport())
		assert.Equal(t, "blaaiz: connection refused", err.Error())
	})

	t.Run("UploadError unwraps its cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &UploadError{Step: UploadStepTransfer, Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "transfer")
	})

	t.Run("WorkflowError unwraps its cause", func(t *testing.T) {
		cause := &APIError{Message: "bad request", StatusCode: 400, Code: CodeHTTPError}
		err := &WorkflowError{Step: StepPayoutInitiation, Partial: &CompletePayoutResult{CustomerID: "cus-1"}, Err: cause}

		var apiErr *APIError
		assert.True(t, errors.As(err, &apiErr))
		assert.Contains(t, err.Error(), "payout-initiation")
	})
}
