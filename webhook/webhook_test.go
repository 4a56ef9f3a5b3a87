package webhook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	payload := []byte(`{"event":"payment.completed","transaction_id":"tx-123"}`)
	secret := "whsec_test_secret"

	t.Run("round trip verifies", func(t *testing.T) {
		ok, err := Verify(payload, Sign(payload, secret), secret)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		ok, err := Verify(payload, Sign(payload, secret), "whsec_other_secret")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("single byte tamper fails", func(t *testing.T) {
		signature := Sign(payload, secret)
		for i := range payload {
			tampered := make([]byte, len(payload))
			copy(tampered, payload)
			tampered[i] ^= 0x01

			ok, err := Verify(tampered, signature, secret)
			assert.NoError(t, err)
			assert.False(t, ok, "tampering byte %d should invalidate the signature", i)
		}
	})

	t.Run("scheme prefix is stripped", func(t *testing.T) {
		ok, err := Verify(payload, "sha256="+Sign(payload, secret), secret)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("hex digits are case insensitive", func(t *testing.T) {
		upper := ""
		for _, r := range Sign(payload, secret) {
			if r >= 'a' && r <= 'f' {
				r = r - 'a' + 'A'
			}
			upper += string(r)
		}
		ok, err := Verify(payload, upper, secret)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("empty inputs are rejected uniformly", func(t *testing.T) {
		cases := []struct {
			name      string
			payload   []byte
			signature string
			secret    string
		}{
			{"empty payload", nil, Sign(payload, secret), secret},
			{"empty signature", payload, "", secret},
			{"empty secret", payload, Sign(payload, secret), ""},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ok, err := Verify(tc.payload, tc.signature, tc.secret)
				assert.False(t, ok)
				assert.ErrorIs(t, err, ErrInvalidSignature)
			})
		}
	})

	t.Run("malformed signature is a mismatch, not a distinct error", func(t *testing.T) {
		ok, err := Verify(payload, "not-hex-at-all", secret)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("truncated signature fails", func(t *testing.T) {
		ok, err := Verify(payload, Sign(payload, secret)[:16], secret)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestConstructEvent(t *testing.T) {
	payload := []byte(`{"event":"payout.completed","data":{"id":"po-9"}}`)
	secret := "whsec_test_secret"

	t.Run("valid signature yields a verified event", func(t *testing.T) {
		before := time.Now().UTC()
		event, err := ConstructEvent(payload, Sign(payload, secret), secret)
		require.NoError(t, err)

		assert.True(t, event.Verified)
		assert.Equal(t, "payout.completed", event.Data["event"])
		assert.False(t, event.VerifiedAt.Before(before))
		assert.False(t, event.VerifiedAt.After(time.Now().UTC()))
	})

	t.Run("invalid signature never yields an event", func(t *testing.T) {
		event, err := ConstructEvent(payload, Sign(payload, "wrong"), secret)
		assert.Nil(t, event)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("missing signature never yields an event", func(t *testing.T) {
		event, err := ConstructEvent(payload, "", secret)
		assert.Nil(t, event)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("valid signature over non-JSON surfaces a parse error", func(t *testing.T) {
		raw := []byte("definitely not json")
		event, err := ConstructEvent(raw, Sign(raw, secret), secret)
		assert.Nil(t, event)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidSignature)
		assert.Contains(t, err.Error(), "unable to parse JSON")
	})
}
