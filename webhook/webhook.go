// Package webhook authenticates inbound Blaaiz webhook notifications.
//
// Verification computes an HMAC-SHA256 over the exact raw payload bytes as
// received; re-serializing a parsed payload can shuffle keys or whitespace
// and break byte-for-byte equality, so always pass the untouched request
// body.
//
// The package makes no freshness guarantee: replaying a captured request
// within the secret's lifetime still verifies. When the payload carries a
// timestamp field, validating it is the caller's extension point.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Blaaiz/blaaiz-go/types"
)

// ErrInvalidSignature is the single failure value for every verification
// problem: missing input, malformed signature, or mismatch. Keeping the
// cause opaque denies an attacker a format-vs-mismatch oracle.
var ErrInvalidSignature = errors.New("blaaiz: invalid webhook signature")

// Sign computes the hex HMAC-SHA256 of payload under secret. It is the
// counterpart of Verify, useful for tests and for signing replayed events.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature authenticates payload under secret. The
// signature may carry a "sha256=" scheme prefix and hex digits of either
// case. Comparison is constant-time. Unusable input (empty payload,
// signature or secret) returns ErrInvalidSignature; a well-formed mismatch
// returns (false, nil).
func Verify(payload []byte, signature, secret string) (bool, error) {
	if len(payload) == 0 || signature == "" || secret == "" {
		return false, ErrInvalidSignature
	}

	cleaned := strings.TrimPrefix(signature, "sha256=")
	provided, err := hex.DecodeString(cleaned)
	if err != nil {
		// Malformed hex can never match; fold it into the mismatch path.
		return false, nil
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hmac.Equal(provided, mac.Sum(nil)), nil
}

// ConstructEvent verifies payload and, only then, parses it into a
// WebhookEvent. There is no path to a verified event without a passing
// signature check: any verification failure returns ErrInvalidSignature,
// and a JSON parse failure (possible with a valid signature over a
// non-JSON body) surfaces as its own error after verification.
func ConstructEvent(payload []byte, signature, secret string) (*types.WebhookEvent, error) {
	ok, err := Verify(payload, signature, secret)
	if err != nil || !ok {
		return nil, ErrInvalidSignature
	}

	var data map[string]interface{}
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, errors.New("blaaiz: invalid webhook payload: unable to parse JSON")
	}

	return &types.WebhookEvent{
		Data:       data,
		Verified:   true,
		VerifiedAt: time.Now().UTC(),
	}, nil
}
