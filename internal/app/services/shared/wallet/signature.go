package wallet

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// SignatureEngine computes the HMAC-SHA256 signature the wallet provider
// expects on both outbound requests and inbound notifications. The signed
// string is the parameter set serialized as key=value pairs joined by '&',
// keys sorted in ASCII order, values raw (no URL-encoding).
type SignatureEngine struct{}

func NewSignatureEngine() *SignatureEngine {
	return &SignatureEngine{}
}

// Sign returns the lowercase hex digest over the canonical serialization of
// params. Pure: the result depends only on the key/value set and the secret,
// never on map insertion order.
func (e *SignatureEngine) Sign(params map[string]string, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(canonicalString(params)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature and compares it in constant time.
func (e *SignatureEngine) Verify(params map[string]string, secret, signature string) bool {
	expected := e.Sign(params, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func canonicalString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, key := range keys {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(key)
		builder.WriteByte('=')
		builder.WriteString(params[key])
	}
	return builder.String()
}
