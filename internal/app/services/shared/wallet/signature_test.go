package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalString(t *testing.T) {
	t.Run("Sorts keys in ASCII order", func(t *testing.T) {
		params := map[string]string{
			"requestId":   "REQ1",
			"amount":      "50000",
			"orderId":     "ORDER1",
			"accessKey":   "AK",
			"partnerCode": "PARTNER",
		}
		expected := "accessKey=AK&amount=50000&orderId=ORDER1&partnerCode=PARTNER&requestId=REQ1"
		assert.Equal(t, expected, canonicalString(params))
	})

	t.Run("Empty values stay in the serialized string", func(t *testing.T) {
		params := map[string]string{
			"extraData": "",
			"amount":    "1000",
		}
		assert.Equal(t, "amount=1000&extraData=", canonicalString(params))
	})

	t.Run("Values are not URL-encoded", func(t *testing.T) {
		params := map[string]string{
			"orderInfo":   "Consultation & follow-up",
			"redirectUrl": "https://example.com/return?x=1",
		}
		expected := "orderInfo=Consultation & follow-up&redirectUrl=https://example.com/return?x=1"
		assert.Equal(t, expected, canonicalString(params))
	})
}

func TestSignatureEngineSign(t *testing.T) {
	engine := NewSignatureEngine()

	t.Run("Independent of map insertion order", func(t *testing.T) {
		first := map[string]string{}
		first["amount"] = "50000"
		first["orderId"] = "ORDER1"
		first["accessKey"] = "AK"

		second := map[string]string{}
		second["accessKey"] = "AK"
		second["orderId"] = "ORDER1"
		second["amount"] = "50000"

		assert.Equal(t, engine.Sign(first, "secret"), engine.Sign(second, "secret"))
	})

	t.Run("Lowercase hex digest of fixed length", func(t *testing.T) {
		signature := engine.Sign(map[string]string{"orderId": "ORDER1"}, "secret")
		assert.Len(t, signature, 64)
		assert.Regexp(t, "^[0-9a-f]{64}$", signature)
	})

	t.Run("Different secrets produce different signatures", func(t *testing.T) {
		params := map[string]string{"orderId": "ORDER1", "amount": "50000"}
		assert.NotEqual(t, engine.Sign(params, "secret-a"), engine.Sign(params, "secret-b"))
	})

	t.Run("Changing any value changes the signature", func(t *testing.T) {
		params := map[string]string{"orderId": "ORDER1", "amount": "50000"}
		tampered := map[string]string{"orderId": "ORDER1", "amount": "50001"}
		assert.NotEqual(t, engine.Sign(params, "secret"), engine.Sign(tampered, "secret"))
	})
}

func TestSignatureEngineVerify(t *testing.T) {
	engine := NewSignatureEngine()
	params := map[string]string{
		"orderId":    "ORDER1",
		"amount":     "50000",
		"resultCode": "0",
	}
	signature := engine.Sign(params, "secret")

	t.Run("Accepts the matching signature", func(t *testing.T) {
		assert.True(t, engine.Verify(params, "secret", signature))
	})

	t.Run("Rejects a tampered value", func(t *testing.T) {
		tampered := map[string]string{
			"orderId":    "ORDER1",
			"amount":     "99999",
			"resultCode": "0",
		}
		assert.False(t, engine.Verify(tampered, "secret", signature))
	})

	t.Run("Rejects a truncated signature", func(t *testing.T) {
		assert.False(t, engine.Verify(params, "secret", signature[:32]))
	})

	t.Run("Rejects the wrong secret", func(t *testing.T) {
		assert.False(t, engine.Verify(params, "other-secret", signature))
	})
}
