package utils

import (
	"errors"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/exceptions"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	decodeBody := func(t *testing.T, raw []byte) map[string]interface{} {
		t.Helper()
		body := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(raw, &body))
		return body
	}

	t.Run("Serializes the dev message outside production", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrGatewayParse(errors.New("unexpected token")))

		assert.Equal(t, constvars.StatusBadGateway, rr.Code)
		body := decodeBody(t, rr.Body.Bytes())
		assert.Equal(t, exceptions.CodeGatewayParse, body["error_code"])
		assert.Equal(t, constvars.ErrClientPaymentUnavailable, body["message"])
		require.Contains(t, body, "dev_message")
		assert.Contains(t, body["dev_message"], "malformed response body")
	})

	t.Run("Omits the dev message in production", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")

		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrGatewayParse(errors.New("unexpected token")))

		body := decodeBody(t, rr.Body.Bytes())
		assert.NotContains(t, body, "dev_message")
	})

	t.Run("Wraps unclassified errors as internal failures", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, errors.New("boom"))

		assert.Equal(t, constvars.StatusInternalServerError, rr.Code)
		body := decodeBody(t, rr.Body.Bytes())
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body["message"])
		assert.NotContains(t, body, "error_code")
	})
}
