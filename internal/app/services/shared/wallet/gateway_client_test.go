package wallet

import (
	"context"
	"encoding/json"
	"medilink-service/internal/app/config"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func clientWalletConfig(endpoint string) config.Wallet {
	cfg := testWalletConfig()
	cfg.Endpoint = endpoint
	cfg.CreatePath = "/v2/gateway/api/create"
	cfg.QueryPath = "/v2/gateway/api/query"
	cfg.RequestTimeoutInSec = 5
	cfg.RequestsPerSecond = 100
	return cfg
}

func newTestClient(endpoint string) *walletGatewayClient {
	cfg := clientWalletConfig(endpoint)
	builder := NewPaymentRequestBuilder(cfg, NewSignatureEngine())
	return NewWalletGatewayClient(cfg, builder, zap.NewNop()).(*walletGatewayClient)
}

func signedCreationRequest(t *testing.T, cfg config.Wallet) *requests.WalletCreationRequest {
	t.Helper()
	builder := NewPaymentRequestBuilder(cfg, NewSignatureEngine())
	signed, err := builder.Build(validCreatePaymentRequest())
	require.NoError(t, err)
	return signed
}

func TestWalletGatewayClientCreatePayment(t *testing.T) {
	t.Run("Returns the parsed response on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v2/gateway/api/create", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body := new(requests.WalletCreationRequest)
			require.NoError(t, json.NewDecoder(r.Body).Decode(body))
			assert.NotEmpty(t, body.Signature)

			json.NewEncoder(w).Encode(responses.WalletCreationResponse{
				OrderID:    body.OrderID,
				RequestID:  body.RequestID,
				Amount:     body.Amount,
				ResultCode: 0,
				Message:    "Successful.",
				PayURL:     "https://wallet.example.com/pay/abc",
				Deeplink:   "wallet://pay/abc",
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		signed := signedCreationRequest(t, client.walletConfig)

		response, err := client.CreatePayment(context.Background(), signed)
		require.NoError(t, err)
		assert.Equal(t, "https://wallet.example.com/pay/abc", response.PayURL)
		assert.Equal(t, "wallet://pay/abc", response.Deeplink)
		assert.Equal(t, 0, response.ResultCode)
	})

	t.Run("Returns rejection error with the parsed response attached", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(responses.WalletCreationResponse{
				ResultCode: 41,
				Message:    "Duplicate orderId",
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		signed := signedCreationRequest(t, client.walletConfig)

		response, err := client.CreatePayment(context.Background(), signed)
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeGatewayRejected))
		require.NotNil(t, response)
		assert.Equal(t, 41, response.ResultCode)
		assert.Equal(t, "Duplicate orderId", response.Message)
	})

	t.Run("Classifies a malformed body as a parse failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>gateway maintenance</html>"))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		signed := signedCreationRequest(t, client.walletConfig)

		_, err := client.CreatePayment(context.Background(), signed)
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeGatewayParse))
	})

	t.Run("Classifies a refused connection as a transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		endpoint := server.URL
		server.Close()

		client := newTestClient(endpoint)
		signed := signedCreationRequest(t, client.walletConfig)

		_, err := client.CreatePayment(context.Background(), signed)
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeGatewayTransport))
	})
}

func TestWalletGatewayClientQueryStatus(t *testing.T) {
	t.Run("Returns the gateway result as-is for the caller to interpret", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/gateway/api/query", r.URL.Path)

			body := new(requests.WalletStatusQueryRequest)
			require.NoError(t, json.NewDecoder(r.Body).Decode(body))
			assert.Equal(t, "ORDER-001", body.OrderID)
			assert.NotEmpty(t, body.Signature)

			json.NewEncoder(w).Encode(responses.WalletStatusResponse{
				OrderID:    body.OrderID,
				ResultCode: 1000,
				Message:    "Waiting for user confirmation",
			})
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		response, err := client.QueryStatus(context.Background(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, 1000, response.ResultCode)
	})
}
