package payment_gateway

import (
	"context"
	"errors"
	"io"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/requests"
	"mytelpay-order-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(baseUrl string, timeoutInSecond int) *mytelPayService {
	cfg := &config.InternalConfig{
		PaymentGateway: config.AppPaymentGateway{
			BaseUrl:                baseUrl,
			RequestTimeoutInSecond: timeoutInSecond,
		},
	}
	return NewMytelPayService(cfg, zap.NewNop()).(*mytelPayService)
}

func TestMytelPayService_CreateOrder_ForwardsBytesAndHeaders(t *testing.T) {
	payload := []byte(`{ "amount" : 50000,"merchantOrderId":"ORD_1" }`)
	var gotBody []byte
	var gotHeaders http.Header
	var gotPath, gotMethod string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotHeaders = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"result":"mytelpayv2://pay?id=123"}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL+"/", 0)
	headers := &requests.AuthHeaders{
		MerchantID: "MERCHANT_001",
		Signature:  "sig",
		Nonce:      "nonce",
		Timestamp:  "123",
		APIKey:     "",
	}

	resp, err := svc.CreateOrder(context.Background(), payload, headers)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, constvars.PaymentGatewayOrdersPath, gotPath)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, constvars.MIMEApplicationJSON, gotHeaders.Get(constvars.HeaderContentType))
	assert.Equal(t, "MERCHANT_001", gotHeaders.Get(constvars.HeaderXMerchantID))
	assert.Equal(t, "sig", gotHeaders.Get(constvars.HeaderXSignature))
	assert.Equal(t, "nonce", gotHeaders.Get(constvars.HeaderXNonce))
	assert.Equal(t, "123", gotHeaders.Get(constvars.HeaderXTimestamp))

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"result":"mytelpayv2://pay?id=123"}`, string(resp.Body))
}

func TestMytelPayService_CreateOrder_PassesErrorStatusThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"insufficient funds"}`))
	}))
	defer server.Close()

	svc := newTestService(server.URL, 0)

	resp, err := svc.CreateOrder(context.Background(), []byte(`{}`), &requests.AuthHeaders{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `{"error":"insufficient funds"}`, string(resp.Body))
}

func TestMytelPayService_CreateOrder_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	svc := newTestService(url, 0)

	resp, err := svc.CreateOrder(context.Background(), []byte(`{}`), &requests.AuthHeaders{})
	require.Error(t, err)
	assert.Nil(t, resp)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
}

func TestMytelPayService_CreateOrder_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	svc := newTestService(server.URL, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := svc.CreateOrder(ctx, []byte(`{}`), &requests.AuthHeaders{})
	require.Error(t, err)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
}
