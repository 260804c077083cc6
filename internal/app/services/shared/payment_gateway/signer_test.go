package payment_gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticGatewayConfig() config.AppPaymentGateway {
	return config.AppPaymentGateway{
		Signer:     constvars.PaymentGatewaySignerStatic,
		MerchantID: constvars.PaymentGatewayDefaultMerchantID,
		Signature:  constvars.PaymentGatewayDefaultSignature,
		Nonce:      constvars.PaymentGatewayDefaultNonce,
		Timestamp:  constvars.PaymentGatewayDefaultTimestamp,
		ApiKey:     constvars.PaymentGatewayDefaultAPIKey,
	}
}

func TestStaticSigner_IgnoresPayload(t *testing.T) {
	signer := NewStaticSigner(staticGatewayConfig())

	first, err := signer.Sign(context.Background(), []byte(`{"amount":1}`))
	require.NoError(t, err)
	second, err := signer.Sign(context.Background(), []byte(`{"amount":2}`))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, constvars.PaymentGatewayDefaultMerchantID, first.MerchantID)
	assert.Equal(t, constvars.PaymentGatewayDefaultSignature, first.Signature)
	assert.Equal(t, constvars.PaymentGatewayDefaultNonce, first.Nonce)
	assert.Equal(t, constvars.PaymentGatewayDefaultTimestamp, first.Timestamp)
	assert.Equal(t, "", first.APIKey)
	assert.Equal(t, constvars.PaymentGatewaySignerStatic, signer.Name())
}

func TestStaticSigner_ReturnsCopy(t *testing.T) {
	signer := NewStaticSigner(staticGatewayConfig())

	headers, err := signer.Sign(context.Background(), nil)
	require.NoError(t, err)
	headers.Signature = "tampered"

	again, err := signer.Sign(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, constvars.PaymentGatewayDefaultSignature, again.Signature)
}

func TestHMACSigner_Sign(t *testing.T) {
	cfg := config.AppPaymentGateway{MerchantID: "MERCHANT_001", ApiKey: "key", SecretKey: "secret"}
	fixedNow := time.UnixMilli(1769064188023)
	signer := NewHMACSigner(cfg, func() time.Time { return fixedNow }, func() string { return "nonce-1" })
	payload := []byte(`{"amount":50000}`)

	headers, err := signer.Sign(context.Background(), payload)
	require.NoError(t, err)

	mac := hmac.New(sha256.New, []byte("secret"))
	mac.Write([]byte("MERCHANT_001" + "nonce-1" + "1769064188023"))
	mac.Write(payload)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.Equal(t, expected, headers.Signature)
	assert.Equal(t, "nonce-1", headers.Nonce)
	assert.Equal(t, "1769064188023", headers.Timestamp)
	assert.Equal(t, "MERCHANT_001", headers.MerchantID)
	assert.Equal(t, "key", headers.APIKey)
	assert.Equal(t, constvars.PaymentGatewaySignerHMAC, signer.Name())
}

func TestHMACSigner_SignatureDependsOnPayload(t *testing.T) {
	cfg := config.AppPaymentGateway{MerchantID: "MERCHANT_001", SecretKey: "secret"}
	now := func() time.Time { return time.UnixMilli(1) }
	nonce := func() string { return "n" }
	signer := NewHMACSigner(cfg, now, nonce)

	first, err := signer.Sign(context.Background(), []byte(`{"amount":1}`))
	require.NoError(t, err)
	second, err := signer.Sign(context.Background(), []byte(`{"amount":2}`))
	require.NoError(t, err)

	assert.NotEqual(t, first.Signature, second.Signature)
}

func TestNewSigner(t *testing.T) {
	tests := []struct {
		name         string
		signer       string
		secretKey    string
		expectedName string
		expectErr    bool
	}{
		{name: "default to static", signer: "", expectedName: constvars.PaymentGatewaySignerStatic},
		{name: "static", signer: constvars.PaymentGatewaySignerStatic, expectedName: constvars.PaymentGatewaySignerStatic},
		{name: "hmac", signer: constvars.PaymentGatewaySignerHMAC, secretKey: "secret", expectedName: constvars.PaymentGatewaySignerHMAC},
		{name: "hmac without secret", signer: constvars.PaymentGatewaySignerHMAC, expectErr: true},
		{name: "unknown", signer: "rsa", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.InternalConfig{PaymentGateway: staticGatewayConfig()}
			cfg.PaymentGateway.Signer = tt.signer
			cfg.PaymentGateway.SecretKey = tt.secretKey

			signer, err := NewSigner(cfg)
			if tt.expectErr {
				require.Error(t, err)
				var customErr *exceptions.CustomError
				assert.True(t, errors.As(err, &customErr))
				assert.Nil(t, signer)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, signer.Name())
		})
	}
}
