package payment_gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/app/contracts"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/requests"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
	"strconv"
	"time"
)

var ErrMissingSecretKey = errors.New("hmac signer requires a secret key")

// NewSigner returns the signer configured by PaymentGateway.Signer.
func NewSigner(internalConfig *config.InternalConfig) (contracts.PaymentGatewaySigner, error) {
	cfg := internalConfig.PaymentGateway
	switch cfg.Signer {
	case "", constvars.PaymentGatewaySignerStatic:
		return NewStaticSigner(cfg), nil
	case constvars.PaymentGatewaySignerHMAC:
		if cfg.SecretKey == "" {
			return nil, exceptions.ErrSignGatewayRequest(ErrMissingSecretKey)
		}
		return NewHMACSigner(cfg, time.Now, utils.GenerateNonce), nil
	default:
		return nil, exceptions.ErrUnsupportedSigner(cfg.Signer)
	}
}

type staticSigner struct {
	headers requests.AuthHeaders
}

// NewStaticSigner always answers with the configured credential constants, whatever the payload.
func NewStaticSigner(cfg config.AppPaymentGateway) contracts.PaymentGatewaySigner {
	return &staticSigner{
		headers: requests.AuthHeaders{
			MerchantID: cfg.MerchantID,
			Signature:  cfg.Signature,
			Nonce:      cfg.Nonce,
			Timestamp:  cfg.Timestamp,
			APIKey:     cfg.ApiKey,
		},
	}
}

func (s *staticSigner) Name() string {
	return constvars.PaymentGatewaySignerStatic
}

func (s *staticSigner) Sign(ctx context.Context, payload []byte) (*requests.AuthHeaders, error) {
	headers := s.headers
	return &headers, nil
}

type hmacSigner struct {
	merchantID string
	apiKey     string
	secretKey  []byte
	now        func() time.Time
	nonce      func() string
}

// NewHMACSigner signs merchantID + nonce + timestamp + payload with HMAC-SHA256 and
// base64-encodes the digest. The timestamp is in unix milliseconds.
func NewHMACSigner(cfg config.AppPaymentGateway, now func() time.Time, nonce func() string) contracts.PaymentGatewaySigner {
	return &hmacSigner{
		merchantID: cfg.MerchantID,
		apiKey:     cfg.ApiKey,
		secretKey:  []byte(cfg.SecretKey),
		now:        now,
		nonce:      nonce,
	}
}

func (s *hmacSigner) Name() string {
	return constvars.PaymentGatewaySignerHMAC
}

func (s *hmacSigner) Sign(ctx context.Context, payload []byte) (*requests.AuthHeaders, error) {
	nonce := s.nonce()
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 10)

	mac := hmac.New(sha256.New, s.secretKey)
	mac.Write([]byte(s.merchantID))
	mac.Write([]byte(nonce))
	mac.Write([]byte(timestamp))
	mac.Write(payload)

	return &requests.AuthHeaders{
		MerchantID: s.merchantID,
		Signature:  base64.StdEncoding.EncodeToString(mac.Sum(nil)),
		Nonce:      nonce,
		Timestamp:  timestamp,
		APIKey:     s.apiKey,
	}, nil
}
