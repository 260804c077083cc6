package orderform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrderRequest_CopiesFields(t *testing.T) {
	form := NewFormData(time.Unix(1700000000, 0))

	request, err := BuildOrderRequest(form)
	require.NoError(t, err)

	assert.Equal(t, "ORD_1700000000", request.MerchantOrderID)
	assert.Equal(t, int64(50000), request.Amount)
	assert.Equal(t, "SHOPEE_MALL", request.ServiceCode)
	assert.Equal(t, "https://merchant.com/callback", request.IpnUrl)
	assert.Equal(t, "https://merchant.com/result", request.UICallbackUrl)
	assert.JSONEq(t, `{"content":"Thanh toan don hang 123","location":"HCM","device":"ANDROID"}`, string(request.ExtraData))
}

func TestBuildOrderRequest_Amount(t *testing.T) {
	tests := []struct {
		amount   string
		expected int64
	}{
		{"50000", 50000},
		{"  42", 42},
		{"1.9", 1},
		{"100abc", 100},
		{"-5", -5},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			form := NewFormData(time.Now()).WithField("amount", tt.amount)

			request, err := BuildOrderRequest(form)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, request.Amount)
		})
	}
}

func TestBuildOrderRequest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		expected string
	}{
		{"invalid extra data", "extraData", "{invalid", "Invalid JSON in Extra Data fields"},
		{"blank extra data", "extraData", "   ", "Invalid JSON in Extra Data fields"},
		{"amount without digits", "amount", "abc", "Amount must be an integer"},
		{"amount out of range", "amount", "99999999999999999999", "Amount must be an integer"},
		{"missing merchant order id", "merchantOrderId", "", "merchantOrderId is required"},
		{"missing amount", "amount", "", "amount is required"},
		{"missing ipn url", "ipnUrl", "", "ipnUrl is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewFormData(time.Now()).WithField(tt.field, tt.value)

			request, err := BuildOrderRequest(form)
			require.Error(t, err)
			assert.Nil(t, request)
			assert.Equal(t, tt.expected, userMessage(err))
		})
	}
}

func TestBuildOrderRequest_ExtraDataCheckedBeforeAmount(t *testing.T) {
	form := NewFormData(time.Now()).
		WithField("extraData", "{invalid").
		WithField("amount", "abc")

	_, err := BuildOrderRequest(form)
	assert.ErrorIs(t, err, ErrInvalidExtraData)
}
