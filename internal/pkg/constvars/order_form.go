package constvars

import "time"

const (
	OrderFormMerchantOrderIDPrefix = "ORD_"
	OrderFormDefaultAmount         = "50000"
	OrderFormDefaultServiceCode    = "SHOPEE_MALL"
	OrderFormDefaultIpnUrl         = "https://merchant.com/callback"
	OrderFormDefaultUICallbackUrl  = "https://merchant.com/result"

	OrderFormDefaultExtraDataContent  = "Thanh toan don hang 123"
	OrderFormDefaultExtraDataLocation = "HCM"
	OrderFormDefaultExtraDataDevice   = "ANDROID"
)

const OrderFormRedirectDelay = 1500 * time.Millisecond

const OrderRelayPath = "/api/order"

const (
	OrderFormFieldMerchantOrderID = "merchantOrderId"
	OrderFormFieldAmount          = "amount"
	OrderFormFieldServiceCode     = "serviceCode"
	OrderFormFieldIpnUrl          = "ipnUrl"
	OrderFormFieldUICallbackUrl   = "uiCallbackUrl"
	OrderFormFieldExtraData       = "extraData"
)

const (
	OrderFormErrInvalidExtraData   = "Invalid JSON in Extra Data fields"
	OrderFormErrInvalidAmount      = "Amount must be an integer"
	OrderFormErrFailedCreateOrder  = "Failed to create order"
	OrderFormErrRelayUnreachable   = "Failed to reach the order service"
	OrderFormErrRelayInvalidAnswer = "Order service returned an unreadable response"
)
