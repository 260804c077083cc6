package orderform

import (
	"errors"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/requests"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

var (
	ErrInvalidExtraData = errors.New(constvars.OrderFormErrInvalidExtraData)
	ErrInvalidAmount    = errors.New(constvars.OrderFormErrInvalidAmount)
)

// BuildOrderRequest turns the typed form into the relay payload. Fields are copied
// verbatim except amount, which takes the leading integer of the text, and extraData,
// which must be JSON.
func BuildOrderRequest(form FormData) (*requests.OrderRequest, error) {
	if err := utils.ValidateStruct(form); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if !utils.IsValidJSON([]byte(form.ExtraData)) {
		return nil, ErrInvalidExtraData
	}

	amount, err := utils.ParseLeadingInt(form.Amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	return &requests.OrderRequest{
		MerchantOrderID: form.MerchantOrderID,
		Amount:          amount,
		ServiceCode:     form.ServiceCode,
		IpnUrl:          form.IpnUrl,
		UICallbackUrl:   form.UICallbackUrl,
		ExtraData:       json.RawMessage(form.ExtraData),
	}, nil
}
