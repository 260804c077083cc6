package orderform

import (
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/responses"
	"mytelpay-order-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// FormData holds the form fields exactly as typed. Amount and ExtraData stay text until
// submission.
type FormData struct {
	MerchantOrderID string `json:"merchantOrderId" validate:"required"`
	Amount          string `json:"amount" validate:"required"`
	ServiceCode     string `json:"serviceCode" validate:"required"`
	IpnUrl          string `json:"ipnUrl" validate:"required"`
	UICallbackUrl   string `json:"uiCallbackUrl" validate:"required"`
	ExtraData       string `json:"extraData" validate:"required"`
}

type defaultExtraData struct {
	Content  string `json:"content"`
	Location string `json:"location"`
	Device   string `json:"device"`
}

func NewFormData(now time.Time) FormData {
	extraData, _ := json.MarshalIndent(defaultExtraData{
		Content:  constvars.OrderFormDefaultExtraDataContent,
		Location: constvars.OrderFormDefaultExtraDataLocation,
		Device:   constvars.OrderFormDefaultExtraDataDevice,
	}, "", "  ")

	return FormData{
		MerchantOrderID: utils.GenerateMerchantOrderID(now),
		Amount:          constvars.OrderFormDefaultAmount,
		ServiceCode:     constvars.OrderFormDefaultServiceCode,
		IpnUrl:          constvars.OrderFormDefaultIpnUrl,
		UICallbackUrl:   constvars.OrderFormDefaultUICallbackUrl,
		ExtraData:       string(extraData),
	}
}

// WithField returns a copy of f with the named field set. Unknown names leave f unchanged.
func (f FormData) WithField(name, value string) FormData {
	switch name {
	case constvars.OrderFormFieldMerchantOrderID:
		f.MerchantOrderID = value
	case constvars.OrderFormFieldAmount:
		f.Amount = value
	case constvars.OrderFormFieldServiceCode:
		f.ServiceCode = value
	case constvars.OrderFormFieldIpnUrl:
		f.IpnUrl = value
	case constvars.OrderFormFieldUICallbackUrl:
		f.UICallbackUrl = value
	case constvars.OrderFormFieldExtraData:
		f.ExtraData = value
	}
	return f
}

// Redirect is a deeplink navigation that should happen Delay after the result is shown.
type Redirect struct {
	URL   string
	Delay time.Duration
}

type State struct {
	Form    FormData
	Loading bool
	// Result is the relay answer pretty printed, empty until a submission succeeds.
	Result   string
	Error    string
	Deeplink string
	Redirect *Redirect
}

func NewState(form FormData) State {
	return State{Form: form}
}

type Event interface {
	isEvent()
}

type FieldChanged struct {
	Name  string
	Value string
}

type SubmitStarted struct{}

type SubmitSucceeded struct {
	Body []byte
}

type SubmitFailed struct {
	Message string
}

func (FieldChanged) isEvent()    {}
func (SubmitStarted) isEvent()   {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}

// Reduce is the only place State changes.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case FieldChanged:
		state.Form = state.Form.WithField(e.Name, e.Value)
	case SubmitStarted:
		state.Loading = true
		state.Result = ""
		state.Error = ""
		state.Deeplink = ""
		state.Redirect = nil
	case SubmitSucceeded:
		state.Loading = false
		state.Error = ""
		state.Result = utils.PrettyJSON(e.Body)
		state.Deeplink, state.Redirect = deeplinkOf(e.Body)
	case SubmitFailed:
		state.Loading = false
		state.Result = ""
		state.Deeplink = ""
		state.Redirect = nil
		state.Error = e.Message
	}
	return state
}

// deeplinkOf looks at the result field of a gateway answer. Any mytelpay link is offered
// to the user; only mytelpayv2:// links are opened automatically.
func deeplinkOf(body []byte) (string, *Redirect) {
	var answer responses.GatewayOrderResult
	if err := json.Unmarshal(body, &answer); err != nil {
		return "", nil
	}
	link, ok := answer.Result.(string)
	if !ok || !strings.HasPrefix(link, constvars.MytelPayDeeplinkLinkPrefix) {
		return "", nil
	}
	if !strings.HasPrefix(link, constvars.MytelPayDeeplinkScheme) {
		return link, nil
	}
	return link, &Redirect{URL: link, Delay: constvars.OrderFormRedirectDelay}
}
