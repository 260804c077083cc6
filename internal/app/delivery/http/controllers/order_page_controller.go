package controllers

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"math"
	"mytelpay-order-service/internal/app/contracts"
	"mytelpay-order-service/internal/app/services/core/orderform"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:embed templates/order_page.html
var templatesFS embed.FS

var orderPageTemplate = template.Must(template.ParseFS(templatesFS, "templates/order_page.html"))

var orderFormFields = []string{
	constvars.OrderFormFieldMerchantOrderID,
	constvars.OrderFormFieldAmount,
	constvars.OrderFormFieldServiceCode,
	constvars.OrderFormFieldIpnUrl,
	constvars.OrderFormFieldUICallbackUrl,
	constvars.OrderFormFieldExtraData,
}

type OrderPageController struct {
	Log         *zap.Logger
	RelayClient contracts.OrderRelayClient
	Now         func() time.Time
}

var (
	orderPageControllerInstance *OrderPageController
	onceOrderPageController     sync.Once
)

func NewOrderPageController(logger *zap.Logger, relayClient contracts.OrderRelayClient) *OrderPageController {
	onceOrderPageController.Do(func() {
		instance := &OrderPageController{
			Log:         logger,
			RelayClient: relayClient,
			Now:         time.Now,
		}
		orderPageControllerInstance = instance
	})
	return orderPageControllerInstance
}

type orderPageView struct {
	Form     orderform.FormData
	Loading  bool
	Result   string
	Error    string
	Deeplink template.URL
	Redirect *orderPageRedirect
}

type orderPageRedirect struct {
	URL           string
	DelayMillis   int64
	RefreshTarget string
}

// Show renders an empty form with a fresh merchant order id.
func (ctrl *OrderPageController) Show(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("OrderPageController.Show called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	state := orderform.NewState(orderform.NewFormData(ctrl.Now()))
	ctrl.render(w, requestID, state, nil)
}

// Submit replays the posted fields onto a new form session, submits it and renders the
// outcome. A redirect scheduled by the session is handed to the browser.
func (ctrl *OrderPageController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("OrderPageController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	scheduler := orderform.NewPageScheduler()
	session := orderform.NewSession(orderform.NewFormData(ctrl.Now()), ctrl.RelayClient, scheduler, ctrl.Log)
	defer session.Close()

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Error("OrderPageController.Submit error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		state := session.Dispatch(orderform.SubmitFailed{Message: constvars.ErrClientCannotProcessRequest})
		ctrl.render(w, requestID, state, nil)
		return
	}

	for _, field := range orderFormFields {
		if _, ok := r.PostForm[field]; ok {
			session.Dispatch(orderform.FieldChanged{Name: field, Value: r.PostForm.Get(field)})
		}
	}

	ctx := context.WithValue(r.Context(), constvars.CONTEXT_CLIENT_IP_KEY, clientIP(r))
	state := session.Submit(ctx)

	ctrl.Log.Info("OrderPageController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, state.Error == ""),
	)
	ctrl.render(w, requestID, state, scheduler)
}

func (ctrl *OrderPageController) render(w http.ResponseWriter, requestID string, state orderform.State, scheduler *orderform.PageScheduler) {
	view := orderPageView{
		Form:    state.Form,
		Loading: state.Loading,
		Result:  state.Result,
		Error:   state.Error,
		// Deeplink only ever holds a mytelpay link taken from the gateway answer.
		Deeplink: template.URL(state.Deeplink),
	}
	if scheduler != nil {
		if url, delay, ok := scheduler.Pending(); ok {
			view.Redirect = newOrderPageRedirect(url, delay)
		}
	}

	var page bytes.Buffer
	if err := orderPageTemplate.Execute(&page, view); err != nil {
		ctrl.Log.Error("OrderPageController.render error executing template",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRenderTemplate(err), false)
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write(page.Bytes())
}

// The script timer carries the exact delay. Refresh directives only honour whole
// seconds, so the fallback rounds up.
func newOrderPageRedirect(url string, delay time.Duration) *orderPageRedirect {
	seconds := int64(math.Ceil(delay.Seconds()))
	return &orderPageRedirect{
		URL:           url,
		DelayMillis:   delay.Milliseconds(),
		RefreshTarget: strconv.FormatInt(seconds, 10) + ";url=" + url,
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
