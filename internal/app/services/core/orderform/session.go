package orderform

import (
	"context"
	"errors"
	"mytelpay-order-service/internal/app/contracts"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/responses"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Session is one user's form. It owns the pending redirect, if any, and cancels it on Close.
type Session struct {
	RelayClient contracts.OrderRelayClient
	Scheduler   Scheduler
	Log         *zap.Logger

	mu     sync.Mutex
	state  State
	timer  Timer
	closed bool
}

func NewSession(form FormData, relayClient contracts.OrderRelayClient, scheduler Scheduler, logger *zap.Logger) *Session {
	return &Session{
		RelayClient: relayClient,
		Scheduler:   scheduler,
		Log:         logger,
		state:       NewState(form),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Dispatch(event Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, event)
	return s.state
}

// Submit sends the current form to the relay. A submission already in flight makes it a no-op.
func (s *Session) Submit(ctx context.Context) State {
	requestID := utils.GetRequestID(ctx)

	s.mu.Lock()
	if s.closed || s.state.Loading {
		state := s.state
		s.mu.Unlock()
		return state
	}
	s.stopTimer()
	s.state = Reduce(s.state, SubmitStarted{})
	form := s.state.Form
	s.mu.Unlock()

	s.Log.Info("Session.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMerchantOrderKey, form.MerchantOrderID),
	)

	event := s.send(ctx, form)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, event)
	if failed, ok := event.(SubmitFailed); ok {
		s.Log.Info("Session.Submit failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, failed.Message),
		)
		return s.state
	}

	if redirect := s.state.Redirect; redirect != nil && !s.closed {
		s.timer = s.Scheduler.ScheduleRedirect(redirect.URL, redirect.Delay)
		s.Log.Info("Session.Submit scheduled redirect",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDeeplinkKey, redirect.URL),
			zap.Duration(constvars.LoggingDurationKey, redirect.Delay),
		)
	}

	s.Log.Info("Session.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return s.state
}

// Close cancels a redirect that has not fired yet. The session accepts no submissions afterwards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.stopTimer()
}

func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) send(ctx context.Context, form FormData) Event {
	request, err := BuildOrderRequest(form)
	if err != nil {
		return SubmitFailed{Message: userMessage(err)}
	}

	response, err := s.RelayClient.CreateOrder(ctx, request)
	if err != nil {
		s.Log.Error("Session.Submit error calling relay",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return SubmitFailed{Message: constvars.OrderFormErrRelayUnreachable}
	}

	if !utils.IsValidJSON(response.Body) {
		return SubmitFailed{Message: constvars.OrderFormErrRelayInvalidAnswer}
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return SubmitFailed{Message: errorMessageOf(response.Body)}
	}

	return SubmitSucceeded{Body: response.Body}
}

// userMessage is what the form shows for a failure found before any call is made.
func userMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}

func errorMessageOf(body []byte) string {
	var answer responses.GatewayOrderResult
	if err := json.Unmarshal(body, &answer); err == nil {
		if message, ok := answer.Error.(string); ok && message != "" {
			return message
		}
	}
	return constvars.OrderFormErrFailedCreateOrder
}
