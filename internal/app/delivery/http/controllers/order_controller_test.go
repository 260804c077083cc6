package controllers

import (
	"context"
	"errors"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/responses"
	"mytelpay-order-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockOrderUsecase struct {
	mock.Mock
}

func (m *MockOrderUsecase) RelayOrder(ctx context.Context, payload []byte) (*responses.RelayResponse, error) {
	args := m.Called(ctx, payload)
	resp, _ := args.Get(0).(*responses.RelayResponse)
	return resp, args.Error(1)
}

func newOrderRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_REQUEST_ID_KEY, "MTP_RELAY_test")
	return req.WithContext(ctx)
}

func newTestOrderController(usecase *MockOrderUsecase, distinct bool) *OrderController {
	return &OrderController{
		Log:          zap.NewNop(),
		OrderUsecase: usecase,
		InternalConfig: &config.InternalConfig{
			App: config.App{RelayDistinctErrorStatus: distinct},
		},
	}
}

func TestOrderController_CreateOrder_RelaysVerbatim(t *testing.T) {
	usecase := new(MockOrderUsecase)
	ctrl := newTestOrderController(usecase, false)

	body := `{"amount":50000}`
	upstream := `{"error":"insufficient funds","code" : 17}`
	usecase.On("RelayOrder", mock.Anything, []byte(body)).
		Return(&responses.RelayResponse{StatusCode: 400, Body: []byte(upstream)}, nil)

	rr := httptest.NewRecorder()
	ctrl.CreateOrder(rr, newOrderRequest(body))

	assert.Equal(t, 400, rr.Code)
	assert.Equal(t, upstream, rr.Body.String())
	assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))
}

func TestOrderController_CreateOrder_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		distinct       bool
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "uniform malformed body",
			err:            exceptions.ErrCannotParseJSON(errors.New("invalid character")),
			expectedStatus: 500,
			expectedError:  constvars.ErrClientInvalidRequestBody,
		},
		{
			name:           "distinct malformed body",
			err:            exceptions.ErrCannotParseJSON(errors.New("invalid character")),
			distinct:       true,
			expectedStatus: 400,
			expectedError:  constvars.ErrClientInvalidRequestBody,
		},
		{
			name:           "distinct transport",
			err:            exceptions.ErrSendHTTPRequest(errors.New("refused")),
			distinct:       true,
			expectedStatus: 502,
			expectedError:  constvars.ErrClientGatewayUnreachable,
		},
		{
			name:           "distinct deadline",
			err:            exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded),
			distinct:       true,
			expectedStatus: 504,
			expectedError:  constvars.ErrClientServerLongRespond,
		},
		{
			name:           "plain error",
			err:            errors.New("unexpected"),
			distinct:       true,
			expectedStatus: 500,
			expectedError:  "unexpected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usecase := new(MockOrderUsecase)
			ctrl := newTestOrderController(usecase, tt.distinct)
			usecase.On("RelayOrder", mock.Anything, mock.Anything).Return(nil, tt.err)

			rr := httptest.NewRecorder()
			ctrl.CreateOrder(rr, newOrderRequest(`{invalid`))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, rr.Body.String())
		})
	}
}

func TestOrderController_CreateOrder_MissingRequestID(t *testing.T) {
	usecase := new(MockOrderUsecase)
	ctrl := newTestOrderController(usecase, false)

	rr := httptest.NewRecorder()
	ctrl.CreateOrder(rr, httptest.NewRequest(http.MethodPost, "/api/order", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	usecase.AssertNotCalled(t, "RelayOrder", mock.Anything, mock.Anything)
}

func TestOrderController_CreateOrder_UsesBufferedBody(t *testing.T) {
	usecase := new(MockOrderUsecase)
	ctrl := newTestOrderController(usecase, false)

	usecase.On("RelayOrder", mock.Anything, []byte(`{"buffered":true}`)).
		Return(&responses.RelayResponse{StatusCode: 200, Body: []byte(`{}`)}, nil)

	req := newOrderRequest(`{"ignored":true}`)
	req = req.WithContext(context.WithValue(req.Context(), constvars.CONTEXT_RAW_BODY, []byte(`{"buffered":true}`)))

	rr := httptest.NewRecorder()
	ctrl.CreateOrder(rr, req)

	assert.Equal(t, 200, rr.Code)
	usecase.AssertExpectations(t)
}
