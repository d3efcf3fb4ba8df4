package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barista-preorder/internal/application/verification"
	"github.com/barista-preorder/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mock ---

type mockVerificationSvc struct{ mock.Mock }

func (m *mockVerificationSvc) IssueCode(ctx context.Context, req verification.IssueRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockVerificationSvc) Redeem(ctx context.Context, req verification.RedeemRequest) (*domain.Order, error) {
	args := m.Called(ctx, req)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// --- SendCode ---

func TestSendCode_HappyPath(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("IssueCode", mock.Anything, verification.IssueRequest{Name: "Ana", Email: "ana@x.com"}).Return(nil)

	rec := postJSON(t, NewVerificationHandler(svc).SendCode, `{"name":"Ana","email":"ana@x.com"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "verification code sent", env.Message)
	svc.AssertExpectations(t)
}

func TestSendCode_InvalidBody(t *testing.T) {
	rec := postJSON(t, NewVerificationHandler(&mockVerificationSvc{}).SendCode, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendCode_MissingEmail_Unprocessable(t *testing.T) {
	svc := &mockVerificationSvc{}
	rec := postJSON(t, NewVerificationHandler(svc).SendCode, `{"name":"Ana"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertNotCalled(t, "IssueCode")
}

func TestSendCode_MalformedEmail_Unprocessable(t *testing.T) {
	rec := postJSON(t, NewVerificationHandler(&mockVerificationSvc{}).SendCode, `{"name":"Ana","email":"not-an-email"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSendCode_DeliveryFailure_BadGateway(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("IssueCode", mock.Anything, mock.Anything).
		Return(fmt.Errorf("send verification email: %w", domain.ErrDelivery))

	rec := postJSON(t, NewVerificationHandler(svc).SendCode, `{"name":"Ana","email":"ana@x.com"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

// --- Checkout ---

func TestCheckout_HappyPath_ReturnsOrder(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("Redeem", mock.Anything, verification.RedeemRequest{
		Name:  "Ana",
		Email: "ana@x.com",
		Code:  "482193",
		Cart:  domain.CartSnapshot{"2": 1},
		Total: 3.25,
	}).Return(&domain.Order{
		ID:           "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		CustomerName: "Ana",
		Total:        3.25,
		Status:       domain.OrderStatusConfirmed,
	}, nil)

	rec := postJSON(t, NewVerificationHandler(svc).Checkout,
		`{"name":"Ana","email":"ana@x.com","code":"482193","cart":{"2":1},"total":3.25}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var env OrderEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Order)
	assert.Equal(t, "Ana", env.Order.CustomerName)
	assert.Equal(t, 3.25, env.Order.Total)
	assert.Equal(t, domain.OrderStatusConfirmed, env.Order.Status)
}

func TestCheckout_InvalidCode_UnauthorizedWithGenericMessage(t *testing.T) {
	svc := &mockVerificationSvc{}
	svc.On("Redeem", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCode)

	rec := postJSON(t, NewVerificationHandler(svc).Checkout,
		`{"name":"Bo","email":"bo@x.com","code":"000000","cart":{},"total":0}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var env MessageEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "invalid code", env.Error)
}

func TestCheckout_MissingCode_Unprocessable(t *testing.T) {
	svc := &mockVerificationSvc{}
	rec := postJSON(t, NewVerificationHandler(svc).Checkout, `{"name":"Ana","email":"ana@x.com"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	svc.AssertNotCalled(t, "Redeem")
}
