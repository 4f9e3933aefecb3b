package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CheckoutService is a mock type for the CheckoutService type
type CheckoutService struct {
	mock.Mock
}

// StartCheckout provides a mock function with given fields: ctx, sessionID, req
func (_m *CheckoutService) StartCheckout(ctx context.Context, sessionID string, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	ret := _m.Called(ctx, sessionID, req)

	if len(ret) == 0 {
		panic("no return value specified for StartCheckout")
	}

	var r0 *models.CheckoutResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *models.CheckoutRequest) (*models.CheckoutResponse, error)); ok {
		return rf(ctx, sessionID, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, *models.CheckoutRequest) *models.CheckoutResponse); ok {
		r0 = rf(ctx, sessionID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.CheckoutResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, *models.CheckoutRequest) error); ok {
		r1 = rf(ctx, sessionID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HandleReturn provides a mock function with given fields: ctx, sessionID, params
func (_m *CheckoutService) HandleReturn(ctx context.Context, sessionID string, params *models.ReturnParams) (*models.PaymentResult, error) {
	ret := _m.Called(ctx, sessionID, params)

	if len(ret) == 0 {
		panic("no return value specified for HandleReturn")
	}

	var r0 *models.PaymentResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *models.ReturnParams) (*models.PaymentResult, error)); ok {
		return rf(ctx, sessionID, params)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, *models.ReturnParams) *models.PaymentResult); ok {
		r0 = rf(ctx, sessionID, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.PaymentResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, *models.ReturnParams) error); ok {
		r1 = rf(ctx, sessionID, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HandleNotification provides a mock function with given fields: ctx, params
func (_m *CheckoutService) HandleNotification(ctx context.Context, params *models.ReturnParams) (*models.PaymentResult, error) {
	ret := _m.Called(ctx, params)

	if len(ret) == 0 {
		panic("no return value specified for HandleNotification")
	}

	var r0 *models.PaymentResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.ReturnParams) (*models.PaymentResult, error)); ok {
		return rf(ctx, params)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.ReturnParams) *models.PaymentResult); ok {
		r0 = rf(ctx, params)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.PaymentResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.ReturnParams) error); ok {
		r1 = rf(ctx, params)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ResendReceipt provides a mock function with given fields: ctx, sessionID
func (_m *CheckoutService) ResendReceipt(ctx context.Context, sessionID string) (*models.ReceiptResponse, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for ResendReceipt")
	}

	var r0 *models.ReceiptResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.ReceiptResponse, error)); ok {
		return rf(ctx, sessionID)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) *models.ReceiptResponse); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.ReceiptResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ClearSession provides a mock function with given fields: ctx, sessionID
func (_m *CheckoutService) ClearSession(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for ClearSession")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, sessionID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// State provides a mock function with given fields: ctx, sessionID
func (_m *CheckoutService) State(ctx context.Context, sessionID string) (models.CheckoutState, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for State")
	}

	var r0 models.CheckoutState
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (models.CheckoutState, error)); ok {
		return rf(ctx, sessionID)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) models.CheckoutState); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(models.CheckoutState)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SignPayment provides a mock function with given fields: ctx, req
func (_m *CheckoutService) SignPayment(ctx context.Context, req *models.PaymentRequest) (*models.SignedPayload, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for SignPayment")
	}

	var r0 *models.SignedPayload
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.PaymentRequest) (*models.SignedPayload, error)); ok {
		return rf(ctx, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.PaymentRequest) *models.SignedPayload); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.SignedPayload)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.PaymentRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCheckoutService creates a new instance of CheckoutService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCheckoutService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutService {
	mock := &CheckoutService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
