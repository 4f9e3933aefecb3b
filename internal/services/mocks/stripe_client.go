package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/pkg/stripe"
	"github.com/stretchr/testify/mock"
)

// StripeClient is a mock type for the StripeClient type
type StripeClient struct {
	mock.Mock
}

// CreateCheckoutSession provides a mock function with given fields: ctx, req
func (_m *StripeClient) CreateCheckoutSession(ctx context.Context, req *stripe.CheckoutRequest) (*stripe.CheckoutSession, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for CreateCheckoutSession")
	}

	var r0 *stripe.CheckoutSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *stripe.CheckoutRequest) (*stripe.CheckoutSession, error)); ok {
		return rf(ctx, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *stripe.CheckoutRequest) *stripe.CheckoutSession); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*stripe.CheckoutSession)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *stripe.CheckoutRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetCheckoutSession provides a mock function with given fields: ctx, id
func (_m *StripeClient) GetCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetCheckoutSession")
	}

	var r0 *stripe.CheckoutSession
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*stripe.CheckoutSession, error)); ok {
		return rf(ctx, id)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) *stripe.CheckoutSession); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*stripe.CheckoutSession)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Ping provides a mock function with given fields: ctx
func (_m *StripeClient) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Ping")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewStripeClient creates a new instance of StripeClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStripeClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *StripeClient {
	mock := &StripeClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
