package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/aaravmahajanofficial/supplements-storefront/internal/payment"
	"github.com/stretchr/testify/mock"
)

// Gateway is a mock type for the Gateway type
type Gateway struct {
	mock.Mock
}

// Name provides a mock function with given fields: 
func (_m *Gateway) Name() string {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Name")
	}

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.String(0)
	}

	return r0
}

// Prepare provides a mock function with given fields: ctx, order
func (_m *Gateway) Prepare(ctx context.Context, order *payment.Order) (*models.Handoff, error) {
	ret := _m.Called(ctx, order)

	if len(ret) == 0 {
		panic("no return value specified for Prepare")
	}

	var r0 *models.Handoff
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *payment.Order) (*models.Handoff, error)); ok {
		return rf(ctx, order)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *payment.Order) *models.Handoff); ok {
		r0 = rf(ctx, order)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Handoff)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *payment.Order) error); ok {
		r1 = rf(ctx, order)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewGateway creates a new instance of Gateway. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *Gateway {
	mock := &Gateway{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
