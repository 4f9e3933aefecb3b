package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// Signer is a mock type for the Signer type
type Signer struct {
	mock.Mock
}

// Sign provides a mock function with given fields: ctx, req
func (_m *Signer) Sign(ctx context.Context, req *models.PaymentRequest) (*models.SignedPayload, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Sign")
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

// NewSigner creates a new instance of Signer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSigner(t interface {
	mock.TestingT
	Cleanup(func())
}) *Signer {
	mock := &Signer{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
