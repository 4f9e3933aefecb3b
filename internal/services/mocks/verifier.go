package mocks

import (
	"github.com/aaravmahajanofficial/supplements-storefront/internal/payment"
	"github.com/stretchr/testify/mock"
)

// Verifier is a mock type for the Verifier type
type Verifier struct {
	mock.Mock
}

// Verify provides a mock function with given fields: version, merchantParameters, signature
func (_m *Verifier) Verify(version string, merchantParameters string, signature string) (*payment.Verification, error) {
	ret := _m.Called(version, merchantParameters, signature)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 *payment.Verification
	var r1 error
	if rf, ok := ret.Get(0).(func(string, string, string) (*payment.Verification, error)); ok {
		return rf(version, merchantParameters, signature)
	}

	if rf, ok := ret.Get(0).(func(string, string, string) *payment.Verification); ok {
		r0 = rf(version, merchantParameters, signature)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*payment.Verification)
		}
	}

	if rf, ok := ret.Get(1).(func(string, string, string) error); ok {
		r1 = rf(version, merchantParameters, signature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewVerifier creates a new instance of Verifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Verifier {
	mock := &Verifier{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
