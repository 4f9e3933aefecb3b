package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// ConsentService is a mock type for the ConsentService type
type ConsentService struct {
	mock.Mock
}

// GetConsent provides a mock function with given fields: ctx, sessionID
func (_m *ConsentService) GetConsent(ctx context.Context, sessionID string) (*models.Consent, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetConsent")
	}

	var r0 *models.Consent
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.Consent, error)); ok {
		return rf(ctx, sessionID)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Consent); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Consent)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SaveConsent provides a mock function with given fields: ctx, sessionID, req
func (_m *ConsentService) SaveConsent(ctx context.Context, sessionID string, req *models.ConsentRequest) (*models.Consent, error) {
	ret := _m.Called(ctx, sessionID, req)

	if len(ret) == 0 {
		panic("no return value specified for SaveConsent")
	}

	var r0 *models.Consent
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *models.ConsentRequest) (*models.Consent, error)); ok {
		return rf(ctx, sessionID, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, *models.ConsentRequest) *models.Consent); ok {
		r0 = rf(ctx, sessionID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Consent)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, *models.ConsentRequest) error); ok {
		r1 = rf(ctx, sessionID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewConsentService creates a new instance of ConsentService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewConsentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ConsentService {
	mock := &ConsentService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
