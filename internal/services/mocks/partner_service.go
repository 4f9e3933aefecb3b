package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// PartnerService is a mock type for the PartnerService type
type PartnerService struct {
	mock.Mock
}

// Login provides a mock function with given fields: ctx, role, req
func (_m *PartnerService) Login(ctx context.Context, role models.PartnerRole, req *models.LoginRequest) (*models.LoginResponse, error) {
	ret := _m.Called(ctx, role, req)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *models.LoginResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.PartnerRole, *models.LoginRequest) (*models.LoginResponse, error)); ok {
		return rf(ctx, role, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, models.PartnerRole, *models.LoginRequest) *models.LoginResponse); ok {
		r0 = rf(ctx, role, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.LoginResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.PartnerRole, *models.LoginRequest) error); ok {
		r1 = rf(ctx, role, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Profile provides a mock function with given fields: ctx, claims
func (_m *PartnerService) Profile(ctx context.Context, claims *models.Claims) (*models.PartnerProfile, error) {
	ret := _m.Called(ctx, claims)

	if len(ret) == 0 {
		panic("no return value specified for Profile")
	}

	var r0 *models.PartnerProfile
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Claims) (*models.PartnerProfile, error)); ok {
		return rf(ctx, claims)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.Claims) *models.PartnerProfile); ok {
		r0 = rf(ctx, claims)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.PartnerProfile)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.Claims) error); ok {
		r1 = rf(ctx, claims)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewPartnerService creates a new instance of PartnerService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPartnerService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PartnerService {
	mock := &PartnerService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
