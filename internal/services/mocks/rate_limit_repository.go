package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// RateLimitRepository is a mock type for the RateLimitRepository type
type RateLimitRepository struct {
	mock.Mock
}

// CheckLoginRateLimit provides a mock function with given fields: ctx, scope, username
func (_m *RateLimitRepository) CheckLoginRateLimit(ctx context.Context, scope string, username string) (bool, int, int, error) {
	ret := _m.Called(ctx, scope, username)

	if len(ret) == 0 {
		panic("no return value specified for CheckLoginRateLimit")
	}

	var r0 bool
	var r1 int
	var r2 int
	var r3 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (bool, int, int, error)); ok {
		return rf(ctx, scope, username)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) bool); ok {
		r0 = rf(ctx, scope, username)
	} else {
		r0 = ret.Bool(0)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) int); ok {
		r1 = rf(ctx, scope, username)
	} else {
		r1 = ret.Int(1)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string) int); ok {
		r2 = rf(ctx, scope, username)
	} else {
		r2 = ret.Int(2)
	}

	if rf, ok := ret.Get(3).(func(context.Context, string, string) error); ok {
		r3 = rf(ctx, scope, username)
	} else {
		r3 = ret.Error(3)
	}

	return r0, r1, r2, r3
}

// ResetLoginAttempts provides a mock function with given fields: ctx, scope, username
func (_m *RateLimitRepository) ResetLoginAttempts(ctx context.Context, scope string, username string) error {
	ret := _m.Called(ctx, scope, username)

	if len(ret) == 0 {
		panic("no return value specified for ResetLoginAttempts")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, scope, username)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewRateLimitRepository creates a new instance of RateLimitRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRateLimitRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RateLimitRepository {
	mock := &RateLimitRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
