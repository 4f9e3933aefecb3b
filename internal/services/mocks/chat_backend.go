package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// ChatBackend is a mock type for the ChatBackend type
type ChatBackend struct {
	mock.Mock
}

// Reply provides a mock function with given fields: ctx, req
func (_m *ChatBackend) Reply(ctx context.Context, req *models.BackendChatRequest) (string, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Reply")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.BackendChatRequest) (string, error)); ok {
		return rf(ctx, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.BackendChatRequest) string); ok {
		r0 = rf(ctx, req)
	} else {
		r0 = ret.String(0)
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.BackendChatRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewChatBackend creates a new instance of ChatBackend. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewChatBackend(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChatBackend {
	mock := &ChatBackend{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
