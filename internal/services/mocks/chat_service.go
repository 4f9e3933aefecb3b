package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// ChatService is a mock type for the ChatService type
type ChatService struct {
	mock.Mock
}

// Chat provides a mock function with given fields: ctx, req
func (_m *ChatService) Chat(ctx context.Context, req *models.ChatRequest) (*models.ChatResponse, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Chat")
	}

	var r0 *models.ChatResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.ChatRequest) (*models.ChatResponse, error)); ok {
		return rf(ctx, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.ChatRequest) *models.ChatResponse); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.ChatResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.ChatRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// BackendReply provides a mock function with given fields: ctx, req
func (_m *ChatService) BackendReply(ctx context.Context, req *models.BackendChatRequest) (*models.BackendChatReply, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for BackendReply")
	}

	var r0 *models.BackendChatReply
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.BackendChatRequest) (*models.BackendChatReply, error)); ok {
		return rf(ctx, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.BackendChatRequest) *models.BackendChatReply); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.BackendChatReply)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.BackendChatRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewChatService creates a new instance of ChatService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewChatService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ChatService {
	mock := &ChatService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
