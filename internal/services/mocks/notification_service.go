package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// NotificationService is a mock type for the NotificationService type
type NotificationService struct {
	mock.Mock
}

// SendEmail provides a mock function with given fields: ctx, email
func (_m *NotificationService) SendEmail(ctx context.Context, email *models.TemplateEmail) (*models.Notification, error) {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for SendEmail")
	}

	var r0 *models.Notification
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.TemplateEmail) (*models.Notification, error)); ok {
		return rf(ctx, email)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.TemplateEmail) *models.Notification); ok {
		r0 = rf(ctx, email)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Notification)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.TemplateEmail) error); ok {
		r1 = rf(ctx, email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewNotificationService creates a new instance of NotificationService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationService {
	mock := &NotificationService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
