package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/sendgrid/sendgrid-go"
	"github.com/stretchr/testify/mock"
)

// EmailService is a mock type for the EmailService type
type EmailService struct {
	mock.Mock
}

// Send provides a mock function with given fields: ctx, email
func (_m *EmailService) Send(ctx context.Context, email *models.TemplateEmail) error {
	ret := _m.Called(ctx, email)

	if len(ret) == 0 {
		panic("no return value specified for Send")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.TemplateEmail) error); ok {
		r0 = rf(ctx, email)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetSendGridClient provides a mock function with given fields: 
func (_m *EmailService) GetSendGridClient() *sendgrid.Client {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetSendGridClient")
	}

	var r0 *sendgrid.Client
	if rf, ok := ret.Get(0).(func() *sendgrid.Client); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*sendgrid.Client)
		}
	}

	return r0
}

// NewEmailService creates a new instance of EmailService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewEmailService(t interface {
	mock.TestingT
	Cleanup(func())
}) *EmailService {
	mock := &EmailService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
