package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CartService is a mock type for the CartService type
type CartService struct {
	mock.Mock
}

// GetCart provides a mock function with given fields: ctx, sessionID
func (_m *CartService) GetCart(ctx context.Context, sessionID string) (*models.Cart, error) {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for GetCart")
	}

	var r0 *models.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.Cart, error)); ok {
		return rf(ctx, sessionID)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) *models.Cart); ok {
		r0 = rf(ctx, sessionID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, sessionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AddItem provides a mock function with given fields: ctx, sessionID, req
func (_m *CartService) AddItem(ctx context.Context, sessionID string, req *models.AddItemRequest) (*models.Cart, error) {
	ret := _m.Called(ctx, sessionID, req)

	if len(ret) == 0 {
		panic("no return value specified for AddItem")
	}

	var r0 *models.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *models.AddItemRequest) (*models.Cart, error)); ok {
		return rf(ctx, sessionID, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, *models.AddItemRequest) *models.Cart); ok {
		r0 = rf(ctx, sessionID, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, *models.AddItemRequest) error); ok {
		r1 = rf(ctx, sessionID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Increment provides a mock function with given fields: ctx, sessionID, id
func (_m *CartService) Increment(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error) {
	ret := _m.Called(ctx, sessionID, id)

	if len(ret) == 0 {
		panic("no return value specified for Increment")
	}

	var r0 *models.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, models.LineID) (*models.Cart, error)); ok {
		return rf(ctx, sessionID, id)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, models.LineID) *models.Cart); ok {
		r0 = rf(ctx, sessionID, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, models.LineID) error); ok {
		r1 = rf(ctx, sessionID, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Decrement provides a mock function with given fields: ctx, sessionID, id
func (_m *CartService) Decrement(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error) {
	ret := _m.Called(ctx, sessionID, id)

	if len(ret) == 0 {
		panic("no return value specified for Decrement")
	}

	var r0 *models.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, models.LineID) (*models.Cart, error)); ok {
		return rf(ctx, sessionID, id)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, models.LineID) *models.Cart); ok {
		r0 = rf(ctx, sessionID, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, models.LineID) error); ok {
		r1 = rf(ctx, sessionID, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RemoveItem provides a mock function with given fields: ctx, sessionID, id
func (_m *CartService) RemoveItem(ctx context.Context, sessionID string, id models.LineID) (*models.Cart, error) {
	ret := _m.Called(ctx, sessionID, id)

	if len(ret) == 0 {
		panic("no return value specified for RemoveItem")
	}

	var r0 *models.Cart
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, models.LineID) (*models.Cart, error)); ok {
		return rf(ctx, sessionID, id)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, models.LineID) *models.Cart); ok {
		r0 = rf(ctx, sessionID, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Cart)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, models.LineID) error); ok {
		r1 = rf(ctx, sessionID, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Clear provides a mock function with given fields: ctx, sessionID
func (_m *CartService) Clear(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)

	if len(ret) == 0 {
		panic("no return value specified for Clear")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, sessionID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewCartService creates a new instance of CartService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartService {
	mock := &CartService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
