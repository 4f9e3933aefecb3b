package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CheckoutOrderRepository is a mock type for the CheckoutOrderRepository type
type CheckoutOrderRepository struct {
	mock.Mock
}

// CreateOrder provides a mock function with given fields: ctx, order
func (_m *CheckoutOrderRepository) CreateOrder(ctx context.Context, order *models.CheckoutOrder) error {
	ret := _m.Called(ctx, order)

	if len(ret) == 0 {
		panic("no return value specified for CreateOrder")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.CheckoutOrder) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// GetOrderByID provides a mock function with given fields: ctx, id
func (_m *CheckoutOrderRepository) GetOrderByID(ctx context.Context, id string) (*models.CheckoutOrder, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetOrderByID")
	}

	var r0 *models.CheckoutOrder
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*models.CheckoutOrder, error)); ok {
		return rf(ctx, id)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) *models.CheckoutOrder); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.CheckoutOrder)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateOrderStatus provides a mock function with given fields: ctx, id, status
func (_m *CheckoutOrderRepository) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error {
	ret := _m.Called(ctx, id, status)

	if len(ret) == 0 {
		panic("no return value specified for UpdateOrderStatus")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, models.OrderStatus) error); ok {
		r0 = rf(ctx, id, status)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewCheckoutOrderRepository creates a new instance of CheckoutOrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCheckoutOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutOrderRepository {
	mock := &CheckoutOrderRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
