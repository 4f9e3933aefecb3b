package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CommercialOrderRepository is a mock type for the CommercialOrderRepository type
type CommercialOrderRepository struct {
	mock.Mock
}

// CreateOrder provides a mock function with given fields: ctx, order
func (_m *CommercialOrderRepository) CreateOrder(ctx context.Context, order *models.CommercialOrder) error {
	ret := _m.Called(ctx, order)

	if len(ret) == 0 {
		panic("no return value specified for CreateOrder")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.CommercialOrder) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ListOrders provides a mock function with given fields: ctx, agent, limit
func (_m *CommercialOrderRepository) ListOrders(ctx context.Context, agent string, limit int) ([]*models.CommercialOrder, error) {
	ret := _m.Called(ctx, agent, limit)

	if len(ret) == 0 {
		panic("no return value specified for ListOrders")
	}

	var r0 []*models.CommercialOrder
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, int) ([]*models.CommercialOrder, error)); ok {
		return rf(ctx, agent, limit)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, int) []*models.CommercialOrder); ok {
		r0 = rf(ctx, agent, limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]*models.CommercialOrder)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, int) error); ok {
		r1 = rf(ctx, agent, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCommercialOrderRepository creates a new instance of CommercialOrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCommercialOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommercialOrderRepository {
	mock := &CommercialOrderRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
