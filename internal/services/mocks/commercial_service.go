package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CommercialService is a mock type for the CommercialService type
type CommercialService struct {
	mock.Mock
}

// Quote provides a mock function with given fields: ctx, req
func (_m *CommercialService) Quote(ctx context.Context, req *models.QuoteRequest) (*models.Quote, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Quote")
	}

	var r0 *models.Quote
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.QuoteRequest) (*models.Quote, error)); ok {
		return rf(ctx, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, *models.QuoteRequest) *models.Quote); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Quote)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, *models.QuoteRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// PlaceOrder provides a mock function with given fields: ctx, agent, req
func (_m *CommercialService) PlaceOrder(ctx context.Context, agent string, req *models.CommercialOrderRequest) (*models.CommercialOrderResult, error) {
	ret := _m.Called(ctx, agent, req)

	if len(ret) == 0 {
		panic("no return value specified for PlaceOrder")
	}

	var r0 *models.CommercialOrderResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *models.CommercialOrderRequest) (*models.CommercialOrderResult, error)); ok {
		return rf(ctx, agent, req)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, *models.CommercialOrderRequest) *models.CommercialOrderResult); ok {
		r0 = rf(ctx, agent, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.CommercialOrderResult)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, *models.CommercialOrderRequest) error); ok {
		r1 = rf(ctx, agent, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListOrders provides a mock function with given fields: ctx, agent, limit
func (_m *CommercialService) ListOrders(ctx context.Context, agent string, limit int) ([]*models.CommercialOrder, error) {
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

// NewCommercialService creates a new instance of CommercialService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCommercialService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommercialService {
	mock := &CommercialService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
