package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// CatalogService is a mock type for the CatalogService type
type CatalogService struct {
	mock.Mock
}

// ListProducts provides a mock function with given fields: ctx, filter
func (_m *CatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductsEnvelope, error) {
	ret := _m.Called(ctx, filter)

	if len(ret) == 0 {
		panic("no return value specified for ListProducts")
	}

	var r0 *models.ProductsEnvelope
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.ProductFilter) (*models.ProductsEnvelope, error)); ok {
		return rf(ctx, filter)
	}

	if rf, ok := ret.Get(0).(func(context.Context, models.ProductFilter) *models.ProductsEnvelope); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.ProductsEnvelope)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.ProductFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetProduct provides a mock function with given fields: ctx, sportID, ref
func (_m *CatalogService) GetProduct(ctx context.Context, sportID string, ref string) (*models.Product, error) {
	ret := _m.Called(ctx, sportID, ref)

	if len(ret) == 0 {
		panic("no return value specified for GetProduct")
	}

	var r0 *models.Product
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) (*models.Product, error)); ok {
		return rf(ctx, sportID, ref)
	}

	if rf, ok := ret.Get(0).(func(context.Context, string, string) *models.Product); ok {
		r0 = rf(ctx, sportID, ref)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Product)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, sportID, ref)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// AllProducts provides a mock function with given fields: ctx
func (_m *CatalogService) AllProducts(ctx context.Context) []models.Product {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for AllProducts")
	}

	var r0 []models.Product
	if rf, ok := ret.Get(0).(func(context.Context) []models.Product); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Product)
		}
	}

	return r0
}

// NewCatalogService creates a new instance of CatalogService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogService {
	mock := &CatalogService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
