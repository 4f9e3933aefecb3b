package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

// SearchService is a mock type for the SearchService type
type SearchService struct {
	mock.Mock
}

// Search provides a mock function with given fields: ctx, query, locale
func (_m *SearchService) Search(ctx context.Context, query string, locale string) *models.SearchResponse {
	ret := _m.Called(ctx, query, locale)

	if len(ret) == 0 {
		panic("no return value specified for Search")
	}

	var r0 *models.SearchResponse
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *models.SearchResponse); ok {
		r0 = rf(ctx, query, locale)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.SearchResponse)
		}
	}

	return r0
}

// NewSearchService creates a new instance of SearchService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSearchService(t interface {
	mock.TestingT
	Cleanup(func())
}) *SearchService {
	mock := &SearchService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
