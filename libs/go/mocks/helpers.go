package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockRateProviderForTest creates a new mock RateProvider for testing
func NewMockRateProviderForTest(t *testing.T) *MockRateProvider {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRateProvider(ctrl)
}

// NewMockConversionEventPublisherForTest creates a new mock ConversionEventPublisher for testing
func NewMockConversionEventPublisherForTest(t *testing.T) *MockConversionEventPublisher {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockConversionEventPublisher(ctrl)
}

// NewMockRateServiceForTest creates a new mock RateService for testing
func NewMockRateServiceForTest(t *testing.T) *MockRateService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRateService(ctrl)
}

// NewMockRouteServiceForTest creates a new mock RouteService for testing
func NewMockRouteServiceForTest(t *testing.T) *MockRouteService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRouteService(ctrl)
}

// NewMockPlannerServiceForTest creates a new mock PlannerService for testing
func NewMockPlannerServiceForTest(t *testing.T) *MockPlannerService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockPlannerService(ctrl)
}

// NewMockExecutorServiceForTest creates a new mock ExecutorService for testing
func NewMockExecutorServiceForTest(t *testing.T) *MockExecutorService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockExecutorService(ctrl)
}

// NewMockConversionServiceForTest creates a new mock ConversionService for testing
func NewMockConversionServiceForTest(t *testing.T) *MockConversionService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockConversionService(ctrl)
}

// NewMockTokenServiceForTest creates a new mock TokenService for testing
func NewMockTokenServiceForTest(t *testing.T) *MockTokenService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTokenService(ctrl)
}
