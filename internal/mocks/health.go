package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/evmscan/explorer-gateway/internal/ports"
)

// MockHealthRegistry is a mock implementation of ports.HealthRegistry.
type MockHealthRegistry struct {
	mock.Mock
}

func (m *MockHealthRegistry) Register(checker ports.HealthChecker) error {
	args := m.Called(checker)
	return args.Error(0)
}

func (m *MockHealthRegistry) CheckAll(ctx context.Context) *ports.HealthResult {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*ports.HealthResult)
}

// EXPECT returns an expecter for setting up expectations fluently.
func (m *MockHealthRegistry) EXPECT() *MockHealthRegistry_Expecter {
	return &MockHealthRegistry_Expecter{mock: &m.Mock}
}

// MockHealthRegistry_Expecter provides fluent expectation helpers.
type MockHealthRegistry_Expecter struct {
	mock *mock.Mock
}

func (e *MockHealthRegistry_Expecter) Register(checker any) *mock.Call {
	return e.mock.On("Register", checker)
}

func (e *MockHealthRegistry_Expecter) CheckAll(ctx any) *mock.Call {
	return e.mock.On("CheckAll", ctx)
}

// NewMockHealthRegistry creates a new mock registry that asserts its
// expectations on test cleanup.
func NewMockHealthRegistry(t mockConstructorTestingT) *MockHealthRegistry {
	m := &MockHealthRegistry{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockHealthChecker is a mock implementation of ports.HealthChecker.
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockHealthChecker) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// EXPECT returns an expecter for setting up expectations fluently.
func (m *MockHealthChecker) EXPECT() *MockHealthChecker_Expecter {
	return &MockHealthChecker_Expecter{mock: &m.Mock}
}

// MockHealthChecker_Expecter provides fluent expectation helpers.
type MockHealthChecker_Expecter struct {
	mock *mock.Mock
}

func (e *MockHealthChecker_Expecter) Name() *mock.Call {
	return e.mock.On("Name")
}

func (e *MockHealthChecker_Expecter) Check(ctx any) *mock.Call {
	return e.mock.On("Check", ctx)
}

// NewMockHealthChecker creates a new mock checker that asserts its
// expectations on test cleanup.
func NewMockHealthChecker(t mockConstructorTestingT) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
