package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockFeatureFlags is a mock implementation of ports.FeatureFlags.
type MockFeatureFlags struct {
	mock.Mock
}

// NewMockFeatureFlags creates a new mock and registers expectation
// assertions with the test's cleanup.
func NewMockFeatureFlags(t mockConstructorTestingT) *MockFeatureFlags {
	m := &MockFeatureFlags{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockFeatureFlags_Expecter provides the fluent expectation API.
type MockFeatureFlags_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expecter for setting up mock expectations.
func (m *MockFeatureFlags) EXPECT() *MockFeatureFlags_Expecter {
	return &MockFeatureFlags_Expecter{mock: &m.Mock}
}

func (m *MockFeatureFlags) IsEnabled(ctx context.Context, flag string, defaultValue bool) bool {
	ret := m.Called(ctx, flag, defaultValue)

	return ret.Bool(0)
}

func (m *MockFeatureFlags) GetString(ctx context.Context, flag string, defaultValue string) string {
	ret := m.Called(ctx, flag, defaultValue)

	return ret.String(0)
}

func (m *MockFeatureFlags) GetInt(ctx context.Context, flag string, defaultValue int) int {
	ret := m.Called(ctx, flag, defaultValue)

	return ret.Int(0)
}

func (m *MockFeatureFlags) GetFloat(ctx context.Context, flag string, defaultValue float64) float64 {
	ret := m.Called(ctx, flag, defaultValue)

	return ret.Get(0).(float64)
}

func (m *MockFeatureFlags) GetJSON(ctx context.Context, flag string, target any) error {
	ret := m.Called(ctx, flag, target)

	return ret.Error(0)
}

func (e *MockFeatureFlags_Expecter) IsEnabled(ctx, flag, defaultValue any) *mock.Call {
	return e.mock.On("IsEnabled", ctx, flag, defaultValue)
}

func (e *MockFeatureFlags_Expecter) GetString(ctx, flag, defaultValue any) *mock.Call {
	return e.mock.On("GetString", ctx, flag, defaultValue)
}

func (e *MockFeatureFlags_Expecter) GetInt(ctx, flag, defaultValue any) *mock.Call {
	return e.mock.On("GetInt", ctx, flag, defaultValue)
}

func (e *MockFeatureFlags_Expecter) GetFloat(ctx, flag, defaultValue any) *mock.Call {
	return e.mock.On("GetFloat", ctx, flag, defaultValue)
}

func (e *MockFeatureFlags_Expecter) GetJSON(ctx, flag, target any) *mock.Call {
	return e.mock.On("GetJSON", ctx, flag, target)
}
