// Package mocks provides testify mocks for application ports.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bnema/settingsdeck/internal/domain/entity"
)

// MockSettingsResolver is a mock implementation of port.SettingsResolver.
type MockSettingsResolver struct {
	mock.Mock
}

// MockSettingsResolver_Expecter records expectations.
type MockSettingsResolver_Expecter struct {
	mock *mock.Mock
}

// EXPECT returns the expectation recorder.
func (_m *MockSettingsResolver) EXPECT() *MockSettingsResolver_Expecter {
	return &MockSettingsResolver_Expecter{mock: &_m.Mock}
}

// Resolve provides a mock function with given fields: ctx
func (_m *MockSettingsResolver) Resolve(ctx context.Context) (*entity.Settings, error) {
	ret := _m.Called(ctx)

	var r0 *entity.Settings
	if rf, ok := ret.Get(0).(func(context.Context) *entity.Settings); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Settings)
	}

	return r0, ret.Error(1)
}

// MockSettingsResolver_Resolve_Call wraps a Resolve expectation.
type MockSettingsResolver_Resolve_Call struct {
	*mock.Call
}

// Resolve is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockSettingsResolver_Expecter) Resolve(ctx interface{}) *MockSettingsResolver_Resolve_Call {
	return &MockSettingsResolver_Resolve_Call{Call: _e.mock.On("Resolve", ctx)}
}

// Return sets the values returned by Resolve.
func (_c *MockSettingsResolver_Resolve_Call) Return(settings *entity.Settings, err error) *MockSettingsResolver_Resolve_Call {
	_c.Call.Return(settings, err)
	return _c
}

// NewMockSettingsResolver creates a new MockSettingsResolver and registers
// a cleanup that asserts its expectations.
func NewMockSettingsResolver(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSettingsResolver {
	m := &MockSettingsResolver{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
