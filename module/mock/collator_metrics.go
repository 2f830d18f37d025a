package mock

import (
	time "time"

	mock "github.com/stretchr/testify/mock"

	parachain "github.com/addchain/collator/model/parachain"
)

// CollatorMetrics is a mock type for the CollatorMetrics type
type CollatorMetrics struct {
	mock.Mock
}

// CollationAbandoned provides a mock function with given fields:
func (_m *CollatorMetrics) CollationAbandoned() {
	_m.Called()
}

// CollationConfirmed provides a mock function with given fields: latency
func (_m *CollatorMetrics) CollationConfirmed(latency time.Duration) {
	_m.Called(latency)
}

// CollationProduced provides a mock function with given fields: head, povSize, duration
func (_m *CollatorMetrics) CollationProduced(head parachain.HeadData, povSize int, duration time.Duration) {
	_m.Called(head, povSize, duration)
}

// ConfirmationMismatch provides a mock function with given fields:
func (_m *CollatorMetrics) ConfirmationMismatch() {
	_m.Called()
}

// RoundRejected provides a mock function with given fields: reason
func (_m *CollatorMetrics) RoundRejected(reason string) {
	_m.Called(reason)
}

type mockConstructorTestingTNewCollatorMetrics interface {
	mock.TestingT
	Cleanup(func())
}

// NewCollatorMetrics creates a new instance of CollatorMetrics. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCollatorMetrics(t mockConstructorTestingTNewCollatorMetrics) *CollatorMetrics {
	mock := &CollatorMetrics{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
