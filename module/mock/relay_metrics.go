package mock

import (
	mock "github.com/stretchr/testify/mock"

	parachain "github.com/addchain/collator/model/parachain"
)

// RelayMetrics is a mock type for the RelayMetrics type
type RelayMetrics struct {
	mock.Mock
}

// CandidateIncluded provides a mock function with given fields: head
func (_m *RelayMetrics) CandidateIncluded(head parachain.HeadData) {
	_m.Called(head)
}

// CandidateRejected provides a mock function with given fields:
func (_m *RelayMetrics) CandidateRejected() {
	_m.Called()
}

// RelayRound provides a mock function with given fields: relayParentNumber
func (_m *RelayMetrics) RelayRound(relayParentNumber uint32) {
	_m.Called(relayParentNumber)
}

type mockConstructorTestingTNewRelayMetrics interface {
	mock.TestingT
	Cleanup(func())
}

// NewRelayMetrics creates a new instance of RelayMetrics. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRelayMetrics(t mockConstructorTestingTNewRelayMetrics) *RelayMetrics {
	mock := &RelayMetrics{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
