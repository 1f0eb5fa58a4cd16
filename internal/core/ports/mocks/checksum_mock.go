package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockChecksum is a mock implementation of ports.ChecksumPort
type MockChecksum struct {
	mock.Mock
}

// Checksum mocks the Checksum method
func (m *MockChecksum) Checksum(data []byte) uint32 {
	args := m.Called(data)
	return args.Get(0).(uint32)
}

// Verify mocks the Verify method
func (m *MockChecksum) Verify(data []byte, checksum uint32) bool {
	args := m.Called(data, checksum)
	return args.Bool(0)
}

// Name mocks the Name method
func (m *MockChecksum) Name() string {
	args := m.Called()
	return args.String(0)
}
