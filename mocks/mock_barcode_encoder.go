package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockBarcodeEncoder is a mock implementation of port.BarcodeEncoder.
type MockBarcodeEncoder struct {
	mock.Mock
}

func (m *MockBarcodeEncoder) EncodeDataURI(text string) string {
	args := m.Called(text)
	return args.String(0)
}
