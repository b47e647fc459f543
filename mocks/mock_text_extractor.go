package mocks

import (
	"github.com/stretchr/testify/mock"

	"shipmark/internal/port"
)

// MockTextExtractor is a mock implementation of port.TextExtractor.
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractPages(doc []byte) ([]port.PageText, error) {
	args := m.Called(doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.PageText), args.Error(1)
}

// MockPageFilter is a mock implementation of port.PageFilter.
type MockPageFilter struct {
	mock.Mock
}

func (m *MockPageFilter) KeepPages(doc []byte, pages []int) ([]byte, error) {
	args := m.Called(doc, pages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
