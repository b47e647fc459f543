package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shipmark/internal/domain"
)

// MockInspectionRepo is a mock implementation of port.InspectionRepository.
type MockInspectionRepo struct {
	mock.Mock
}

func (m *MockInspectionRepo) ReplaceTask(ctx context.Context, task *domain.InspectionTask, items []domain.InspectionItem) error {
	args := m.Called(ctx, task, items)
	return args.Error(0)
}

func (m *MockInspectionRepo) GetTask(ctx context.Context, zone domain.Zone) (*domain.InspectionTask, []domain.InspectionItem, error) {
	args := m.Called(ctx, zone)
	var task *domain.InspectionTask
	if args.Get(0) != nil {
		task = args.Get(0).(*domain.InspectionTask)
	}
	var items []domain.InspectionItem
	if args.Get(1) != nil {
		items = args.Get(1).([]domain.InspectionItem)
	}
	return task, items, args.Error(2)
}

func (m *MockInspectionRepo) GetItem(ctx context.Context, itemID string) (*domain.InspectionItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InspectionItem), args.Error(1)
}

func (m *MockInspectionRepo) UpdateProgress(ctx context.Context, itemID string, scannedQty int, status domain.InspectionStatus) error {
	args := m.Called(ctx, itemID, scannedQty, status)
	return args.Error(0)
}

func (m *MockInspectionRepo) ClearTask(ctx context.Context, zone domain.Zone) error {
	args := m.Called(ctx, zone)
	return args.Error(0)
}
