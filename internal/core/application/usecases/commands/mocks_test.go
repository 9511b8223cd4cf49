package commands_test

import (
	"context"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockWorkstationRepository struct{ mock.Mock }

func (m *MockWorkstationRepository) Add(ctx context.Context, ws *workstation.Workstation) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkstationRepository) Update(ctx context.Context, ws *workstation.Workstation) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkstationRepository) Get(ctx context.Context, id kernel.UUID) (*workstation.Workstation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workstation.Workstation), args.Error(1)
}

func (m *MockWorkstationRepository) GetByAccessCode(ctx context.Context, input string) (*workstation.Workstation, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workstation.Workstation), args.Error(1)
}

func (m *MockWorkstationRepository) GetAll(ctx context.Context) ([]*workstation.Workstation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*workstation.Workstation), args.Error(1)
}

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Prepend(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockWorkshopRepository struct{ mock.Mock }

func (m *MockWorkshopRepository) Profile(ctx context.Context) (atelier.Profile, error) {
	args := m.Called(ctx)
	return args.Get(0).(atelier.Profile), args.Error(1)
}

func (m *MockWorkshopRepository) UpdateProfile(ctx context.Context, profile atelier.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockWorkshopRepository) ClientName(ctx context.Context, clientID string) (string, error) {
	args := m.Called(ctx, clientID)
	return args.String(0), args.Error(1)
}

// MockUoW implements every narrowed unit of work interface.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) WorkstationRepository() ports.WorkstationRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkstationRepository)
}

func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

func (m *MockUoW) WorkshopRepository() ports.WorkshopRepository {
	args := m.Called()
	return args.Get(0).(ports.WorkshopRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockWorkstationUoWFactory struct{ mock.Mock }

func (m *MockWorkstationUoWFactory) Create() commands.WorkstationUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkstationUoW)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}
