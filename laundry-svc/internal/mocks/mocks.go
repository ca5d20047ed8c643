package mocks

import (
	"context"

	"gulshan-laundry/laundry-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type PackageRepository struct {
	mock.Mock
}

func (m *PackageRepository) CreatePackage(pkg *domain.Package) error {
	args := m.Called(pkg)
	return args.Error(0)
}

func (m *PackageRepository) ListPackages() ([]domain.Package, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Package), args.Error(1)
}

func (m *PackageRepository) GetPackage(id string) (*domain.Package, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *PackageRepository) UpdatePackage(pkg *domain.Package) error {
	args := m.Called(pkg)
	return args.Error(0)
}

type OrderRepository struct {
	mock.Mock
}

func (m *OrderRepository) CreateOrder(order *domain.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *OrderRepository) ListOrders() ([]domain.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *OrderRepository) GetOrder(id string) (*domain.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *OrderRepository) UpdateOrderStatus(id, status string) (int64, error) {
	args := m.Called(id, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepository) SaveQRCode(orderID string, qr []byte) error {
	args := m.Called(orderID, qr)
	return args.Error(0)
}

func (m *OrderRepository) GetQRCode(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *OrderRepository) CountOrdersByStatus() (map[string]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) SaveMessage(msg *domain.ChatMessage) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MessageRepository) ListMessages() ([]domain.ChatMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) SaveSession(ctx context.Context, token string, user domain.AdminUser) error {
	args := m.Called(ctx, token, user)
	return args.Error(0)
}

func (m *SessionStore) GetSession(ctx context.Context, token string) (*domain.AdminUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}

func (m *SessionStore) DeleteSession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

type ChatPublisher struct {
	mock.Mock
}

func (m *ChatPublisher) PublishMessage(ctx context.Context, event domain.ChatEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type QRGenerator struct {
	mock.Mock
}

func (m *QRGenerator) Generate(orderID string) ([]byte, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
