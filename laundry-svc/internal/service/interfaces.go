package service

import (
	"context"

	"gulshan-laundry/laundry-svc/internal/domain"
)

type PackageRepository interface {
	CreatePackage(pkg *domain.Package) error
	ListPackages() ([]domain.Package, error)
	GetPackage(id string) (*domain.Package, error)
	UpdatePackage(pkg *domain.Package) error
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	ListOrders() ([]domain.Order, error)
	GetOrder(id string) (*domain.Order, error)
	UpdateOrderStatus(id, status string) (int64, error)
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
	CountOrdersByStatus() (map[string]int, error)
}

type MessageRepository interface {
	SaveMessage(msg *domain.ChatMessage) error
	ListMessages() ([]domain.ChatMessage, error)
}

type SessionStore interface {
	SaveSession(ctx context.Context, token string, user domain.AdminUser) error
	GetSession(ctx context.Context, token string) (*domain.AdminUser, error)
	DeleteSession(ctx context.Context, token string) error
}

type ChatPublisher interface {
	PublishMessage(ctx context.Context, event domain.ChatEvent) error
}

type PackageServiceInterface interface {
	Create(pkg *domain.Package) error
	List() ([]domain.Package, error)
	Get(id string) (*domain.Package, error)
	Update(pkg *domain.Package) error
}

type OrderServiceInterface interface {
	Create(order *domain.Order) error
	List() ([]domain.Order, error)
	Get(id string) (*domain.Order, error)
	UpdateStatus(id, status string) error
	GetQRCode(orderID string) ([]byte, error)
	QRLink(orderID string) string
	StatusCounts() (map[string]int, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Verify(ctx context.Context, token string) (*domain.AdminUser, error)
	Logout(ctx context.Context, token string) error
}

type ChatServiceInterface interface {
	Send(ctx context.Context, msg *domain.ChatMessage) error
	List() ([]domain.ChatMessage, error)
}
