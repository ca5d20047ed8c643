package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gulshan-laundry/laundry-svc/internal/domain"
)

var (
	ErrInvalidOrder  = errors.New("invalid order payload")
	ErrInvalidStatus = errors.New("unknown order status")
	ErrOrderNotFound = errors.New("order not found")
)

type OrderService struct {
	repo      OrderRepository
	qrEncoder QRGenerator
}

func NewOrderService(repo OrderRepository, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, qrEncoder: qr}
}

func mintID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

func (s *OrderService) Create(order *domain.Order) error {
	if order.Name == "" || order.Phone == "" || order.Address == "" || order.PickupDate == "" {
		return ErrInvalidOrder
	}
	order.ID = mintID()
	order.Status = domain.StatusPending
	if err := s.repo.CreateOrder(order); err != nil {
		return err
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repo.SaveQRCode(order.ID, qr)
		}
	}

	return nil
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repo.ListOrders()
}

func (s *OrderService) Get(id string) (*domain.Order, error) {
	return s.repo.GetOrder(id)
}

func (s *OrderService) UpdateStatus(id, status string) error {
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	rows, err := s.repo.UpdateOrderStatus(id, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) GetQRCode(orderID string) ([]byte, error) {
	qr, err := s.repo.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repo.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

func (s *OrderService) QRLink(orderID string) string {
	return fmt.Sprintf("/api/orders/%s/qrcode", orderID)
}

func (s *OrderService) StatusCounts() (map[string]int, error) {
	return s.repo.CountOrdersByStatus()
}

var _ OrderServiceInterface = (*OrderService)(nil)
