package client

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ErrInvalidCredentials is returned by the mock login for any credential
// pair other than the authoritative one.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	mockAdminEmail    = "admin@example.com"
	mockAdminPassword = "password123"
	mockLatency       = 500 * time.Millisecond
)

var mockAdmin = AdminUser{
	ID:    "1",
	Name:  "Admin User",
	Email: "admin@example.com",
	Role:  "admin",
}

// MockSource fabricates responses in memory. It simulates a fixed network
// latency and dispatches on the endpoint substring the way the real API is
// laid out; unmapped endpoints answer with a generic success envelope.
type MockSource struct {
	Latency time.Duration

	mu       sync.Mutex
	packages []Package
	orders   []Order
	messages []ChatMessage
}

func NewMockSource() *MockSource {
	return &MockSource{
		Latency: mockLatency,
		packages: []Package{
			{
				ID:          "1",
				Name:        "Basic Laundry",
				Description: "Regular wash and fold service",
				Price:       15.99,
				Features:    []string{"Wash and fold", "24 hour turnaround", "Free pickup"},
			},
			{
				ID:          "2",
				Name:        "Premium Dry Cleaning",
				Description: "Professional dry cleaning for delicate items",
				Price:       29.99,
				Features:    []string{"Dry cleaning", "48 hour turnaround", "Garment bags"},
				IsPopular:   true,
			},
			{
				ID:          "3",
				Name:        "Express Service",
				Description: "Same-day laundry service",
				Price:       24.99,
				Features:    []string{"Same-day service", "8 hour turnaround", "Priority handling"},
			},
		},
		orders: []Order{
			{
				ID:        "1001",
				Name:      "John Doe",
				PackageID: "1",
				Status:    StatusCompleted,
				Total:     15.99,
				CreatedAt: time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC),
			},
			{
				ID:        "1002",
				Name:      "Jane Smith",
				PackageID: "2",
				Status:    StatusProcessing,
				Total:     29.99,
				CreatedAt: time.Date(2025, 5, 25, 14, 45, 0, 0, time.UTC),
			},
		},
	}
}

func (s *MockSource) Do(ctx context.Context, method, endpoint string, body interface{}) (*Envelope, error) {
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case strings.Contains(endpoint, "/admin/login"):
		return s.login(body)
	case strings.Contains(endpoint, "/admin/verify"):
		return envelope(verification{Valid: true, User: mockAdmin}, "")
	case strings.Contains(endpoint, "/packages"):
		return s.packagesEndpoint(method, endpoint, body)
	case strings.Contains(endpoint, "/orders"):
		return s.ordersEndpoint(method, endpoint, body)
	case strings.Contains(endpoint, "/chat"):
		return s.chatEndpoint(method, body)
	default:
		return &Envelope{Success: true}, nil
	}
}

func (s *MockSource) sleep(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.Latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// decodeBody round-trips the request body through JSON so callers can pass
// either a typed struct or a map.
func decodeBody(body, v interface{}) error {
	if body == nil {
		return nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

func envelope(data interface{}, message string) (*Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Envelope{Success: true, Message: message, Data: raw}, nil
}

func mintID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

func (s *MockSource) login(body interface{}) (*Envelope, error) {
	var creds credentials
	if err := decodeBody(body, &creds); err != nil {
		return nil, err
	}
	if creds.Email != mockAdminEmail || creds.Password != mockAdminPassword {
		return nil, ErrInvalidCredentials
	}
	return envelope(Session{Token: "mock-jwt-token", User: mockAdmin}, "")
}

func (s *MockSource) packagesEndpoint(method, endpoint string, body interface{}) (*Envelope, error) {
	switch method {
	case "GET":
		return envelope(s.packages, "")
	case "POST":
		var pkg Package
		if err := decodeBody(body, &pkg); err != nil {
			return nil, err
		}
		pkg.ID = mintID()
		pkg.CreatedAt = time.Now()
		s.packages = append(s.packages, pkg)
		return envelope(pkg, "Package created successfully")
	case "PUT":
		var pkg Package
		if err := decodeBody(body, &pkg); err != nil {
			return nil, err
		}
		pkg.ID = path.Base(endpoint)
		pkg.UpdatedAt = time.Now()
		for i := range s.packages {
			if s.packages[i].ID == pkg.ID {
				s.packages[i] = pkg
				break
			}
		}
		return envelope(pkg, "Package updated successfully")
	}
	return &Envelope{Success: true}, nil
}

func (s *MockSource) ordersEndpoint(method, endpoint string, body interface{}) (*Envelope, error) {
	switch {
	case method == "GET":
		return envelope(s.orders, "")
	case method == "PUT" && strings.HasSuffix(endpoint, "/status"):
		var payload struct {
			Status string `json:"status"`
		}
		if err := decodeBody(body, &payload); err != nil {
			return nil, err
		}
		id := path.Base(strings.TrimSuffix(endpoint, "/status"))
		for i := range s.orders {
			if s.orders[i].ID == id {
				s.orders[i].Status = payload.Status
				s.orders[i].UpdatedAt = time.Now()
				break
			}
		}
		return &Envelope{Success: true, Message: "Order " + id + " status updated to " + payload.Status}, nil
	case method == "POST":
		var order Order
		if err := decodeBody(body, &order); err != nil {
			return nil, err
		}
		order.ID = mintID()
		order.Status = StatusPending
		order.CreatedAt = time.Now()
		s.orders = append(s.orders, order)
		return envelope(order, "Order submitted successfully")
	}
	return &Envelope{Success: true}, nil
}

func (s *MockSource) chatEndpoint(method string, body interface{}) (*Envelope, error) {
	switch method {
	case "GET":
		return envelope(s.messages, "")
	case "POST":
		var msg ChatMessage
		if err := decodeBody(body, &msg); err != nil {
			return nil, err
		}
		msg.ID = mintID()
		if msg.Timestamp.IsZero() {
			msg.Timestamp = time.Now()
		}
		s.messages = append(s.messages, msg)
		return envelope(msg, "Message sent")
	}
	return &Envelope{Success: true}, nil
}
