package tests

import (
	"context"
	"testing"

	"gulshan-laundry/laundry-svc/internal/domain"
	"gulshan-laundry/laundry-svc/internal/mocks"
	"gulshan-laundry/laundry-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		order   *domain.Order
		wantErr bool
	}{
		{
			name:    "invalid: no name",
			order:   &domain.Order{Phone: "01711111111", Address: "Gulshan 2", PickupDate: "2025-06-01"},
			wantErr: true,
		},
		{
			name:    "invalid: no pickup date",
			order:   &domain.Order{Name: "John Doe", Phone: "01711111111", Address: "Gulshan 2"},
			wantErr: true,
		},
		{
			name:    "valid order",
			order:   &domain.Order{Name: "John Doe", Phone: "01711111111", Address: "Gulshan 2", PickupDate: "2025-06-01"},
			wantErr: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			mockQR := new(mocks.QRGenerator)
			svc := service.NewOrderService(mockRepo, mockQR)

			if !testCase.wantErr {
				mockRepo.On("CreateOrder", testCase.order).Return(nil)
				mockQR.On("Generate", mock.Anything).Return([]byte("qr"), nil)
				mockRepo.On("SaveQRCode", mock.Anything, mock.Anything).Return(nil)
			}

			err := svc.Create(testCase.order)

			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidOrder)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, testCase.order.ID)
				assert.Equal(t, domain.StatusPending, testCase.order.Status)
			}
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		rows     int64
		repoErr  error
		wantErr  error
		skipRepo bool
	}{
		{name: "valid transition", status: domain.StatusConfirmed, rows: 1},
		{name: "unknown status", status: "shipped", wantErr: service.ErrInvalidStatus, skipRepo: true},
		{name: "missing order", status: domain.StatusCompleted, rows: 0, wantErr: service.ErrOrderNotFound},
		{name: "database error", status: domain.StatusCancelled, repoErr: assert.AnError, wantErr: assert.AnError},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.OrderRepository)
			svc := service.NewOrderService(mockRepo, nil)

			if !testCase.skipRepo {
				mockRepo.On("UpdateOrderStatus", "1001", testCase.status).Return(testCase.rows, testCase.repoErr).Once()
			}

			err := svc.UpdateStatus("1001", testCase.status)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_GetQRCodeRegenerates(t *testing.T) {
	mockRepo := new(mocks.OrderRepository)
	mockQR := new(mocks.QRGenerator)
	svc := service.NewOrderService(mockRepo, mockQR)

	mockRepo.On("GetQRCode", "1001").Return([]byte{}, nil).Once()
	mockQR.On("Generate", "1001").Return([]byte("png"), nil).Once()
	mockRepo.On("SaveQRCode", "1001", []byte("png")).Return(nil).Once()

	qr, err := svc.GetQRCode("1001")
	assert.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)
	mockRepo.AssertExpectations(t)
}

func TestPackageService_Create(t *testing.T) {
	tests := []struct {
		name    string
		pkg     *domain.Package
		wantErr bool
	}{
		{name: "valid package", pkg: &domain.Package{Name: "Basic Laundry", Price: 15.99}},
		{name: "missing name", pkg: &domain.Package{Price: 15.99}, wantErr: true},
		{name: "non-positive price", pkg: &domain.Package{Name: "Basic Laundry"}, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.PackageRepository)
			svc := service.NewPackageService(mockRepo)

			if !testCase.wantErr {
				mockRepo.On("CreatePackage", testCase.pkg).Return(nil).Once()
			}

			err := svc.Create(testCase.pkg)

			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidPackage)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, testCase.pkg.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  bool
	}{
		{name: "valid credentials", email: "admin@example.com", password: "password123"},
		{name: "wrong password", email: "admin@example.com", password: "nope", wantErr: true},
		{name: "wrong email", email: "someone@example.com", password: "password123", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			sessions := new(mocks.SessionStore)
			svc := service.NewAuthService("admin@example.com", "password123", sessions)

			if !testCase.wantErr {
				sessions.On("SaveSession", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
			}

			session, err := svc.Login(context.Background(), testCase.email, testCase.password)

			if testCase.wantErr {
				assert.ErrorIs(t, err, service.ErrInvalidCredentials)
			} else {
				assert.NoError(t, err)
				assert.Len(t, session.Token, 64)
				assert.Equal(t, "admin", session.User.Role)
			}
			sessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_Verify(t *testing.T) {
	sessions := new(mocks.SessionStore)
	svc := service.NewAuthService("admin@example.com", "password123", sessions)

	user := &domain.AdminUser{ID: "1", Role: "admin"}
	sessions.On("GetSession", mock.Anything, "good-token").Return(user, nil).Once()
	sessions.On("GetSession", mock.Anything, "bad-token").Return(nil, assert.AnError).Once()

	got, err := svc.Verify(context.Background(), "good-token")
	assert.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.Verify(context.Background(), "bad-token")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	_, err = svc.Verify(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestChatService_Send(t *testing.T) {
	mockRepo := new(mocks.MessageRepository)
	publisher := new(mocks.ChatPublisher)
	svc := service.NewChatService(mockRepo, publisher)

	mockRepo.On("SaveMessage", mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Once()
	publisher.On("PublishMessage", mock.Anything, mock.AnythingOfType("domain.ChatEvent")).Return(nil).Twice()

	msg := &domain.ChatMessage{Sender: "cust-7", Content: "is my order ready?"}
	err := svc.Send(context.Background(), msg)

	assert.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.False(t, msg.Timestamp.IsZero())
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChatService_SendEmpty(t *testing.T) {
	svc := service.NewChatService(new(mocks.MessageRepository), nil)
	err := svc.Send(context.Background(), &domain.ChatMessage{Sender: "cust-7"})
	assert.ErrorIs(t, err, service.ErrEmptyMessage)
}

func TestDefaultQRGenerator(t *testing.T) {
	gen := service.DefaultQRGenerator{BaseURL: "http://localhost:8080"}
	qr, err := gen.Generate("1001")

	assert.NoError(t, err)
	assert.NotEmpty(t, qr)
}
