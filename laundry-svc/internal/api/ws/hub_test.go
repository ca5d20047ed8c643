package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gulshan-laundry/laundry-svc/internal/domain"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type chatServiceStub struct {
	mock.Mock
}

func (m *chatServiceStub) Send(ctx context.Context, msg *domain.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *chatServiceStub) List() ([]domain.ChatMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	assert.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHubDeliversToAdminRoom(t *testing.T) {
	chat := new(chatServiceStub)
	hub := NewHub(chat)
	server := httptest.NewServer(hub)
	defer server.Close()

	admin := dial(t, server)
	assert.NoError(t, admin.WriteJSON(Frame{Type: "adminJoin"}))

	customer := dial(t, server)
	assert.NoError(t, customer.WriteJSON(Frame{Type: "join", CustomerID: "cust-7"}))

	// Registration happens on the read loop; give it a moment.
	time.Sleep(50 * time.Millisecond)

	msg := domain.ChatMessage{ID: "m1", Sender: "cust-7", Content: "is my order ready?"}
	hub.SendToAdmins(Frame{Type: "newMessage", Message: msg})

	admin.SetReadDeadline(time.Now().Add(time.Second))
	var got Frame
	assert.NoError(t, admin.ReadJSON(&got))
	assert.Equal(t, "newMessage", got.Type)
	assert.Equal(t, "m1", got.Message.ID)
}

func TestHubDeliversToCustomerRoom(t *testing.T) {
	chat := new(chatServiceStub)
	hub := NewHub(chat)
	server := httptest.NewServer(hub)
	defer server.Close()

	customer := dial(t, server)
	assert.NoError(t, customer.WriteJSON(Frame{Type: "join", CustomerID: "cust-7"}))
	time.Sleep(50 * time.Millisecond)

	msg := domain.ChatMessage{ID: "m2", Sender: "admin", Recipient: "cust-7", Content: "on its way"}
	hub.SendToCustomer("cust-7", Frame{Type: "newMessage", Message: msg})

	customer.SetReadDeadline(time.Now().Add(time.Second))
	var got Frame
	assert.NoError(t, customer.ReadJSON(&got))
	assert.Equal(t, "m2", got.Message.ID)
}

func TestHubStoresInboundMessages(t *testing.T) {
	stored := make(chan *domain.ChatMessage, 1)
	chat := new(chatServiceStub)
	chat.On("Send", mock.Anything, mock.AnythingOfType("*domain.ChatMessage")).
		Run(func(args mock.Arguments) {
			stored <- args.Get(1).(*domain.ChatMessage)
		}).
		Return(nil).Once()

	hub := NewHub(chat)
	server := httptest.NewServer(hub)
	defer server.Close()

	customer := dial(t, server)
	assert.NoError(t, customer.WriteJSON(Frame{Type: "join", CustomerID: "cust-7"}))
	assert.NoError(t, customer.WriteJSON(Frame{
		Type:    "sendMessage",
		Message: domain.ChatMessage{Content: "is my order ready?"},
	}))

	select {
	case msg := <-stored:
		assert.Equal(t, "cust-7", msg.Sender)
		assert.Equal(t, "is my order ready?", msg.Content)
	case <-time.After(time.Second):
		t.Fatal("message was never stored")
	}
}

func TestConsumerDeliverRouting(t *testing.T) {
	hub := NewHub(nil)
	server := httptest.NewServer(hub)
	defer server.Close()

	customer := dial(t, server)
	assert.NoError(t, customer.WriteJSON(Frame{Type: "join", CustomerID: "cust-7"}))
	time.Sleep(50 * time.Millisecond)

	consumer := NewConsumer(nil, hub)
	consumer.Deliver(domain.ChatEvent{
		Type:    "newMessage",
		Channel: "chat.customer.cust-7",
		Message: domain.ChatMessage{ID: "m3", Content: "picked up"},
	})

	customer.SetReadDeadline(time.Now().Add(time.Second))
	var got Frame
	assert.NoError(t, customer.ReadJSON(&got))
	assert.Equal(t, "m3", got.Message.ID)
}
