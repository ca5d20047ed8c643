package chat

import (
	"context"
	"sync"
	"testing"
	"time"

	"gulshan-laundry/client"

	"github.com/stretchr/testify/assert"
)

// fakeTransport delivers published events synchronously to in-process
// subscribers, keyed by channel.
type fakeTransport struct {
	mu          sync.Mutex
	published   []Event
	subscribers map[string][]func(Event)
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{subscribers: make(map[string][]func(Event))}
}

func (t *fakeTransport) Publish(_ context.Context, event Event) error {
	t.mu.Lock()
	t.published = append(t.published, event)
	handlers := append([]func(Event){}, t.subscribers[event.Channel]...)
	t.mu.Unlock()

	for _, handle := range handlers {
		handle(event)
	}
	return nil
}

func (t *fakeTransport) Subscribe(ctx context.Context, channel string, handle func(Event)) error {
	t.mu.Lock()
	t.subscribers[channel] = append(t.subscribers[channel], handle)
	t.mu.Unlock()
	<-ctx.Done()
	return ctx.Err()
}

func (t *fakeTransport) events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Event{}, t.published...)
}

var _ Transport = (*fakeTransport)(nil)

func waitSubscribed(t *testing.T, transport *fakeTransport, channel string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		transport.mu.Lock()
		defer transport.mu.Unlock()
		return len(transport.subscribers[channel]) > 0
	}, time.Second, 5*time.Millisecond)
}

func TestRelayCustomerConnect(t *testing.T) {
	transport := newFakeTransport()
	relay := NewRelay(transport, NewMemoryDeduper())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, relay.Connect(ctx, "cust-7", false))
	waitSubscribed(t, transport, CustomerChannel("cust-7"))

	events := transport.events()
	assert.Len(t, events, 1)
	assert.Equal(t, EventJoin, events[0].Type)
	assert.Equal(t, "chat.customer.cust-7", events[0].Channel)
}

func TestRelayAdminConnect(t *testing.T) {
	transport := newFakeTransport()
	relay := NewRelay(transport, NewMemoryDeduper())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, relay.Connect(ctx, "", true))
	waitSubscribed(t, transport, AdminChannel)

	events := transport.events()
	assert.Equal(t, EventAdminJoin, events[0].Type)
	assert.Equal(t, AdminChannel, events[0].Channel)
}

func TestRelaySendRouting(t *testing.T) {
	transport := newFakeTransport()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	customer := NewRelay(transport, NewMemoryDeduper())
	assert.NoError(t, customer.Connect(ctx, "cust-7", false))

	admin := NewRelay(transport, NewMemoryDeduper())
	assert.NoError(t, admin.Connect(ctx, "", true))

	assert.NoError(t, customer.Send(ctx, client.ChatMessage{Content: "is my order ready?"}))
	assert.NoError(t, admin.Send(ctx, client.ChatMessage{Recipient: "cust-7", Content: "on its way"}))

	events := transport.events()
	var sends, replies []Event
	for _, event := range events {
		switch event.Type {
		case EventSendMessage:
			sends = append(sends, event)
		case EventAdminReply:
			replies = append(replies, event)
		}
	}

	assert.Len(t, sends, 1)
	assert.Equal(t, AdminChannel, sends[0].Channel)
	assert.Equal(t, "cust-7", sends[0].Message.Sender)

	assert.Len(t, replies, 1)
	assert.Equal(t, CustomerChannel("cust-7"), replies[0].Channel)
}

func TestRelaySendBeforeConnect(t *testing.T) {
	relay := NewRelay(newFakeTransport(), NewMemoryDeduper())
	err := relay.Send(context.Background(), client.ChatMessage{Content: "hello"})
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestRelayDeduplicatesInbound(t *testing.T) {
	transport := newFakeTransport()
	relay := NewRelay(transport, NewMemoryDeduper())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var delivered []client.ChatMessage
	var mu sync.Mutex
	relay.OnNewMessage(func(msg client.ChatMessage) {
		mu.Lock()
		delivered = append(delivered, msg)
		mu.Unlock()
	})

	assert.NoError(t, relay.Connect(ctx, "cust-7", false))
	waitSubscribed(t, transport, CustomerChannel("cust-7"))

	msg := client.ChatMessage{ID: "m1", Content: "your order is ready"}
	event := Event{Type: EventNewMessage, Channel: CustomerChannel("cust-7"), Message: msg}
	assert.NoError(t, transport.Publish(ctx, event))
	assert.NoError(t, transport.Publish(ctx, event))

	other := Event{Type: EventNewMessage, Channel: CustomerChannel("cust-7"),
		Message: client.ChatMessage{ID: "m2", Content: "anything else?"}}
	assert.NoError(t, transport.Publish(ctx, other))

	messages := relay.Messages()
	assert.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)

	mu.Lock()
	assert.Len(t, delivered, 2)
	mu.Unlock()
}

func TestRelayIgnoresNonMessageEvents(t *testing.T) {
	transport := newFakeTransport()
	relay := NewRelay(transport, NewMemoryDeduper())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.NoError(t, relay.Connect(ctx, "cust-7", false))
	waitSubscribed(t, transport, CustomerChannel("cust-7"))

	assert.NoError(t, transport.Publish(ctx, Event{Type: EventJoin, Channel: CustomerChannel("cust-7")}))
	assert.Empty(t, relay.Messages())
}
