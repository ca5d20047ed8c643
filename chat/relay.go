package chat

import (
	"context"
	"errors"
	"log"
	"sync"

	"gulshan-laundry/client"
)

var ErrNotConnected = errors.New("relay is not connected")

// Relay joins one side of the chat: the admin-wide channel for the back
// office, a per-customer channel otherwise. Inbound newMessage events are
// de-duplicated by message ID before they reach local state, at most once
// per ID; everything else about delivery is the transport's concern.
type Relay struct {
	transport Transport
	dedup     Deduper

	mu         sync.Mutex
	connected  bool
	admin      bool
	customerID string
	channel    string
	messages   []client.ChatMessage
	handlers   []func(client.ChatMessage)
}

func NewRelay(transport Transport, dedup Deduper) *Relay {
	return &Relay{transport: transport, dedup: dedup}
}

// Connect announces this participant on its channel and starts consuming
// inbound events until the context is cancelled.
func (r *Relay) Connect(ctx context.Context, customerID string, admin bool) error {
	r.mu.Lock()
	r.admin = admin
	r.customerID = customerID
	if admin {
		r.channel = AdminChannel
	} else {
		r.channel = CustomerChannel(customerID)
	}
	channel := r.channel
	r.connected = true
	r.mu.Unlock()

	joinType := EventJoin
	if admin {
		joinType = EventAdminJoin
	}
	if err := r.transport.Publish(ctx, Event{Type: joinType, Channel: channel}); err != nil {
		return err
	}

	go func() {
		if err := r.transport.Subscribe(ctx, channel, r.receive); err != nil && ctx.Err() == nil {
			log.Printf("[chat] subscription ended: %v", err)
		}
	}()
	return nil
}

// Send publishes an outbound message: sendMessage to the admin channel for
// customers, adminReply to the recipient's channel for admins.
func (r *Relay) Send(ctx context.Context, msg client.ChatMessage) error {
	r.mu.Lock()
	if !r.connected {
		r.mu.Unlock()
		return ErrNotConnected
	}
	admin := r.admin
	customerID := r.customerID
	r.mu.Unlock()

	event := Event{Message: msg}
	if admin {
		event.Type = EventAdminReply
		event.Channel = CustomerChannel(msg.Recipient)
	} else {
		event.Type = EventSendMessage
		event.Channel = AdminChannel
		event.Message.Sender = customerID
	}
	return r.transport.Publish(ctx, event)
}

// OnNewMessage registers a callback invoked for every inbound message that
// survives de-duplication.
func (r *Relay) OnNewMessage(fn func(client.ChatMessage)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, fn)
}

// Messages returns a copy of the locally accumulated message view.
func (r *Relay) Messages() []client.ChatMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]client.ChatMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

func (r *Relay) receive(event Event) {
	if event.Type != EventNewMessage {
		return
	}
	seen, err := r.dedup.Seen(context.Background(), event.Message.ID)
	if err != nil {
		log.Printf("[chat] dedup check failed: %v", err)
		return
	}
	if seen {
		return
	}

	r.mu.Lock()
	r.messages = append(r.messages, event.Message)
	handlers := make([]func(client.ChatMessage), len(r.handlers))
	copy(handlers, r.handlers)
	r.mu.Unlock()

	for _, fn := range handlers {
		fn(event.Message)
	}
}
