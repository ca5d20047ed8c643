package chat

import (
	"context"
	"encoding/json"
	"log"

	"gulshan-laundry/client"

	"github.com/segmentio/kafka-go"
)

const (
	EventJoin        = "join"
	EventAdminJoin   = "adminJoin"
	EventSendMessage = "sendMessage"
	EventAdminReply  = "adminReply"
	EventNewMessage  = "newMessage"
)

// AdminChannel carries every customer-facing event the back office should
// see. Customers each get their own channel.
const AdminChannel = "chat.admin"

func CustomerChannel(customerID string) string {
	return "chat.customer." + customerID
}

// Event is the unit the transport moves. Channel addresses the recipient
// side; Message is only set for message-bearing event types.
type Event struct {
	Type    string             `json:"type"`
	Channel string             `json:"channel"`
	Message client.ChatMessage `json:"message,omitempty"`
}

// Transport is the pub/sub boundary the relay composes with. No ordering,
// delivery or retry guarantees are assumed; reconnection is the transport's
// problem.
type Transport interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(ctx context.Context, channel string, handle func(Event)) error
}

// KafkaTransport runs all chat traffic through one topic, keyed by channel.
// Each subscriber brings its own reader so consumer groups stay independent.
type KafkaTransport struct {
	Writer    *kafka.Writer
	NewReader func() *kafka.Reader
}

var _ Transport = (*KafkaTransport)(nil)

func (t *KafkaTransport) Publish(ctx context.Context, event Event) error {
	payload, _ := json.Marshal(event)
	return t.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Channel),
		Value: payload,
	})
}

// Subscribe blocks reading the topic until the context is cancelled, passing
// events addressed to the given channel to the handler.
func (t *KafkaTransport) Subscribe(ctx context.Context, channel string, handle func(Event)) error {
	reader := t.NewReader()
	defer reader.Close()

	for {
		message, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Printf("[chat] error reading message: %v", err)
			continue
		}

		var event Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[chat] error unmarshaling event: %v", err)
			continue
		}
		if event.Channel != channel {
			continue
		}
		handle(event)
	}
}
