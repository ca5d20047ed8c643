package ws

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"gulshan-laundry/laundry-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

const customerChannelPrefix = "chat.customer."

// Consumer reads the chat topic and pushes newMessage events to the
// websocket rooms the event's channel addresses.
type Consumer struct {
	Reader *kafka.Reader
	Hub    *Hub
}

func NewConsumer(reader *kafka.Reader, hub *Hub) *Consumer {
	return &Consumer{Reader: reader, Hub: hub}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting chat consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.ChatEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "newMessage" {
			c.Deliver(event)
		}
	}
}

func (c *Consumer) Deliver(event domain.ChatEvent) {
	frame := Frame{Type: frameNewMessage, Message: event.Message}
	switch {
	case event.Channel == "chat.admin":
		c.Hub.SendToAdmins(frame)
	case strings.HasPrefix(event.Channel, customerChannelPrefix):
		c.Hub.SendToCustomer(strings.TrimPrefix(event.Channel, customerChannelPrefix), frame)
	}
}
