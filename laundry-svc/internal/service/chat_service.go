package service

import (
	"context"
	"errors"
	"log"
	"time"

	"gulshan-laundry/laundry-svc/internal/domain"
)

var ErrEmptyMessage = errors.New("message content is required")

// ChatService stores every message and fans it out on the chat topic: one
// event for the admin channel, one for the customer's own channel. Publish
// failures are logged, not surfaced; the message is already persisted.
type ChatService struct {
	repo      MessageRepository
	publisher ChatPublisher
}

func NewChatService(repo MessageRepository, publisher ChatPublisher) *ChatService {
	return &ChatService{repo: repo, publisher: publisher}
}

func (s *ChatService) Send(ctx context.Context, msg *domain.ChatMessage) error {
	if msg.Content == "" {
		return ErrEmptyMessage
	}
	msg.ID = mintID()
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	if err := s.repo.SaveMessage(msg); err != nil {
		return err
	}

	if s.publisher == nil {
		return nil
	}
	customerID := msg.Sender
	if msg.Recipient != "" {
		customerID = msg.Recipient
	}
	channels := []string{"chat.admin", "chat.customer." + customerID}
	for _, channel := range channels {
		event := domain.ChatEvent{Type: "newMessage", Channel: channel, Message: *msg}
		if err := s.publisher.PublishMessage(ctx, event); err != nil {
			log.Printf("[laundry-svc] error publishing chat event: %v", err)
		}
	}
	return nil
}

func (s *ChatService) List() ([]domain.ChatMessage, error) {
	return s.repo.ListMessages()
}

var _ ChatServiceInterface = (*ChatService)(nil)
