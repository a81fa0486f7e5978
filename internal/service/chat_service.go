package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ChesterTeam/UniMarket/internal/model"
	"github.com/ChesterTeam/UniMarket/internal/repository"
)

// cannedReplies simulate the counterpart answering. The reply is picked
// deterministically from the message body so conversations replay stably.
var cannedReplies = []string{
	"Hi! Yes, it's still available.",
	"Sure, when would you like to meet?",
	"I can do a small discount if you pick it up today.",
	"Thanks for your interest! Any questions about the condition?",
	"Sorry for the late reply. The item is in great shape.",
}

// ChatService handles listing conversations. When simulation is on, a
// message to a listing's owner is answered with a canned auto-reply,
// mirroring the demo chat the browser client shipped.
type ChatService struct {
	messages *repository.MessageRepository
	listings *repository.ListingRepository
	users    *repository.UserRepository
	simulate bool
}

func NewChatService(
	messages *repository.MessageRepository,
	listings *repository.ListingRepository,
	users *repository.UserRepository,
	simulate bool,
) *ChatService {
	return &ChatService{messages: messages, listings: listings, users: users, simulate: simulate}
}

// Send stores a message on a listing. An empty receiver defaults to the
// listing's owner. Returns the stored message and, when the simulator
// answered, the auto-reply.
func (s *ChatService) Send(ctx context.Context, senderID, listingID, receiverID, body string) (*model.Message, *model.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, nil, fmt.Errorf("%w: message body is required", ErrInvalidInput)
	}

	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, nil, fmt.Errorf("ChatService.Send: %w", err)
	}
	if receiverID == "" {
		receiverID = listing.SellerID
	}
	if receiverID == senderID {
		return nil, nil, fmt.Errorf("%w: cannot message yourself", ErrInvalidInput)
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: receiver %s not found", ErrInvalidInput, receiverID)
		}
		return nil, nil, fmt.Errorf("ChatService.Send: %w", err)
	}

	msg := &model.Message{
		ID:         uuid.NewString(),
		ListingID:  listingID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
		CreatedAt:  model.Now(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, nil, fmt.Errorf("ChatService.Send: %w", err)
	}

	if !s.simulate || receiverID != listing.SellerID {
		return msg, nil, nil
	}
	reply := &model.Message{
		ID:          uuid.NewString(),
		ListingID:   listingID,
		SenderID:    receiverID,
		ReceiverID:  senderID,
		Body:        cannedReplies[len(body)%len(cannedReplies)],
		IsAutoReply: true,
		CreatedAt:   model.Now(),
	}
	if err := s.messages.Create(ctx, reply); err != nil {
		return nil, nil, fmt.Errorf("ChatService.Send: %w", err)
	}
	return msg, reply, nil
}

// Conversation returns the messages between the user and the counterpart on
// one listing, oldest first.
func (s *ChatService) Conversation(ctx context.Context, userID, listingID string) ([]model.Message, error) {
	msgs, err := s.messages.Conversation(ctx, listingID, userID)
	if err != nil {
		return nil, fmt.Errorf("ChatService.Conversation: %w", err)
	}
	return msgs, nil
}

// MarkRead flags a message as read on behalf of its receiver.
func (s *ChatService) MarkRead(ctx context.Context, userID, messageID string) error {
	if err := s.messages.MarkRead(ctx, messageID, userID); err != nil {
		return fmt.Errorf("ChatService.MarkRead: %w", err)
	}
	return nil
}

// UnreadCount counts messages waiting for the user.
func (s *ChatService) UnreadCount(ctx context.Context, userID string) (int, error) {
	n, err := s.messages.UnreadCount(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("ChatService.UnreadCount: %w", err)
	}
	return n, nil
}
