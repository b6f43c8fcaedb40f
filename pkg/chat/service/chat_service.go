package service

import (
	"context"
	"errors"

	"clubchat/entities"
)

var (
	ErrNotFound      = errors.New("conversation not found")
	ErrEmptyMessage  = errors.New("message is required")
	ErrInvalidRating = errors.New("rating must be +1 or -1")
)

type AnswerInput struct {
	Token     string // empty starts a new conversation
	Message   string
	ContactID *uint
}

// AnswerResult carries both recorded turns plus the chunks that grounded the
// reply. The chunk list is transient observability data, not persisted state.
type AnswerResult struct {
	Token       string              `json:"token"`
	UserMessage entities.Message    `json:"user_message"`
	BotMessage  entities.Message    `json:"bot_message"`
	Context     []entities.ChunkRef `json:"context"`
}

type ChatService interface {
	Answer(ctx context.Context, in AnswerInput) (*AnswerResult, error)
	History(token string) (*entities.Conversation, error)
	Rate(messageID uint, rating int) (*entities.Message, error)
	ListConversations(limit int) ([]entities.Conversation, error)
}
