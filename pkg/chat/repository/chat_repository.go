package repository

import "clubchat/entities"

type ChatRepository interface {
	CreateConversation(*entities.Conversation) error
	ConversationByToken(token string) (*entities.Conversation, error)
	ListConversations(limit int) ([]entities.Conversation, error)

	CreateMessage(*entities.Message) error
	MessageByID(id uint) (*entities.Message, error)
	SetRating(messageID uint, rating int) error

	LogEvent(eventType string, payload map[string]any) error
}
