package entities

import "time"

const (
	ChannelWeb   = "web"
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelPush  = "push"
)

const (
	FromUser = "user"
	FromBot  = "bot"
)

type Conversation struct {
	ConversationID uint   `gorm:"primaryKey" json:"conversation_id"`
	Token          string `gorm:"uniqueIndex" json:"token"` // opaque id handed to the widget
	Channel        string `gorm:"index" json:"channel"`     // web|email|sms|push
	ContactID      *uint  `gorm:"index" json:"contact_id,omitempty"`
	StaffID        string `json:"staff_id,omitempty"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Messages []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

type Message struct {
	MessageID      uint   `gorm:"primaryKey" json:"message_id"`
	ConversationID uint   `gorm:"index" json:"conversation_id"`
	From           string `json:"from"` // user|bot
	Content        string `json:"content"`
	Rating         *int   `json:"rating,omitempty"` // +1|-1, set post-hoc
	StaffID        string `json:"staff_id,omitempty"`
	CreatedAt      time.Time
}

// ChunkRef describes a retrieved chunk that grounded a bot reply. It is part
// of the chat response payload only, never persisted.
type ChunkRef struct {
	ChunkID      uint    `json:"chunk_id"`
	ArticleTitle string  `json:"article_title,omitempty"`
	Content      string  `json:"content"`
	Score        float64 `json:"score"`
}
