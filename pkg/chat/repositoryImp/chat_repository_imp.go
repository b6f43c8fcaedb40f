package repositoryImp

import (
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/chat/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ChatRepository { return &repo{db} }

func (r *repo) CreateConversation(cv *entities.Conversation) error { return r.db.Create(cv).Error }

func (r *repo) ConversationByToken(token string) (*entities.Conversation, error) {
	var cv entities.Conversation
	err := r.db.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("messages.created_at ASC, messages.message_id ASC")
	}).First(&cv, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &cv, nil
}

func (r *repo) ListConversations(limit int) ([]entities.Conversation, error) {
	q := r.db.Order("updated_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var cvs []entities.Conversation
	return cvs, q.Find(&cvs).Error
}

func (r *repo) CreateMessage(m *entities.Message) error { return r.db.Create(m).Error }

func (r *repo) MessageByID(id uint) (*entities.Message, error) {
	var m entities.Message
	if err := r.db.First(&m, "message_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repo) SetRating(messageID uint, rating int) error {
	res := r.db.Model(&entities.Message{}).Where("message_id = ?", messageID).Update("rating", rating)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repo) LogEvent(eventType string, payload map[string]any) error {
	return r.db.Create(&entities.EventLog{Type: eventType, Payload: payload}).Error
}
