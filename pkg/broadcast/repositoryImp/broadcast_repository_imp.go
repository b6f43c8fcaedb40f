package repositoryImp

import (
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/broadcast/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.BroadcastRepository { return &repo{db} }

func (r *repo) CreateNotification(n *entities.Notification) error { return r.db.Create(n).Error }

func (r *repo) LogEvent(eventType string, payload map[string]any) error {
	return r.db.Create(&entities.EventLog{Type: eventType, Payload: payload}).Error
}
