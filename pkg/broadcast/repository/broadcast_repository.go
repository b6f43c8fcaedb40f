package repository

import "clubchat/entities"

type BroadcastRepository interface {
	CreateNotification(*entities.Notification) error
	LogEvent(eventType string, payload map[string]any) error
}
