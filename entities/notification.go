package entities

import "time"

const (
	NotifySent   = "sent"
	NotifyFailed = "failed"
)

type Notification struct {
	NotificationID uint           `gorm:"primaryKey" json:"notification_id"`
	Type           string         `gorm:"index" json:"type"` // email|sms|push
	To             string         `json:"to"`
	Payload        map[string]any `gorm:"serializer:json" json:"payload,omitempty"`
	Status         string         `gorm:"index" json:"status"` // sent|failed
	Error          string         `json:"error,omitempty"`
	CreatedAt      time.Time
}

type EventLog struct {
	EventID   uint           `gorm:"primaryKey" json:"event_id"`
	Type      string         `gorm:"index" json:"type"`
	Payload   map[string]any `gorm:"serializer:json" json:"payload,omitempty"`
	CreatedAt time.Time
}
