package entities

import "time"

type Contact struct {
	ContactID uint `gorm:"primaryKey" json:"contact_id"`
	// uniqueness only applies to contacts that have an email; phone-only
	// contacts all persist an empty string
	Email      string   `gorm:"index:idx_contacts_email,unique,where:email <> ''" json:"email,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	FirstName  string   `json:"first_name,omitempty"`
	LastName   string   `json:"last_name,omitempty"`
	City       string   `json:"city,omitempty"`
	Tags       []string `gorm:"serializer:json" json:"tags,omitempty"`
	OptInEmail bool     `json:"opt_in_email"`
	OptInSMS   bool     `json:"opt_in_sms"`
	OptInPush  bool     `json:"opt_in_push"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Segment struct {
	SegmentID uint           `gorm:"primaryKey" json:"segment_id"`
	Name      string         `json:"name"`
	Rules     map[string]any `gorm:"serializer:json" json:"rules,omitempty"` // e.g. {"tag":"karnetowicz"}
	CreatedAt time.Time
	UpdatedAt time.Time
}
