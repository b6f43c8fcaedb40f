package service

import (
	"context"
	"errors"
)

var (
	ErrMissing         = errors.New("subject, content and segment_id are required")
	ErrSegmentNotFound = errors.New("segment not found")
	ErrNoChannels      = errors.New("at least one channel must be selected")
)

type SendInput struct {
	Subject   string   `json:"subject"`
	Content   string   `json:"content"`
	SegmentID uint     `json:"segment_id"`
	Channels  []string `json:"channels"` // email|sms|push
	DryRun    bool     `json:"dry_run"`
}

type SendResult struct {
	TotalContacts int      `json:"total_contacts"`
	Channels      []string `json:"channels"`
	Sent          int      `json:"sent"`
	Failed        int      `json:"failed"`
	Errors        []string `json:"errors,omitempty"`
	DryRun        bool     `json:"dry_run"`
}

type BroadcastService interface {
	Send(ctx context.Context, in SendInput) (*SendResult, error)
}
