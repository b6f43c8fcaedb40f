package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/broadcast"
	"clubchat/pkg/broadcast/repository"
	"clubchat/pkg/broadcast/service"
	contactrepo "clubchat/pkg/contact/repository"
)

type Svc struct {
	r        repository.BroadcastRepository
	contacts contactrepo.ContactRepository
	notifier broadcast.Notifier
}

func New(r repository.BroadcastRepository, contacts contactrepo.ContactRepository, n broadcast.Notifier) *Svc {
	if n == nil {
		n = broadcast.NewMockNotifier()
	}
	return &Svc{r: r, contacts: contacts, notifier: n}
}

func (s *Svc) Send(ctx context.Context, in service.SendInput) (*service.SendResult, error) {
	if strings.TrimSpace(in.Subject) == "" || strings.TrimSpace(in.Content) == "" || in.SegmentID == 0 {
		return nil, service.ErrMissing
	}
	if len(in.Channels) == 0 {
		return nil, service.ErrNoChannels
	}

	seg, err := s.contacts.SegmentByID(in.SegmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrSegmentNotFound
		}
		return nil, err
	}
	recipients, err := s.contacts.BySegment(seg)
	if err != nil {
		return nil, fmt.Errorf("resolve segment: %w", err)
	}

	res := &service.SendResult{
		TotalContacts: len(recipients),
		Channels:      in.Channels,
		DryRun:        in.DryRun,
	}

	if in.DryRun {
		if err := s.r.LogEvent("broadcast_dry_run", map[string]any{
			"subject":       in.Subject,
			"segment_id":    in.SegmentID,
			"channels":      in.Channels,
			"contact_count": len(recipients),
		}); err != nil {
			log.Printf("[broadcast] event log: %v", err)
		}
		return res, nil
	}

	for _, contact := range recipients {
		for _, channel := range in.Channels {
			to, attempted, sendErr := s.deliver(ctx, channel, contact, in)
			if !attempted {
				continue // missing address or opted out
			}
			status := entities.NotifySent
			errMsg := ""
			if sendErr != nil {
				status = entities.NotifyFailed
				errMsg = sendErr.Error()
				res.Failed++
				res.Errors = append(res.Errors, fmt.Sprintf("%s to %s: %v", channel, to, sendErr))
			} else {
				res.Sent++
			}
			if err := s.r.CreateNotification(&entities.Notification{
				Type:   channel,
				To:     to,
				Status: status,
				Error:  errMsg,
				Payload: map[string]any{
					"subject":    in.Subject,
					"contact_id": contact.ContactID,
				},
			}); err != nil {
				log.Printf("[broadcast] notification row: %v", err)
			}
		}
	}

	if err := s.r.LogEvent("broadcast_sent", map[string]any{
		"subject":    in.Subject,
		"segment_id": in.SegmentID,
		"channels":   in.Channels,
		"sent":       res.Sent,
		"failed":     res.Failed,
	}); err != nil {
		log.Printf("[broadcast] event log: %v", err)
	}
	return res, nil
}

// deliver sends over one channel if the contact is reachable and opted in.
func (s *Svc) deliver(ctx context.Context, channel string, c entities.Contact, in service.SendInput) (to string, attempted bool, err error) {
	switch channel {
	case entities.ChannelEmail:
		if c.Email == "" || !c.OptInEmail {
			return "", false, nil
		}
		return c.Email, true, s.notifier.SendEmail(ctx, c.Email, in.Subject, in.Content)
	case entities.ChannelSMS:
		if c.Phone == "" || !c.OptInSMS {
			return "", false, nil
		}
		return c.Phone, true, s.notifier.SendSMS(ctx, c.Phone, in.Content)
	case entities.ChannelPush:
		if !c.OptInPush {
			return "", false, nil
		}
		to = fmt.Sprintf("contact-%d", c.ContactID)
		return to, true, s.notifier.SendPush(ctx, to, in.Subject, in.Content)
	}
	return "", false, nil
}
