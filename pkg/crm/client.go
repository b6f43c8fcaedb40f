package crm

import (
	"context"
	"log"

	"clubchat/entities"
)

// Client is the external CRM sync capability. The service only needs contact
// upserts pushed outward; provider wire formats live behind this interface.
type Client interface {
	SyncContact(ctx context.Context, contact *entities.Contact) error
}

type noop struct{}

// NewNoop returns a Client that only logs. Used when no CRM is configured.
func NewNoop() Client { return &noop{} }

func (noop) SyncContact(_ context.Context, c *entities.Contact) error {
	log.Printf("[crm] sync skipped (no provider): contact %d", c.ContactID)
	return nil
}
