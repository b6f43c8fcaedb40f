package serviceImp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"clubchat/entities"
	ticketrepo "clubchat/pkg/ticket/repositoryImp"
)

func newTestReport(t *testing.T) *Svc {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Conversation{}, &entities.Message{},
		&entities.KnowledgeArticle{}, &entities.ArticleChunk{},
		&entities.Contact{}, &entities.Ticket{},
	))

	up, down := 1, -1
	seed := []any{
		&entities.Conversation{Token: "t1", Channel: entities.ChannelWeb},
		&entities.Message{ConversationID: 1, From: entities.FromUser, Content: "q"},
		&entities.Message{ConversationID: 1, From: entities.FromBot, Content: "a", Rating: &up},
		&entities.Message{ConversationID: 1, From: entities.FromBot, Content: "b", Rating: &down},
		&entities.KnowledgeArticle{Title: "A", Slug: "a", Status: entities.ArticlePublished},
		&entities.ArticleChunk{ArticleID: 1, Content: "c"},
		&entities.Contact{Email: "x@example.com"},
		&entities.Ticket{Subject: "S", Description: "D", Status: entities.TicketOpen, Priority: "normal"},
		&entities.Ticket{Subject: "S2", Description: "D2", Status: entities.TicketClosed, Priority: "high"},
	}
	for _, row := range seed {
		require.NoError(t, db.Create(row).Error)
	}
	return New(db, ticketrepo.New(db))
}

func TestSummary(t *testing.T) {
	svc := newTestReport(t)

	sum, err := svc.Summary()
	require.NoError(t, err)
	assert.EqualValues(t, 1, sum.Conversations)
	assert.EqualValues(t, 3, sum.Messages)
	assert.EqualValues(t, 1, sum.RatingsUp)
	assert.EqualValues(t, 1, sum.RatingsDown)
	assert.EqualValues(t, 1, sum.Articles)
	assert.EqualValues(t, 1, sum.Chunks)
	assert.EqualValues(t, 1, sum.Contacts)
	assert.EqualValues(t, 1, sum.TicketsByStat[entities.TicketOpen])
	assert.EqualValues(t, 1, sum.TicketsByStat[entities.TicketClosed])
}

func TestExportXLSX(t *testing.T) {
	svc := newTestReport(t)

	b, err := svc.ExportXLSX()
	require.NoError(t, err)
	require.NotEmpty(t, b)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Metric", "Value"}, rows[0])
	assert.GreaterOrEqual(t, len(rows), 8)
}
