package serviceImp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/ai"
	chatrepo "clubchat/pkg/chat/repositoryImp"
	"clubchat/pkg/chat/service"
	"clubchat/pkg/kb/chunker"
	kbrepo "clubchat/pkg/kb/repositoryImp"
	kbservice "clubchat/pkg/kb/service"
	kbsvc "clubchat/pkg/kb/serviceImp"
)

const embedDim = 1536

func newTestChat(t *testing.T) (*Svc, kbservice.KBService) {
	return newTestChatWith(t, ai.NewMock(embedDim))
}

func newTestChatWith(t *testing.T, client ai.Client) (*Svc, kbservice.KBService) {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.KnowledgeArticle{}, &entities.ArticleChunk{},
		&entities.Conversation{}, &entities.Message{}, &entities.EventLog{},
	))

	kb := kbsvc.New(kbrepo.New(db), client, chunker.New(0), embedDim)
	return New(chatrepo.New(db), kb, client, 3), kb
}

func seedArticles(t *testing.T, kb kbservice.KBService) {
	t.Helper()
	ctx := context.Background()

	_, n, err := kb.CreateArticle(ctx, kbservice.ArticleInput{
		Title:  "Stadion",
		Slug:   "stadion",
		Status: entities.ArticlePublished,
		Markdown: "# Stadion\n\n" +
			"Stadion klubu znajduje się przy alei Piłsudskiego 138 w Łodzi.",
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, n, err = kb.CreateArticle(ctx, kbservice.ArticleInput{
		Title:    "Sklep",
		Slug:     "sklep",
		Status:   entities.ArticlePublished,
		Markdown: "Sklep kibica otwarty od poniedziałku do piątku w godzinach od dziesiątej do osiemnastej.",
	})
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestAnswerRecordsBothTurns(t *testing.T) {
	svc, kb := newTestChat(t)
	seedArticles(t, kb)

	res, err := svc.Answer(context.Background(), service.AnswerInput{Message: "Gdzie jest stadion?"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	assert.Equal(t, entities.FromUser, res.UserMessage.From)
	assert.Equal(t, "Gdzie jest stadion?", res.UserMessage.Content)
	assert.Equal(t, entities.FromBot, res.BotMessage.From)
	assert.NotEmpty(t, res.BotMessage.Content)
	assert.True(t, res.BotMessage.CreatedAt.After(res.UserMessage.CreatedAt))

	cv, err := svc.History(res.Token)
	require.NoError(t, err)
	require.Len(t, cv.Messages, 2)
	assert.Equal(t, entities.FromUser, cv.Messages[0].From)
	assert.Equal(t, entities.FromBot, cv.Messages[1].From)
}

func TestAnswerRetrievesRelevantChunkFirst(t *testing.T) {
	svc, kb := newTestChat(t)
	seedArticles(t, kb)

	res, err := svc.Answer(context.Background(), service.AnswerInput{Message: "Gdzie jest stadion?"})
	require.NoError(t, err)

	require.NotEmpty(t, res.Context)
	assert.Equal(t, "Stadion", res.Context[0].ArticleTitle)
	assert.Contains(t, res.Context[0].Content, "Piłsudskiego")
}

func TestAnswerWithoutKnowledgeBase(t *testing.T) {
	svc, _ := newTestChat(t)

	res, err := svc.Answer(context.Background(), service.AnswerInput{Message: "Pytanie bez słów kluczowych"})
	require.NoError(t, err)

	assert.Empty(t, res.Context)
	assert.NotEmpty(t, res.BotMessage.Content)
}

func TestAnswerContinuesConversation(t *testing.T) {
	svc, kb := newTestChat(t)
	seedArticles(t, kb)
	ctx := context.Background()

	first, err := svc.Answer(ctx, service.AnswerInput{Message: "Cześć!"})
	require.NoError(t, err)

	second, err := svc.Answer(ctx, service.AnswerInput{Token: first.Token, Message: "Gdzie jest stadion?"})
	require.NoError(t, err)
	assert.Equal(t, first.Token, second.Token)

	cv, err := svc.History(first.Token)
	require.NoError(t, err)
	assert.Len(t, cv.Messages, 4)
}

// unavailableAI behaves like a provider whose completion and embedding
// backends are both down.
type unavailableAI struct{}

func (unavailableAI) GenerateResponse(_ context.Context, _, _ string) string { return ai.Apology }
func (unavailableAI) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	return nil, errors.New("provider unavailable")
}

func TestAnswerWhenGenerationUnavailable(t *testing.T) {
	svc, _ := newTestChatWith(t, unavailableAI{})

	res, err := svc.Answer(context.Background(), service.AnswerInput{Message: "Gdzie jest stadion?"})
	require.NoError(t, err)

	assert.Equal(t, ai.Apology, res.BotMessage.Content)
	assert.Empty(t, res.Context)

	// both turns survive the outage
	cv, err := svc.History(res.Token)
	require.NoError(t, err)
	require.Len(t, cv.Messages, 2)
	assert.Equal(t, entities.FromUser, cv.Messages[0].From)
	assert.Equal(t, "Gdzie jest stadion?", cv.Messages[0].Content)
	assert.Equal(t, entities.FromBot, cv.Messages[1].From)
	assert.Equal(t, ai.Apology, cv.Messages[1].Content)
}

func TestAnswerValidation(t *testing.T) {
	svc, _ := newTestChat(t)
	ctx := context.Background()

	_, err := svc.Answer(ctx, service.AnswerInput{Message: "   "})
	assert.ErrorIs(t, err, service.ErrEmptyMessage)

	_, err = svc.Answer(ctx, service.AnswerInput{Token: "no-such-token", Message: "Hej"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRateLastWriteWins(t *testing.T) {
	svc, _ := newTestChat(t)

	res, err := svc.Answer(context.Background(), service.AnswerInput{Message: "Cześć!"})
	require.NoError(t, err)
	botID := res.BotMessage.MessageID

	m, err := svc.Rate(botID, 1)
	require.NoError(t, err)
	require.NotNil(t, m.Rating)
	assert.Equal(t, 1, *m.Rating)

	m, err = svc.Rate(botID, -1)
	require.NoError(t, err)
	require.NotNil(t, m.Rating)
	assert.Equal(t, -1, *m.Rating)
}

func TestRateValidation(t *testing.T) {
	svc, _ := newTestChat(t)

	res, err := svc.Answer(context.Background(), service.AnswerInput{Message: "Cześć!"})
	require.NoError(t, err)

	_, err = svc.Rate(res.BotMessage.MessageID, 0)
	assert.ErrorIs(t, err, service.ErrInvalidRating)

	_, err = svc.Rate(res.BotMessage.MessageID, 5)
	assert.ErrorIs(t, err, service.ErrInvalidRating)

	_, err = svc.Rate(99999, 1)
	assert.ErrorIs(t, err, service.ErrNotFound)

	// the rejected writes left nothing behind
	m, err := svc.Rate(res.BotMessage.MessageID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, *m.Rating)
}

func TestHistoryUnknownToken(t *testing.T) {
	svc, _ := newTestChat(t)

	_, err := svc.History("missing")
	assert.ErrorIs(t, err, service.ErrNotFound)
}
