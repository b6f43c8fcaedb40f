package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/ai"
	"clubchat/pkg/chat/repository"
	"clubchat/pkg/chat/service"
	kbservice "clubchat/pkg/kb/service"
)

type Svc struct {
	r      repository.ChatRepository
	kb     kbservice.KBService
	client ai.Client
	topK   int
}

func New(r repository.ChatRepository, kb kbservice.KBService, client ai.Client, topK int) *Svc {
	if topK <= 0 {
		topK = 3
	}
	return &Svc{r: r, kb: kb, client: client, topK: topK}
}

func (s *Svc) Answer(ctx context.Context, in service.AnswerInput) (*service.AnswerResult, error) {
	text := strings.TrimSpace(in.Message)
	if text == "" {
		return nil, service.ErrEmptyMessage
	}

	cv, err := s.conversation(in)
	if err != nil {
		return nil, err
	}

	userMsg := entities.Message{
		ConversationID: cv.ConversationID,
		From:           entities.FromUser,
		Content:        text,
		CreatedAt:      time.Now(),
	}
	if err := s.r.CreateMessage(&userMsg); err != nil {
		return nil, fmt.Errorf("record user message: %w", err)
	}

	// Retrieval failures degrade to an uncontexted answer; the assistant
	// must still reply.
	var refs []entities.ChunkRef
	kbContext := ""
	if hits, err := s.retrieve(ctx, text); err != nil {
		log.Printf("[chat] retrieval failed: %v", err)
	} else {
		parts := make([]string, 0, len(hits))
		for _, h := range hits {
			parts = append(parts, h.Chunk.Content)
			refs = append(refs, entities.ChunkRef{
				ChunkID:      h.Chunk.ChunkID,
				ArticleTitle: h.ArticleTitle,
				Content:      h.Chunk.Content,
				Score:        h.Score,
			})
		}
		kbContext = strings.Join(parts, "\n\n")
	}

	reply := s.client.GenerateResponse(ctx, text, kbContext)

	// Bot timestamp must land strictly after the user's so timestamp-only
	// consumers keep conversational order.
	botAt := time.Now()
	if !botAt.After(userMsg.CreatedAt) {
		botAt = userMsg.CreatedAt.Add(time.Microsecond)
	}
	botMsg := entities.Message{
		ConversationID: cv.ConversationID,
		From:           entities.FromBot,
		Content:        reply,
		CreatedAt:      botAt,
	}
	if err := s.r.CreateMessage(&botMsg); err != nil {
		return nil, fmt.Errorf("record bot message: %w", err)
	}

	if err := s.r.LogEvent("chat_message", map[string]any{
		"conversation_id": cv.ConversationID,
		"message_length":  len(text),
		"has_context":     kbContext != "",
	}); err != nil {
		log.Printf("[chat] event log: %v", err)
	}

	return &service.AnswerResult{
		Token:       cv.Token,
		UserMessage: userMsg,
		BotMessage:  botMsg,
		Context:     refs,
	}, nil
}

func (s *Svc) conversation(in service.AnswerInput) (*entities.Conversation, error) {
	if in.Token != "" {
		cv, err := s.r.ConversationByToken(in.Token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, service.ErrNotFound
			}
			return nil, err
		}
		return cv, nil
	}
	cv := &entities.Conversation{
		Token:     uuid.NewString(),
		Channel:   entities.ChannelWeb,
		ContactID: in.ContactID,
	}
	if err := s.r.CreateConversation(cv); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return cv, nil
}

func (s *Svc) retrieve(ctx context.Context, text string) ([]kbservice.ScoredChunk, error) {
	vec, err := s.client.GenerateEmbedding(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.kb.TopKPublished(vec, s.topK)
}

func (s *Svc) History(token string) (*entities.Conversation, error) {
	cv, err := s.r.ConversationByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return cv, nil
}

// Rate sets the message's rating; last write wins. Anything outside {+1,-1}
// is rejected before touching the store.
func (s *Svc) Rate(messageID uint, rating int) (*entities.Message, error) {
	if rating != 1 && rating != -1 {
		return nil, service.ErrInvalidRating
	}
	if err := s.r.SetRating(messageID, rating); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	m, err := s.r.MessageByID(messageID)
	if err != nil {
		return nil, err
	}
	if err := s.r.LogEvent("message_rated", map[string]any{
		"message_id":      messageID,
		"rating":          rating,
		"conversation_id": m.ConversationID,
	}); err != nil {
		log.Printf("[chat] event log: %v", err)
	}
	return m, nil
}

func (s *Svc) ListConversations(limit int) ([]entities.Conversation, error) {
	return s.r.ListConversations(limit)
}
