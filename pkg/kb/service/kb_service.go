package service

import (
	"context"
	"errors"

	"clubchat/entities"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrSlugTaken         = errors.New("slug already exists")
	ErrChunkTooShort     = errors.New("chunk content below minimum length")
	ErrDimensionMismatch = errors.New("vector dimensionality mismatch")
)

// ScoredChunk is a retrieval hit with its cosine similarity, for diagnostics
// and for the chat response payload.
type ScoredChunk struct {
	Chunk        entities.ArticleChunk
	ArticleTitle string
	Score        float64
}

type ArticleInput struct {
	Title    string
	Slug     string
	Markdown string
	Status   string
	Tags     []string
}

type KBService interface {
	CreateArticle(ctx context.Context, in ArticleInput) (*entities.KnowledgeArticle, int, error)
	UpdateArticle(ctx context.Context, id uint, in ArticleInput) (*entities.KnowledgeArticle, int, error)
	DeleteArticle(id uint) error
	ArticleByID(id uint) (*entities.KnowledgeArticle, error)
	ListArticles(status, search string) ([]entities.KnowledgeArticle, error)

	// Search embeds the query and returns the top-k published chunks.
	Search(ctx context.Context, query string, k int) ([]ScoredChunk, error)
	// TopKPublished ranks published chunks against a prepared query vector.
	TopKPublished(queryVec []float32, k int) ([]ScoredChunk, error)
}
