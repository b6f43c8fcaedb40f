package repository

import "clubchat/entities"

// ChunkWithArticle carries a chunk plus the parent metadata retrieval needs.
type ChunkWithArticle struct {
	Chunk        entities.ArticleChunk
	ArticleTitle string
	ArticleSlug  string
	Status       string
}

type KBRepository interface {
	CreateArticle(*entities.KnowledgeArticle) error
	UpdateArticle(*entities.KnowledgeArticle) error
	ArticleByID(id uint) (*entities.KnowledgeArticle, error)
	ArticleBySlug(slug string) (*entities.KnowledgeArticle, error)
	ListArticles(status, search string) ([]entities.KnowledgeArticle, error)
	DeleteArticle(id uint) error

	// ReplaceChunks swaps an article's chunk set atomically: a concurrent
	// reader sees either the old set or the new one, never a mix.
	ReplaceChunks(articleID uint, chunks []entities.ArticleChunk) error

	// PublishedChunks returns chunks of published articles in creation order.
	PublishedChunks() ([]ChunkWithArticle, error)
	ChunksByArticle(articleID uint) ([]entities.ArticleChunk, error)
	CountChunks() (int64, error)
}
