package entities

import "time"

const (
	ArticleDraft     = "draft"
	ArticlePublished = "published"
)

type KnowledgeArticle struct {
	ArticleID uint     `gorm:"primaryKey" json:"article_id"`
	Title     string   `json:"title"`
	Slug      string   `gorm:"uniqueIndex" json:"slug"`
	Markdown  string   `json:"markdown"`
	Status    string   `gorm:"index" json:"status"` // draft|published
	Tags      []string `gorm:"serializer:json" json:"tags,omitempty"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ArticleChunk struct {
	ChunkID   uint   `gorm:"primaryKey" json:"chunk_id"`
	ArticleID uint   `gorm:"index" json:"article_id"`
	Ord       int    `json:"ord"`
	Content   string `json:"content"`
	Embedding []byte `json:"-"`
	CreatedAt time.Time
}
