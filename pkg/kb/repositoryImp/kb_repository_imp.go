package repositoryImp

import (
	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/kb/repository"
)

type repo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KBRepository { return &repo{db} }

func (r *repo) CreateArticle(a *entities.KnowledgeArticle) error { return r.db.Create(a).Error }
func (r *repo) UpdateArticle(a *entities.KnowledgeArticle) error { return r.db.Save(a).Error }

func (r *repo) ArticleByID(id uint) (*entities.KnowledgeArticle, error) {
	var a entities.KnowledgeArticle
	if err := r.db.First(&a, "article_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) ArticleBySlug(slug string) (*entities.KnowledgeArticle, error) {
	var a entities.KnowledgeArticle
	if err := r.db.First(&a, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) ListArticles(status, search string) ([]entities.KnowledgeArticle, error) {
	q := r.db.Order("updated_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title LIKE ? OR markdown LIKE ?", like, like)
	}
	var as []entities.KnowledgeArticle
	return as, q.Find(&as).Error
}

// DeleteArticle removes the article and its chunks together.
func (r *repo) DeleteArticle(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entities.KnowledgeArticle{}, "article_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Delete(&entities.ArticleChunk{}, "article_id = ?", id).Error
	})
}

func (r *repo) ReplaceChunks(articleID uint, chunks []entities.ArticleChunk) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entities.ArticleChunk{}, "article_id = ?", articleID).Error; err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		return tx.Create(&chunks).Error
	})
}

func (r *repo) PublishedChunks() ([]repository.ChunkWithArticle, error) {
	type row struct {
		entities.ArticleChunk
		Title  string
		Slug   string
		Status string
	}
	var rows []row
	err := r.db.Model(&entities.ArticleChunk{}).
		Select("article_chunks.*, knowledge_articles.title, knowledge_articles.slug, knowledge_articles.status").
		Joins("JOIN knowledge_articles ON knowledge_articles.article_id = article_chunks.article_id").
		Where("knowledge_articles.status = ?", entities.ArticlePublished).
		Order("article_chunks.chunk_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]repository.ChunkWithArticle, len(rows))
	for i, rw := range rows {
		out[i] = repository.ChunkWithArticle{
			Chunk:        rw.ArticleChunk,
			ArticleTitle: rw.Title,
			ArticleSlug:  rw.Slug,
			Status:       rw.Status,
		}
	}
	return out, nil
}

func (r *repo) ChunksByArticle(articleID uint) ([]entities.ArticleChunk, error) {
	var cs []entities.ArticleChunk
	return cs, r.db.Where("article_id = ?", articleID).Order("ord ASC").Find(&cs).Error
}

func (r *repo) CountChunks() (int64, error) {
	var n int64
	return n, r.db.Model(&entities.ArticleChunk{}).Count(&n).Error
}
