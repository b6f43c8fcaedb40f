package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"gorm.io/gorm"

	"clubchat/entities"
	"clubchat/pkg/ai"
	"clubchat/pkg/kb/chunker"
	"clubchat/pkg/kb/embedder"
	"clubchat/pkg/kb/repository"
	"clubchat/pkg/kb/service"
)

type Svc struct {
	r        repository.KBRepository
	client   ai.Client
	chunks   *chunker.Chunker
	embedDim int
}

func New(r repository.KBRepository, client ai.Client, ch *chunker.Chunker, embedDim int) *Svc {
	if ch == nil {
		ch = chunker.New(chunker.DefaultMinLen)
	}
	return &Svc{r: r, client: client, chunks: ch, embedDim: embedDim}
}

func (s *Svc) CreateArticle(ctx context.Context, in service.ArticleInput) (*entities.KnowledgeArticle, int, error) {
	if in.Status == "" {
		in.Status = entities.ArticleDraft
	}
	if _, err := s.r.ArticleBySlug(in.Slug); err == nil {
		return nil, 0, service.ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, fmt.Errorf("check slug: %w", err)
	}

	a := &entities.KnowledgeArticle{
		Title:    in.Title,
		Slug:     in.Slug,
		Markdown: in.Markdown,
		Status:   in.Status,
		Tags:     in.Tags,
	}
	if err := s.r.CreateArticle(a); err != nil {
		return nil, 0, fmt.Errorf("create article: %w", err)
	}

	n, err := s.ingest(ctx, a)
	if err != nil {
		return nil, 0, err
	}
	return a, n, nil
}

func (s *Svc) UpdateArticle(ctx context.Context, id uint, in service.ArticleInput) (*entities.KnowledgeArticle, int, error) {
	a, err := s.r.ArticleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, service.ErrNotFound
		}
		return nil, 0, err
	}
	if in.Slug != "" && in.Slug != a.Slug {
		if _, err := s.r.ArticleBySlug(in.Slug); err == nil {
			return nil, 0, service.ErrSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, fmt.Errorf("check slug: %w", err)
		}
		a.Slug = in.Slug
	}
	if in.Title != "" {
		a.Title = in.Title
	}
	if in.Status != "" {
		a.Status = in.Status
	}
	if in.Tags != nil {
		a.Tags = in.Tags
	}
	reingest := in.Markdown != "" && in.Markdown != a.Markdown
	if reingest {
		a.Markdown = in.Markdown
	}
	if err := s.r.UpdateArticle(a); err != nil {
		return nil, 0, fmt.Errorf("update article: %w", err)
	}

	if !reingest {
		return a, 0, nil
	}
	n, err := s.ingest(ctx, a)
	if err != nil {
		return nil, 0, err
	}
	return a, n, nil
}

// ingest splits the article body, embeds each chunk and swaps the article's
// chunk set in one transaction so readers never see a partial mix.
func (s *Svc) ingest(ctx context.Context, a *entities.KnowledgeArticle) (int, error) {
	parts := s.chunks.Split(a.Markdown)
	rows := make([]entities.ArticleChunk, 0, len(parts))
	for i, content := range parts {
		vec, err := s.client.GenerateEmbedding(ctx, content)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d: %w", i, err)
		}
		row, err := s.buildChunk(a.ArticleID, i, content, vec)
		if err != nil {
			return 0, err
		}
		rows = append(rows, row)
	}
	if err := s.r.ReplaceChunks(a.ArticleID, rows); err != nil {
		return 0, fmt.Errorf("replace chunks: %w", err)
	}
	log.Printf("[kb] article %d (%s): %d chunks", a.ArticleID, a.Slug, len(rows))
	return len(rows), nil
}

// buildChunk validates content length and vector dimensionality even when the
// chunker is bypassed; a store with mixed dimensionalities cannot be compared.
func (s *Svc) buildChunk(articleID uint, ord int, content string, vec []float32) (entities.ArticleChunk, error) {
	if len([]rune(strings.TrimSpace(content))) < s.chunks.MinLen() {
		return entities.ArticleChunk{}, service.ErrChunkTooShort
	}
	if len(vec) != s.embedDim {
		return entities.ArticleChunk{}, service.ErrDimensionMismatch
	}
	return entities.ArticleChunk{
		ArticleID: articleID,
		Ord:       ord,
		Content:   content,
		Embedding: embedder.FloatsToBytes(vec),
	}, nil
}

func (s *Svc) DeleteArticle(id uint) error {
	if err := s.r.DeleteArticle(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Svc) ArticleByID(id uint) (*entities.KnowledgeArticle, error) {
	a, err := s.r.ArticleByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.ErrNotFound
	}
	return a, err
}

func (s *Svc) ListArticles(status, search string) ([]entities.KnowledgeArticle, error) {
	return s.r.ListArticles(status, search)
}

func (s *Svc) Search(ctx context.Context, query string, k int) ([]service.ScoredChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}
	vec, err := s.client.GenerateEmbedding(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.TopKPublished(vec, k)
}

// TopKPublished linearly scans every published chunk and returns the k most
// similar, most-similar first. Equal scores keep creation order so results
// stay deterministic. Fine at knowledge-base scale; an ANN index is the
// upgrade path if the corpus ever grows by orders of magnitude.
func (s *Svc) TopKPublished(queryVec []float32, k int) ([]service.ScoredChunk, error) {
	if k <= 0 {
		return nil, nil
	}
	rows, err := s.r.PublishedChunks()
	if err != nil {
		return nil, fmt.Errorf("load chunks: %w", err)
	}
	scored := make([]service.ScoredChunk, 0, len(rows))
	for _, rw := range rows {
		sc := embedder.Cosine(queryVec, embedder.BytesToFloats(rw.Chunk.Embedding))
		scored = append(scored, service.ScoredChunk{
			Chunk:        rw.Chunk,
			ArticleTitle: rw.ArticleTitle,
			Score:        sc,
		})
	}
	// rows arrive in chunk_id order; stable sort keeps that order on ties
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if k > len(scored) {
		k = len(scored)
	}
	return scored[:k], nil
}
